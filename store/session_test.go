// server/store/session_test.go
package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/theranotes/server/store"
)

func TestCreateAndGetSession(t *testing.T) {
	st, _ := newTestStore(t)

	created, err := st.CreateSession("p1", "intake", "first visit notes")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := st.GetSession("p1", created.ID)
	require.NoError(t, err)
	require.Equal(t, "intake", got.Type)
	require.Equal(t, "first visit notes", got.Notes)
	require.Equal(t, "p1", got.PatientID)
	require.Empty(t, got.AISummary)
}

func TestCreateSessionValidation(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.CreateSession("p1", "", "notes")
	require.True(t, errors.Is(err, store.ErrValidation))

	_, err = st.CreateSession("", "intake", "notes")
	require.True(t, errors.Is(err, store.ErrValidation))
}

func TestGetSessionNotFound(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.GetSession("p1", "missing")
	require.True(t, errors.Is(err, store.ErrNotFound))
}

func TestListSessionsPerPatientChronological(t *testing.T) {
	st, _ := newTestStore(t)

	first, err := st.CreateSession("p1", "intake", "a")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := st.CreateSession("p1", "followup", "b")
	require.NoError(t, err)
	_, err = st.CreateSession("p2", "intake", "other patient")
	require.NoError(t, err)

	sessions, err := st.ListSessions("p1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, first.ID, sessions[0].ID)
	require.Equal(t, second.ID, sessions[1].ID)
}

func TestSetSessionAIContent(t *testing.T) {
	st, _ := newTestStore(t)

	created, err := st.CreateSession("p1", "intake", "first visit notes")
	require.NoError(t, err)

	updated, err := st.SetSessionAIContent("p1", created.ID, "patient anxious", "breathing exercises")
	require.NoError(t, err)
	require.Equal(t, "patient anxious", updated.AISummary)
	require.Equal(t, "breathing exercises", updated.AIIdeas)

	// The merge must not clobber the original fields.
	require.Equal(t, "intake", updated.Type)
	require.Equal(t, "first visit notes", updated.Notes)
	require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestSetSessionAIContentNotFound(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.SetSessionAIContent("p1", "missing", "s", "i")
	require.True(t, errors.Is(err, store.ErrNotFound))
}
