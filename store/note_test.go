// server/store/note_test.go
package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/theranotes/server/domain"
	"github.com/theranotes/server/store"
)

func TestCreateNoteAndListNewestFirst(t *testing.T) {
	st, _ := newTestStore(t)

	older, err := st.CreateNote("p1", "older entry", domain.NotePrivate, "s1")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	newer, err := st.CreateNote("p1", "x", domain.NoteShared, "s1")
	require.NoError(t, err)

	notes, err := st.ListNotes("p1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, newer.ID, notes[0].ID)
	require.Equal(t, "x", notes[0].Content)
	require.Equal(t, older.ID, notes[1].ID)
}

func TestCreateNoteValidation(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.CreateNote("p1", "", domain.NotePrivate, "s1")
	require.True(t, errors.Is(err, store.ErrValidation))

	_, err = st.CreateNote("p1", "content", domain.NotePrivate, "")
	require.True(t, errors.Is(err, store.ErrValidation))

	_, err = st.CreateNote("p1", "content", "confidential", "s1")
	require.True(t, errors.Is(err, store.ErrValidation))
}

func TestListNotesEmptyForUnknownPatient(t *testing.T) {
	st, _ := newTestStore(t)

	notes, err := st.ListNotes("nobody")
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestDeleteNote(t *testing.T) {
	st, _ := newTestStore(t)

	note, err := st.CreateNote("p1", "to be removed", domain.NotePrivate, "s1")
	require.NoError(t, err)

	require.NoError(t, st.DeleteNote("p1", note.ID))

	notes, err := st.ListNotes("p1")
	require.NoError(t, err)
	require.Empty(t, notes)

	err = st.DeleteNote("p1", note.ID)
	require.True(t, errors.Is(err, store.ErrNotFound))
}
