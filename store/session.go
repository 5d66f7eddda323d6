// server/store/session.go
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/theranotes/server/domain"
	"github.com/theranotes/server/filesystem"
)

// CreateSession writes a new session record for a patient.
func (s *Store) CreateSession(patientID, sessionType, notes string) (*domain.Session, error) {
	if patientID == "" || sessionType == "" {
		return nil, fmt.Errorf("%w: patient ID and session type are required", ErrValidation)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Type:      sessionType,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	path := s.sessionPath(patientID, session.ID)
	if err := filesystem.WriteJSON(path, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: session %s was not persisted", ErrIntegrity, session.ID)
	}

	return session, nil
}

// GetSession reads a session record by patient and session ID.
func (s *Store) GetSession(patientID, sessionID string) (*domain.Session, error) {
	var session domain.Session
	if err := filesystem.ReadJSON(s.sessionPath(patientID, sessionID), &session); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("reading session %s: %w", sessionID, err)
	}
	return &session, nil
}

// ListSessions returns a patient's sessions in chronological order.
// Unreadable files are skipped and logged.
func (s *Store) ListSessions(patientID string) ([]domain.Session, error) {
	dir := filepath.Join(s.baseDir, sessionsDir)
	files, err := filesystem.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	sessions := []domain.Session{}
	for _, name := range files {
		if !strings.HasPrefix(name, sessionFilePrefix(patientID)) || !strings.HasSuffix(name, ".json") {
			continue
		}

		var session domain.Session
		if err := filesystem.ReadJSON(filepath.Join(dir, name), &session); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("skipping unreadable session")
			continue
		}
		if session.PatientID != patientID {
			continue
		}
		sessions = append(sessions, session)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions, nil
}

// SetSessionAIContent merges the AI summary and ideas into an existing
// session record and returns the updated record. The merge is serialized
// with other partial updates.
func (s *Store) SetSessionAIContent(patientID, sessionID, aiSummary, aiIdeas string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.sessionPath(patientID, sessionID)
	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}

	partial := map[string]any{
		"ai_summary": aiSummary,
		"ai_ideas":   aiIdeas,
	}
	if err := filesystem.MergeJSON(path, partial); err != nil {
		return nil, fmt.Errorf("updating session %s: %w", sessionID, err)
	}

	var session domain.Session
	if err := filesystem.ReadJSON(path, &session); err != nil {
		return nil, fmt.Errorf("reading session %s after update: %w", sessionID, err)
	}
	return &session, nil
}
