// server/store/note.go
package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/theranotes/server/domain"
	"github.com/theranotes/server/filesystem"
)

// CreateNote writes a note under the patient's notes subtree. The session
// ID is a grouping key and is not validated against a session record.
func (s *Store) CreateNote(patientID, content string, noteType domain.NoteType, sessionID string) (*domain.Note, error) {
	if patientID == "" || content == "" || noteType == "" || sessionID == "" {
		return nil, fmt.Errorf("%w: content, note type and session ID are required", ErrValidation)
	}
	if noteType != domain.NotePrivate && noteType != domain.NoteShared {
		return nil, fmt.Errorf("%w: note type must be private or shared", ErrValidation)
	}

	note := &domain.Note{
		ID:        uuid.NewString(),
		Content:   content,
		NoteType:  noteType,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}

	path := s.notePath(patientID, note.ID)
	if err := filesystem.WriteJSON(path, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: note %s was not persisted", ErrIntegrity, note.ID)
	}

	return note, nil
}

// ListNotes returns the patient's notes, newest first. Unreadable files are
// skipped and logged.
func (s *Store) ListNotes(patientID string) ([]domain.Note, error) {
	dir := s.notesDir(patientID)
	files, err := filesystem.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	notes := []domain.Note{}
	for _, name := range files {
		if !strings.HasSuffix(name, ".json") {
			continue
		}

		var note domain.Note
		if err := filesystem.ReadJSON(filepath.Join(dir, name), &note); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("skipping unreadable note")
			continue
		}
		notes = append(notes, note)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

// DeleteNote removes a single note file.
func (s *Store) DeleteNote(patientID, noteID string) error {
	path := s.notePath(patientID, noteID)
	if !filesystem.Exists(path) {
		return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	if err := filesystem.Remove(path); err != nil {
		return fmt.Errorf("deleting note %s: %w", noteID, err)
	}
	return nil
}
