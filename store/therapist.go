// server/store/therapist.go
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/theranotes/server/domain"
	"github.com/theranotes/server/filesystem"
)

// CreateTherapist writes a new therapist record. The caller may supply an
// ID; when id is empty a new one is generated.
func (s *Store) CreateTherapist(firstName, lastName, id string) (*domain.Therapist, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}

	if id == "" {
		id = uuid.NewString()
	}

	therapist := &domain.Therapist{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}

	path := s.therapistPath(id)
	if err := filesystem.WriteJSON(path, therapist); err != nil {
		return nil, fmt.Errorf("creating therapist: %w", err)
	}

	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: therapist %s was not persisted", ErrIntegrity, id)
	}

	return therapist, nil
}

// GetTherapist reads a therapist record by ID.
func (s *Store) GetTherapist(id string) (*domain.Therapist, error) {
	var therapist domain.Therapist
	if err := filesystem.ReadJSON(s.therapistPath(id), &therapist); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("therapist %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reading therapist %s: %w", id, err)
	}
	return &therapist, nil
}

// ListTherapists returns all therapist records projected to their listing
// shape. Files that fail to parse are skipped and logged, never fatal to
// the listing.
func (s *Store) ListTherapists() ([]domain.TherapistSummary, error) {
	dir := filepath.Join(s.baseDir, therapistsDir)
	files, err := filesystem.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing therapists: %w", err)
	}

	therapists := []domain.TherapistSummary{}
	for _, name := range files {
		if !strings.HasPrefix(name, "therapist_") || !strings.HasSuffix(name, ".json") {
			continue
		}

		var therapist domain.Therapist
		if err := filesystem.ReadJSON(filepath.Join(dir, name), &therapist); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("skipping unreadable therapist record")
			continue
		}
		therapists = append(therapists, therapist.Summary())
	}

	return therapists, nil
}
