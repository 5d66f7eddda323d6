// server/store/patient.go
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
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CreatePatient writes a new patient record after verifying the referenced
// therapist exists.
func (s *Store) CreatePatient(firstName, lastName, therapistID string) (*domain.Patient, error) {
	if firstName == "" || lastName == "" || therapistID == "" {
		return nil, fmt.Errorf("%w: first name, last name and therapist ID are required", ErrValidation)
	}

	if _, err := s.GetTherapist(therapistID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: therapist %s does not exist", ErrInvalidReference, therapistID)
		}
		return nil, fmt.Errorf("verifying therapist %s: %w", therapistID, err)
	}

	patient := &domain.Patient{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		LastName:    lastName,
		TherapistID: therapistID,
		CreatedAt:   time.Now().UTC(),
	}

	path := s.patientPath(patient.ID)
	if err := filesystem.WriteJSON(path, patient); err != nil {
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: patient %s was not persisted", ErrIntegrity, patient.ID)
	}

	return patient, nil
}

// GetPatient reads a patient record by ID.
func (s *Store) GetPatient(id string) (*domain.Patient, error) {
	var patient domain.Patient
	if err := filesystem.ReadJSON(s.patientPath(id), &patient); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("patient %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reading patient %s: %w", id, err)
	}
	return &patient, nil
}

// UpdatePatient replaces the patient's name fields and stamps updated_at.
// The read-modify-write span is serialized so two concurrent updates cannot
// interleave; last writer wins.
func (s *Store) UpdatePatient(id, firstName, lastName string) (*domain.Patient, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patient, err := s.GetPatient(id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patient.FirstName = firstName
	patient.LastName = lastName
	patient.UpdatedAt = &now

	if err := filesystem.WriteJSON(s.patientPath(id), patient); err != nil {
		return nil, fmt.Errorf("updating patient %s: %w", id, err)
	}

	return patient, nil
}

// DeletePatient removes the patient record along with the patient's notes
// subtree and session files. Cleanup failures after the record itself is
// gone are logged, not surfaced.
func (s *Store) DeletePatient(id string) error {
	path := s.patientPath(id)
	if !filesystem.Exists(path) {
		return fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}

	if err := filesystem.Remove(path); err != nil {
		return fmt.Errorf("deleting patient %s: %w", id, err)
	}

	if err := filesystem.RemoveTree(s.patientDir(id)); err != nil {
		s.log.Warn().Err(err).Str("patient_id", id).Msg("failed to remove patient subtree")
	}
	s.removePatientSessions(id)

	return nil
}

func (s *Store) removePatientSessions(patientID string) {
	dir := filepath.Join(s.baseDir, sessionsDir)
	files, err := filesystem.List(dir)
	if err != nil {
		s.log.Warn().Err(err).Str("patient_id", patientID).Msg("failed to list patient sessions for cleanup")
		return
	}

	for _, name := range files {
		if !strings.HasPrefix(name, sessionFilePrefix(patientID)) {
			continue
		}
		if err := filesystem.Remove(filepath.Join(dir, name)); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("failed to remove patient session")
		}
	}
}

// ListPatients returns the patients assigned to therapistID, sorted by last
// name with a case-insensitive, locale-aware compare. Unreadable files are
// skipped and logged.
func (s *Store) ListPatients(therapistID string) ([]domain.PatientSummary, error) {
	dir := filepath.Join(s.baseDir, patientsDir)
	files, err := filesystem.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}

	patients := []domain.PatientSummary{}
	for _, name := range files {
		if !strings.HasPrefix(name, "patient_") || !strings.HasSuffix(name, ".json") {
			continue
		}

		var patient domain.Patient
		if err := filesystem.ReadJSON(filepath.Join(dir, name), &patient); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("skipping unreadable patient record")
			continue
		}
		if patient.TherapistID != therapistID {
			continue
		}
		patients = append(patients, patient.Summary())
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(patients, func(i, j int) bool {
		return coll.CompareString(patients[i].LastName, patients[j].LastName) < 0
	})

	return patients, nil
}
