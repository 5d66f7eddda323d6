// server/store/store.go
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const (
	therapistsDir = "therapists"
	patientsDir   = "patients"
	sessionsDir   = "sessions"
)

// Store provides record-level operations for therapists, patients, sessions
// and notes, each persisted as one JSON file under baseDir. Construct one
// per data directory; there is no package-level instance.
type Store struct {
	baseDir string
	log     zerolog.Logger

	// mu serializes read-modify-write updates so two concurrent partial
	// updates to the same record cannot interleave mid-merge. Reads and
	// whole-record creates do not take it.
	mu sync.Mutex
}

// New creates a Store rooted at baseDir, creating the entity directories if
// they do not exist yet.
func New(baseDir string, log zerolog.Logger) (*Store, error) {
	for _, dir := range []string{therapistsDir, patientsDir, sessionsDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	return &Store{baseDir: baseDir, log: log}, nil
}

func (s *Store) therapistPath(id string) string {
	return filepath.Join(s.baseDir, therapistsDir, "therapist_"+id+".json")
}

func (s *Store) patientPath(id string) string {
	return filepath.Join(s.baseDir, patientsDir, "patient_"+id+".json")
}

// patientDir is the patient's own subtree, holding its notes.
func (s *Store) patientDir(patientID string) string {
	return filepath.Join(s.baseDir, patientsDir, patientID)
}

func (s *Store) notesDir(patientID string) string {
	return filepath.Join(s.patientDir(patientID), "notes")
}

func (s *Store) notePath(patientID, noteID string) string {
	return filepath.Join(s.notesDir(patientID), noteID+".json")
}

func (s *Store) sessionPath(patientID, sessionID string) string {
	return filepath.Join(s.baseDir, sessionsDir, "session_"+patientID+"_"+sessionID+".json")
}

func sessionFilePrefix(patientID string) string {
	return "session_" + patientID + "_"
}
