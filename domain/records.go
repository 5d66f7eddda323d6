// server/domain/records.go
package domain

import "time"

// NoteType classifies a note's visibility. Shared notes are intended to be
// patient-visible, private notes therapist-only; the server stores the
// classification but does not enforce it.
type NoteType string

const (
	NotePrivate NoteType = "private"
	NoteShared  NoteType = "shared"
)

// Therapist is the persisted shape of a therapist record
// (therapists/therapist_<id>.json).
type Therapist struct {
	ID        string    `json:"therapist_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Patient is the persisted shape of a patient record
// (patients/patient_<id>.json). Every patient belongs to exactly one
// therapist; the reference is validated at creation time only.
type Patient struct {
	ID          string     `json:"patient_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	TherapistID string     `json:"therapist_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Note is the persisted shape of a note file
// (patients/<patientId>/notes/<noteId>.json). SessionID is a grouping key,
// not a validated reference.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	NoteType  NoteType  `json:"noteType"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the persisted shape of a session record
// (sessions/session_<patientId>_<sessionId>.json). AISummary and AIIdeas are
// filled in after the fact by a partial update.
type Session struct {
	ID        string    `json:"session_id"`
	PatientID string    `json:"patient_id"`
	Type      string    `json:"session_type"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	AISummary string    `json:"ai_summary,omitempty"`
	AIIdeas   string    `json:"ai_ideas,omitempty"`
}

// TherapistSummary is the projection returned by listing endpoints.
type TherapistSummary struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// PatientSummary is the projection returned by listing endpoints.
type PatientSummary struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	TherapistID string    `json:"therapistId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Summary projects a therapist record to its listing shape.
func (t *Therapist) Summary() TherapistSummary {
	return TherapistSummary{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		CreatedAt: t.CreatedAt,
	}
}

// Summary projects a patient record to its listing shape.
func (p *Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		TherapistID: p.TherapistID,
		CreatedAt:   p.CreatedAt,
	}
}
