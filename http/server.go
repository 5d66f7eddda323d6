// server/http/server.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/theranotes/server/store"
)

// Server holds the route handlers for the REST surface. All handlers
// translate store errors into status codes at this boundary; nothing below
// it is aware of HTTP.
type Server struct {
	store *store.Store
	log   zerolog.Logger
}

func NewServer(st *store.Store, log zerolog.Logger) *Server {
	return &Server{store: st, log: log}
}

// Register mounts every route on the app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/healthz", s.handleHealth)

	app.Get("/therapists", s.handleListTherapists)
	app.Post("/therapists", s.handleCreateTherapist)

	app.Get("/patients", s.handleListPatients)
	app.Post("/patients", s.handleCreatePatient)
	app.Get("/patients/:patientId", s.handleGetPatient)
	app.Patch("/patients/:patientId", s.handleUpdatePatient)
	app.Delete("/patients/:patientId", s.handleDeletePatient)

	app.Get("/patients/:patientId/notes", s.handleListNotes)
	app.Post("/patients/:patientId/notes", s.handleCreateNote)
	app.Delete("/patients/:patientId/notes/:noteId", s.handleDeleteNote)

	app.Get("/patients/:patientId/sessions", s.handleListSessions)
	app.Post("/patients/:patientId/sessions", s.handleCreateSession)
	app.Get("/patients/:patientId/sessions/:sessionId", s.handleGetSession)
	app.Patch("/patients/:patientId/sessions/:sessionId/ai", s.handleSetSessionAI)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// storeError maps a store error to a response. Validation and reference
// failures carry their own message; anything unclassified is logged in full
// and answered with the sanitized message only.
func (s *Server) storeError(c *fiber.Ctx, err error, sanitized string) error {
	switch {
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": sanitized + " not found"})
	default:
		s.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to " + verb(c) + " " + sanitized})
	}
}

func verb(c *fiber.Ctx) string {
	switch c.Method() {
	case fiber.MethodGet:
		return "fetch"
	case fiber.MethodPost:
		return "create"
	case fiber.MethodPatch:
		return "update"
	case fiber.MethodDelete:
		return "delete"
	default:
		return "handle"
	}
}
