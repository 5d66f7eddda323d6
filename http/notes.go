// server/http/notes.go
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/theranotes/server/domain"
)

func (s *Server) handleListNotes(c *fiber.Ctx) error {
	notes, err := s.store.ListNotes(c.Params("patientId"))
	if err != nil {
		return s.storeError(c, err, "notes")
	}
	return c.JSON(fiber.Map{"notes": notes})
}

func (s *Server) handleCreateNote(c *fiber.Ctx) error {
	var req struct {
		Content   string          `json:"content"`
		NoteType  domain.NoteType `json:"noteType"`
		SessionID string          `json:"sessionId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	note, err := s.store.CreateNote(c.Params("patientId"), req.Content, req.NoteType, req.SessionID)
	if err != nil {
		return s.storeError(c, err, "note")
	}

	return c.JSON(note)
}

func (s *Server) handleDeleteNote(c *fiber.Ctx) error {
	if err := s.store.DeleteNote(c.Params("patientId"), c.Params("noteId")); err != nil {
		return s.storeError(c, err, "note")
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
