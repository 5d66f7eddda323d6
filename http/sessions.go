// server/http/sessions.go
package http

import "github.com/gofiber/fiber/v2"

func (s *Server) handleListSessions(c *fiber.Ctx) error {
	sessions, err := s.store.ListSessions(c.Params("patientId"))
	if err != nil {
		return s.storeError(c, err, "sessions")
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

func (s *Server) handleCreateSession(c *fiber.Ctx) error {
	var req struct {
		SessionType string `json:"sessionType"`
		Notes       string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := s.store.CreateSession(c.Params("patientId"), req.SessionType, req.Notes)
	if err != nil {
		return s.storeError(c, err, "session")
	}

	return c.JSON(fiber.Map{"sessionId": session.ID})
}

func (s *Server) handleGetSession(c *fiber.Ctx) error {
	session, err := s.store.GetSession(c.Params("patientId"), c.Params("sessionId"))
	if err != nil {
		return s.storeError(c, err, "session")
	}
	return c.JSON(session)
}

func (s *Server) handleSetSessionAI(c *fiber.Ctx) error {
	var req struct {
		AISummary string `json:"aiSummary"`
		AIIdeas   string `json:"aiIdeas"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := s.store.SetSessionAIContent(
		c.Params("patientId"), c.Params("sessionId"), req.AISummary, req.AIIdeas)
	if err != nil {
		return s.storeError(c, err, "session")
	}

	return c.JSON(session)
}
