// server/http/therapists.go
package http

import "github.com/gofiber/fiber/v2"

func (s *Server) handleListTherapists(c *fiber.Ctx) error {
	therapists, err := s.store.ListTherapists()
	if err != nil {
		return s.storeError(c, err, "therapists")
	}
	return c.JSON(therapists)
}

func (s *Server) handleCreateTherapist(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	therapist, err := s.store.CreateTherapist(req.FirstName, req.LastName, "")
	if err != nil {
		return s.storeError(c, err, "therapist")
	}

	return c.JSON(fiber.Map{"therapistId": therapist.ID})
}
