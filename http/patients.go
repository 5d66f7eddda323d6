// server/http/patients.go
package http

import "github.com/gofiber/fiber/v2"

func (s *Server) handleListPatients(c *fiber.Ctx) error {
	therapistID := c.Query("therapistId")
	if therapistID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "therapist ID is required"})
	}

	patients, err := s.store.ListPatients(therapistID)
	if err != nil {
		return s.storeError(c, err, "patients")
	}

	return c.JSON(fiber.Map{"patients": patients})
}

func (s *Server) handleCreatePatient(c *fiber.Ctx) error {
	var req struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		TherapistID string `json:"therapistId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// Echo the received payload on validation failure for debuggability.
	if req.FirstName == "" || req.LastName == "" || req.TherapistID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "missing required fields",
			"received": req,
		})
	}

	patient, err := s.store.CreatePatient(req.FirstName, req.LastName, req.TherapistID)
	if err != nil {
		return s.storeError(c, err, "patient")
	}

	return c.JSON(fiber.Map{
		"patientId": patient.ID,
		"message":   "Patient created successfully",
	})
}

func (s *Server) handleGetPatient(c *fiber.Ctx) error {
	patient, err := s.store.GetPatient(c.Params("patientId"))
	if err != nil {
		return s.storeError(c, err, "patient")
	}
	return c.JSON(patient)
}

func (s *Server) handleUpdatePatient(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	patient, err := s.store.UpdatePatient(c.Params("patientId"), req.FirstName, req.LastName)
	if err != nil {
		return s.storeError(c, err, "patient")
	}

	return c.JSON(patient)
}

func (s *Server) handleDeletePatient(c *fiber.Ctx) error {
	if err := s.store.DeletePatient(c.Params("patientId")); err != nil {
		return s.storeError(c, err, "patient")
	}
	return c.JSON(fiber.Map{"message": "Patient deleted successfully"})
}
