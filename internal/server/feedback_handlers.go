package server

import (
	"time"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback handles POST /api/feedback. The creation date is always
// server-assigned.
func (s *Server) CreateFeedback(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and message are required"))
	}

	fb := &models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Date:    time.Now().UTC(),
	}

	if err := s.feedbackRepo.Create(c.Context(), fb); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Feedback submitted successfully",
	})
}

// ListFeedback handles GET /api/feedback
func (s *Server) ListFeedback(c *fiber.Ctx) error {
	items, err := s.feedbackRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(items)
}
