package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UserInfo handles GET /api/userinfo?email=...
func (s *Server) UserInfo(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email query parameter is required"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		return respondAppError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", email))
	}

	return c.JSON(fiber.Map{
		"username": user.Username,
		"email":    user.Email,
	})
}

// ListUsers handles GET /api/register. The admin flag is a client-supplied,
// unverified claim (isAdmin query param or x-admin header); this is not a
// security boundary.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	if !adminRequested(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Admin access required"))
	}

	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(users)
}
