package server

import (
	"beulynk/internal/models"
	"beulynk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateContactMessage handles POST /api/contact. No authentication; the
// route is rate limited instead.
func (s *Server) CreateContactMessage(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("name", req.Name)
	errs.Required("email", req.Email)
	errs.Required("message", req.Message)
	if req.Email != "" && !validation.ValidEmail(req.Email) {
		errs.Add("email", "Enter a valid email address")
	}
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	record := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(c.Context(), record); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
	})
}
