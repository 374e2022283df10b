package server

import (
	"beulynk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNGOInfo handles GET /api/ngo-info. The record is a singleton provisioned
// out of band; the handler never creates one.
func (s *Server) GetNGOInfo(c *fiber.Ctx) error {
	info, err := s.ngoRepo.First(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if info == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("NGO information not found"))
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"ngo_info": info,
	})
}
