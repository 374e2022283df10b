package server

import (
	"beulynk/internal/models"
	"beulynk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// The three submission endpoints share the same shape: GET returns only the
// caller's own records, POST validates the domain fields and persists with
// server-assigned owner and default status. Client-supplied "status" or
// "user" payload fields are ignored because the request structs below simply
// do not bind them.

// ListVolunteerRequests handles GET /api/volunteer
func (s *Server) ListVolunteerRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	reqs, err := s.volunteerRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	payloads := make([]models.VolunteerRequestPayload, 0, len(reqs))
	for _, r := range reqs {
		payloads = append(payloads, r.Payload())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": payloads,
	})
}

// CreateVolunteerRequest handles POST /api/volunteer
func (s *Server) CreateVolunteerRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Skills       string `json:"skills"`
		Availability string `json:"availability"`
		Motivation   string `json:"motivation"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("skills", req.Skills)
	errs.Required("availability", req.Availability)
	errs.Required("motivation", req.Motivation)
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	record := &models.VolunteerRequest{
		UserID:       userID,
		Skills:       req.Skills,
		Availability: req.Availability,
		Motivation:   req.Motivation,
		Status:       models.VolunteerStatusPending,
	}
	if err := s.volunteerRepo.Create(c.Context(), record); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer request submitted successfully",
		"request": record.Payload(),
	})
}

// ListDonorRequests handles GET /api/donor
func (s *Server) ListDonorRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	reqs, err := s.donorRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	payloads := make([]models.DonorRequestPayload, 0, len(reqs))
	for _, r := range reqs {
		payloads = append(payloads, r.Payload())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": payloads,
	})
}

// CreateDonorRequest handles POST /api/donor
func (s *Server) CreateDonorRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		DonationType string  `json:"donation_type"`
		Amount       *string `json:"amount"`
		Message      *string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("donation_type", req.DonationType)
	if req.DonationType != "" && !models.ValidDonationType(req.DonationType) {
		errs.Add("donation_type", "Donation type must be one of: one_time, monthly, yearly")
	}
	if req.Amount != nil && !validation.ValidDecimal(*req.Amount) {
		errs.Add("amount", "Enter a valid amount")
	}
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	record := &models.DonorRequest{
		UserID:       userID,
		DonationType: req.DonationType,
		Amount:       req.Amount,
		Message:      req.Message,
		Status:       models.DonorStatusPending,
	}
	if err := s.donorRepo.Create(c.Context(), record); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Donation request submitted successfully",
		"request": record.Payload(),
	})
}

// ListHelpRequests handles GET /api/help-request
func (s *Server) ListHelpRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	reqs, err := s.helpRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	payloads := make([]models.HelpRequestPayload, 0, len(reqs))
	for _, r := range reqs {
		payloads = append(payloads, r.Payload())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": payloads,
	})
}

// CreateHelpRequest handles POST /api/help-request
func (s *Server) CreateHelpRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Category    string `json:"category"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Urgency     string `json:"urgency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("category", req.Category)
	errs.Required("title", req.Title)
	errs.Required("description", req.Description)
	if req.Category != "" && !models.ValidHelpCategory(req.Category) {
		errs.Add("category", "Category must be one of: financial, medical, education, food, shelter, other")
	}
	if req.Urgency != "" && !models.ValidUrgency(req.Urgency) {
		errs.Add("urgency", "Urgency must be one of: low, medium, high, critical")
	}
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyMedium
	}

	record := &models.HelpRequest{
		UserID:      userID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Urgency:     urgency,
		Status:      models.HelpStatusOpen,
	}
	if err := s.helpRepo.Create(c.Context(), record); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Help request submitted successfully",
		"request": record.Payload(),
	})
}
