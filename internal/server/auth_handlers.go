package server

import (
	"beulynk/internal/models"
	"beulynk/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// userPayload is the denormalized user+role object returned by register and login.
func userPayload(u *models.User, role *models.Role) fiber.Map {
	var roleValue any
	if role != nil {
		roleValue = *role
	}
	return fiber.Map{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"role":       roleValue,
	}
}

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username        string  `json:"username"`
		Email           string  `json:"email"`
		Password        string  `json:"password"`
		ConfirmPassword string  `json:"confirm_password"`
		FirstName       string  `json:"first_name"`
		LastName        string  `json:"last_name"`
		Role            string  `json:"role"`
		Phone           *string `json:"phone"`
		Address         *string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("username", req.Username)
	errs.Required("email", req.Email)
	errs.Required("password", req.Password)
	errs.Required("role", req.Role)
	if req.Email != "" && !validation.ValidEmail(req.Email) {
		errs.Add("email", "Enter a valid email address")
	}
	if req.Password != "" && len(req.Password) < validation.MinPasswordLength {
		errs.Add("password", "Password must be at least 6 characters")
	}
	if req.Password != "" && req.Password != req.ConfirmPassword {
		errs.Add("password", "Passwords do not match")
	}
	if req.Role != "" && !models.ValidRole(models.Role(req.Role)) {
		errs.Add("role", "Role must be one of: volunteer, donor, help_seeker")
	}
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	profile := &models.Profile{
		Role:    models.Role(req.Role),
		Phone:   req.Phone,
		Address: req.Address,
	}

	// User and profile persist atomically; a duplicate username surfaces
	// as a field-keyed validation error.
	if err := s.userRepo.CreateWithProfile(c.Context(), user, profile); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	token, err := s.tokenRepo.Issue(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"token":   token.Key,
		"user":    userPayload(user, &profile.Role),
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("username", req.Username)
	errs.Required("password", req.Password)
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	// The same generic message covers unknown-user and wrong-password so
	// the endpoint cannot be used for account enumeration.
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}
	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	// Issuing deletes any prior token: logging in invalidates prior sessions.
	token, err := s.tokenRepo.Issue(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Profile should always exist post-registration; role is null if not.
	var role *models.Role
	if profile, perr := s.userRepo.GetProfile(c.Context(), user.ID); perr == nil && profile != nil {
		role = &profile.Role
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token.Key,
		"user":    userPayload(user, role),
	})
}

// Logout handles POST /api/auth/logout
func (s *Server) Logout(c *fiber.Ctx) error {
	key, _ := c.Locals("tokenKey").(string)
	if err := s.tokenRepo.Revoke(c.Context(), key); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetProfile handles GET /api/auth/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := s.userRepo.GetProfile(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Profile not found"))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": profile.Payload(user),
	})
}
