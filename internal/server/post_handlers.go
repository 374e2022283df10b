package server

import (
	"beulynk/internal/cache"
	"beulynk/internal/models"
	"beulynk/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Post endpoints return the resource (or an array of resources) directly
// rather than the success envelope used elsewhere.

// GetPosts handles GET /api/posts. Reads are open and include unconfirmed
// posts; use /approved-posts for the moderated surface.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	posts, err := s.postRepo.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(models.Payloads(posts))
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post.Payload())
}

// CreatePost handles POST /api/posts. The owner is the caller and every post
// starts unconfirmed regardless of the request body.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Photo       *string  `json:"photo"`
		Video       *string  `json:"video"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	errs.Required("title", req.Title)
	errs.Required("description", req.Description)
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	post := &models.Post{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Photo:       req.Photo,
		Video:       req.Video,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsConfirmed: false,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post.Payload())
}

// UpdatePost handles PUT and PATCH /api/posts/:id. Only the owner may edit,
// and only the content fields; the moderation flag is untouchable here. PATCH
// semantics apply in both cases: absent fields keep their current values.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if post.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewValidationError("You do not have permission to modify this post"))
	}

	var req struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Photo       *string  `json:"photo"`
		Video       *string  `json:"video"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	errs := validation.Errors{}
	if req.Title != nil {
		if *req.Title == "" {
			errs.Add("title", "This field is required")
		} else {
			post.Title = *req.Title
		}
	}
	if req.Description != nil {
		if *req.Description == "" {
			errs.Add("description", "This field is required")
		} else {
			post.Description = *req.Description
		}
	}
	if errs.Any() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldErrors(errs))
	}

	if req.Photo != nil {
		post.Photo = req.Photo
	}
	if req.Video != nil {
		post.Video = req.Video
	}
	if req.Latitude != nil {
		post.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		post.Longitude = req.Longitude
	}

	if err := s.postRepo.Update(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post.Payload())
}

// DeletePost handles DELETE /api/posts/:id. Owner only.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if post.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewValidationError("You do not have permission to modify this post"))
	}

	if err := s.postRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetApprovedPosts handles GET /api/approved-posts, the public map feed.
// Only moderator-confirmed posts appear, newest first. The default first
// page is served cache-aside; post writes invalidate it.
func (s *Server) GetApprovedPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	if p.Offset == 0 && p.Limit == 50 {
		var payloads []models.PostPayload
		err := cache.Aside(c.Context(), cache.ApprovedPostsKey, &payloads, cache.ApprovedPostsTTL, func() error {
			posts, ferr := s.postRepo.ListApproved(c.Context(), p.Limit, p.Offset)
			if ferr != nil {
				return ferr
			}
			payloads = models.Payloads(posts)
			return nil
		})
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if payloads == nil {
			payloads = []models.PostPayload{}
		}
		return c.JSON(payloads)
	}

	posts, err := s.postRepo.ListApproved(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(models.Payloads(posts))
}

// GetApprovedPost handles GET /api/approved-posts/:id
func (s *Server) GetApprovedPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetApprovedByID(c.Context(), id)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post.Payload())
}
