// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"beulynk/internal/cache"
	"beulynk/internal/config"
	"beulynk/internal/database"
	"beulynk/internal/middleware"
	"beulynk/internal/models"
	"beulynk/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	tokenRepo      repository.TokenRepository
	volunteerRepo  repository.VolunteerRepository
	donorRepo      repository.DonorRepository
	helpRepo       repository.HelpRepository
	ngoRepo        repository.NGOInfoRepository
	contactRepo    repository.ContactRepository
	postRepo       repository.PostRepository
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("beulynk-api"),
		userRepo:       repository.NewUserRepository(db),
		tokenRepo:      repository.NewTokenRepository(db),
		volunteerRepo:  repository.NewVolunteerRepository(db),
		donorRepo:      repository.NewDonorRepository(db),
		helpRepo:       repository.NewHelpRepository(db),
		ngoRepo:        repository.NewNGOInfoRepository(db),
		contactRepo:    repository.NewContactRepository(db),
		postRepo:       repository.NewPostRepository(db),
	}
}

// ErrorHandler is the Fiber global error handler. Handlers normally write
// their own responses; this catches errors escaping middleware and routing
// (bad routes, body limits) and folds them into the failure envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return models.RespondWithError(c, status, appErr)
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP).
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests, please try again later",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Machine-readable endpoint index
	api.Get("/", s.APIIndex)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.AuthRequired(), s.Logout)
	auth.Get("/profile", s.AuthRequired(), s.GetProfile)

	// Public NGO record
	api.Get("/ngo-info", s.GetNGOInfo)

	// Contact intake (anonymous)
	api.Post("/contact", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "contact"), s.CreateContactMessage)

	// Public post surfaces
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/:id", s.GetPost)

	approved := api.Group("/approved-posts")
	approved.Get("/", s.GetApprovedPosts)
	approved.Get("/:id", s.GetApprovedPost)

	// Protected routes. The auth middleware attaches per route, not at the
	// /api prefix, so unknown paths still fall through to a 404.
	authed := s.AuthRequired()

	api.Get("/volunteer", authed, s.ListVolunteerRequests)
	api.Post("/volunteer", authed, s.CreateVolunteerRequest)
	api.Get("/donor", authed, s.ListDonorRequests)
	api.Post("/donor", authed, s.CreateDonorRequest)
	api.Get("/help-request", authed, s.ListHelpRequests)
	api.Post("/help-request", authed, s.CreateHelpRequest)

	posts.Post("/", authed, middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Put("/:id", authed, s.UpdatePost)
	posts.Patch("/:id", authed, s.UpdatePost)
	posts.Delete("/:id", authed, s.DeletePost)
}

// AuthRequired returns middleware that resolves the opaque bearer credential
// to a user. The token carries no claims; it is valid exactly while its row
// exists, so logout and token rotation revoke it immediately.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authentication credentials were not provided"))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		// Both "Bearer <key>" and "Token <key>" schemes are accepted.
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid authorization header"))
		}

		user, err := s.tokenRepo.Resolve(c.Context(), parts[1])
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token"))
		}

		c.Locals("userID", user.ID)
		c.Locals("user", user)
		c.Locals("tokenKey", parts[1])

		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// APIIndex handles GET /api/ with a machine-readable endpoint index.
func (s *Server) APIIndex(c *fiber.Ctx) error {
	base := c.BaseURL() + "/api"
	return c.JSON(fiber.Map{
		"register":       base + "/auth/register/",
		"login":          base + "/auth/login/",
		"logout":         base + "/auth/logout/",
		"profile":        base + "/auth/profile/",
		"ngo-info":       base + "/ngo-info/",
		"volunteer":      base + "/volunteer/",
		"donor":          base + "/donor/",
		"help-request":   base + "/help-request/",
		"contact":        base + "/contact/",
		"posts":          base + "/posts/",
		"approved-posts": base + "/approved-posts/",
	})
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is optional; report its state without failing readiness.
	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}
	return nil
}
