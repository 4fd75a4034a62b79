package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"gymdesk/internal/handlers"
	"gymdesk/internal/middleware"
	"gymdesk/internal/models"
	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
	"gymdesk/pkg/rabbitmq"
)

// Config holds the settings NewApp needs beyond its injected resources.
type Config struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieSecure bool
}

// NewApp wires the database, repositories, services, middleware and routes
// into a ready Fiber app. main and the tests share this constructor, so both
// exercise the same wiring. The database handle is opened once by the caller
// and injected; nothing here lazily reconnects.
func NewApp(cfg Config, db *gorm.DB, mqClient *rabbitmq.Client) (*fiber.App, *services.AuthService, error) {
	if cfg.JWTSecret == "" {
		// Refusing to fall back to a baked-in signing key is deliberate: a
		// missing secret is a deployment error, not a default.
		return nil, nil, fmt.Errorf("JWT secret must be set")
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.MemberProfile{},
		&models.TrainerProfile{},
		&models.Payment{},
		&models.Complaint{},
		&models.WorkoutPlan{},
		&models.Exercise{},
		&models.TrainingSessionRequest{},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	complaintRepo := repositories.NewGORMComplaintRepository(db)
	planRepo := repositories.NewGORMWorkoutPlanRepository(db)
	sessionRepo := repositories.NewGORMSessionRequestRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo, authService, mqClient)
	complaintService := services.NewComplaintService(complaintRepo, mqClient)
	planService := services.NewWorkoutPlanService(planRepo)
	sessionService := services.NewSessionRequestService(sessionRepo, userRepo)
	dashboardService := services.NewDashboardService(userRepo, complaintRepo, sessionRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, userService, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userService, authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService, authService)
	planHandler := handlers.NewWorkoutPlanHandler(planService, authService)
	sessionHandler := handlers.NewSessionRequestHandler(sessionService, authService)
	adminHandler := handlers.NewAdminHandler(dashboardService, authService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(middleware.RouteGate(authService))

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	complaintHandler.RegisterRoutes(api)
	planHandler.RegisterRoutes(api)
	sessionHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, authService, nil
}
