package handlers

import (
	"gymdesk/internal/middleware"
	"gymdesk/internal/models"
	"gymdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WorkoutPlanHandler handles HTTP requests for workout plans.
type WorkoutPlanHandler struct {
	planService *services.WorkoutPlanService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewWorkoutPlanHandler creates a new WorkoutPlanHandler.
func NewWorkoutPlanHandler(planService *services.WorkoutPlanService, authService *services.AuthService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{
		planService: planService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the workout-plan routes with the Fiber app.
func (h *WorkoutPlanHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	planRoutes := router.Group("/workout-plans")
	planRoutes.Post("/", auth, middleware.TrainerRequired(), h.HandleCreatePlan)
	planRoutes.Get("/", auth, h.HandleListPlans)
}

// ExerciseRequest is one exercise within a workout-plan request.
type ExerciseRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Sets        int    `json:"sets" validate:"required,gte=1"`
	Reps        int    `json:"reps" validate:"required,gte=1"`
	RestSeconds int    `json:"rest_seconds" validate:"omitempty,gte=0"`
	Notes       string `json:"notes" validate:"omitempty,max=500"`
}

// WorkoutPlanRequest represents the request body for creating a plan.
type WorkoutPlanRequest struct {
	Title         string            `json:"title" validate:"required,min=3,max=200"`
	Description   string            `json:"description" validate:"omitempty,max=2000"`
	Level         string            `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	DurationWeeks int               `json:"duration_weeks" validate:"required,gte=1,lte=52"`
	Exercises     []ExerciseRequest `json:"exercises" validate:"omitempty,dive"`
}

// HandleCreatePlan creates a plan authored by the authenticated trainer.
func (h *WorkoutPlanHandler) HandleCreatePlan(c *fiber.Ctx) error {
	var req WorkoutPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	plan := &models.WorkoutPlan{
		Title:         req.Title,
		Description:   req.Description,
		Level:         req.Level,
		DurationWeeks: req.DurationWeeks,
	}
	for _, exercise := range req.Exercises {
		plan.Exercises = append(plan.Exercises, models.Exercise{
			Name:        exercise.Name,
			Sets:        exercise.Sets,
			Reps:        exercise.Reps,
			RestSeconds: exercise.RestSeconds,
			Notes:       exercise.Notes,
		})
	}

	trainerID, _ := c.Locals(middleware.LocalUserID).(string)
	created, err := h.planService.Create(trainerID, plan)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"plan": created,
	})
}

// HandleListPlans lists workout plans, optionally filtered by trainer.
func (h *WorkoutPlanHandler) HandleListPlans(c *fiber.Ctx) error {
	trainerID := c.Query("trainer_id")

	var (
		plans []models.WorkoutPlan
		err   error
	)
	if trainerID != "" {
		plans, err = h.planService.ListByTrainer(trainerID)
	} else {
		plans, err = h.planService.List()
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"plans": plans,
	})
}
