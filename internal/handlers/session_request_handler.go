package handlers

import (
	"time"

	"gymdesk/internal/middleware"
	"gymdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SessionRequestHandler handles HTTP requests for training-session scheduling.
type SessionRequestHandler struct {
	sessionService *services.SessionRequestService
	authService    *services.AuthService
	validate       *validator.Validate
}

// NewSessionRequestHandler creates a new SessionRequestHandler.
func NewSessionRequestHandler(sessionService *services.SessionRequestService, authService *services.AuthService) *SessionRequestHandler {
	return &SessionRequestHandler{
		sessionService: sessionService,
		authService:    authService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the session-request routes with the Fiber app.
func (h *SessionRequestHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	sessionRoutes := router.Group("/training-session-requests")
	sessionRoutes.Post("/", auth, h.HandleCreateRequest)
	sessionRoutes.Get("/", auth, h.HandleListOwnRequests)
	sessionRoutes.Get("/trainer", auth, middleware.TrainerRequired(), h.HandleListTrainerRequests)
	sessionRoutes.Patch("/:id", auth, middleware.TrainerRequired(), h.HandleUpdateStatus)
}

// SessionRequestBody represents the request body for requesting a session.
type SessionRequestBody struct {
	TrainerID     string    `json:"trainer_id" validate:"required,uuid"`
	RequestedDate time.Time `json:"requested_date" validate:"required"`
	Message       string    `json:"message" validate:"omitempty,max=1000"`
}

// HandleCreateRequest files a session request from the authenticated member.
func (h *SessionRequestHandler) HandleCreateRequest(c *fiber.Ctx) error {
	var req SessionRequestBody
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	memberID, _ := c.Locals(middleware.LocalUserID).(string)
	request, err := h.sessionService.Create(memberID, req.TrainerID, req.RequestedDate, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"request": request,
	})
}

// HandleListOwnRequests lists the authenticated member's session requests.
func (h *SessionRequestHandler) HandleListOwnRequests(c *fiber.Ctx) error {
	memberID, _ := c.Locals(middleware.LocalUserID).(string)
	requests, err := h.sessionService.ListByMember(memberID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"requests": requests,
	})
}

// HandleListTrainerRequests lists requests addressed to the authenticated trainer.
func (h *SessionRequestHandler) HandleListTrainerRequests(c *fiber.Ctx) error {
	trainerID, _ := c.Locals(middleware.LocalUserID).(string)
	requests, err := h.sessionService.ListByTrainer(trainerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"requests": requests,
	})
}

// UpdateSessionStatusRequest represents the request body for a status change.
type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined completed"`
}

// HandleUpdateStatus moves a request to a new status. Only the addressed
// trainer may do so.
func (h *SessionRequestHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req UpdateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	trainerID, _ := c.Locals(middleware.LocalUserID).(string)
	request, err := h.sessionService.UpdateStatus(c.Params("id"), trainerID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"request": request,
	})
}
