package handlers

import (
	"gymdesk/internal/middleware"
	"gymdesk/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ComplaintHandler handles HTTP requests for complaints.
type ComplaintHandler struct {
	complaintService *services.ComplaintService
	authService      *services.AuthService
	validate         *validator.Validate
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(complaintService *services.ComplaintService, authService *services.AuthService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		authService:      authService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the complaint routes with the Fiber app.
func (h *ComplaintHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	complaintRoutes := router.Group("/complaints")
	complaintRoutes.Post("/", auth, h.HandleFileComplaint)
	complaintRoutes.Get("/", auth, middleware.AdminRequired(), h.HandleListComplaints)
	complaintRoutes.Get("/mine", auth, h.HandleListOwnComplaints)
	complaintRoutes.Patch("/:id", auth, middleware.AdminRequired(), h.HandleModerateComplaint)
}

// ComplaintRequest represents the request body for filing a complaint.
type ComplaintRequest struct {
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	Category    string `json:"category" validate:"required,oneof=equipment staff billing facility other"`
	Description string `json:"description" validate:"required,max=2000"`
}

// HandleFileComplaint files a complaint on behalf of the authenticated user.
func (h *ComplaintHandler) HandleFileComplaint(c *fiber.Ctx) error {
	var req ComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	userID, _ := c.Locals(middleware.LocalUserID).(string)
	complaint, err := h.complaintService.File(userID, req.Subject, req.Category, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"complaint": complaint,
	})
}

// HandleListComplaints lists every complaint. Admin only.
func (h *ComplaintHandler) HandleListComplaints(c *fiber.Ctx) error {
	complaints, err := h.complaintService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"complaints": complaints,
	})
}

// HandleListOwnComplaints lists the authenticated user's own complaints.
func (h *ComplaintHandler) HandleListOwnComplaints(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	complaints, err := h.complaintService.ListByUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"complaints": complaints,
	})
}

// ModerateComplaintRequest represents the request body for complaint moderation.
type ModerateComplaintRequest struct {
	Status   string `json:"status" validate:"required,oneof=open in_review resolved dismissed"`
	Response string `json:"response" validate:"omitempty,max=2000"`
}

// HandleModerateComplaint updates a complaint's status. Admin only.
func (h *ComplaintHandler) HandleModerateComplaint(c *fiber.Ctx) error {
	var req ModerateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	complaint, err := h.complaintService.Moderate(c.Params("id"), req.Status, req.Response)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"complaint": complaint,
	})
}
