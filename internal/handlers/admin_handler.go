package handlers

import (
	"gymdesk/internal/middleware"
	"gymdesk/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for the admin dashboard.
type AdminHandler struct {
	dashboardService *services.DashboardService
	authService      *services.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(dashboardService *services.DashboardService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		authService:      authService,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.authService)
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/dashboard", auth, middleware.AdminRequired(), h.HandleDashboard)
}

// HandleDashboard returns the aggregated admin dashboard for ?period=day|week|month.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	report, err := h.dashboardService.Report(c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
