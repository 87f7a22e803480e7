package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/service"
)

// DashboardHandler exposes the computed dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.dashboard.Dashboard(c.UserContext())})
}
