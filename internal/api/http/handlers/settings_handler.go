package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// SettingsHandler exposes the taxonomy and credential endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.settings.Get(c.UserContext())})
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var tax domain.Taxonomy
	if err := c.BodyParser(&tax); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	out, err := h.settings.Update(c.UserContext(), auth.RoleFromContext(c), tax)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": out})
}

// ChangePassword handles POST /api/settings/password.
func (h *SettingsHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.settings.ChangePassword(c.UserContext(), auth.RoleFromContext(c), req.Role, req.NewPassword, req.Confirm); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
