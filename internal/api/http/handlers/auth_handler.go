package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AuthHandler exposes the operator login endpoint.
type AuthHandler struct {
	auth     *service.AuthService
	settings *service.SettingsService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, settingsService *service.SettingsService) *AuthHandler {
	return &AuthHandler{auth: authService, settings: settingsService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", map[string]any{"field": "password"})
	}

	role, token, exp, err := h.auth.Login(c.UserContext(), req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{
			Role:  role,
			Label: h.settings.Get(c.UserContext()).Labels[role],
			Auth:  dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}
