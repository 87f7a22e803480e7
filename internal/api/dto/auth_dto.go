package dto

import (
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
)

// LoginRequest payload. A single shared password identifies the role.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse carries an issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse payload.
type LoginResponse struct {
	Role  domain.Role  `json:"role"`
	Label string       `json:"label"`
	Auth  AuthResponse `json:"auth"`
}

// PasswordChangeRequest payload for setting a role's password.
type PasswordChangeRequest struct {
	Role        domain.Role `json:"role"`
	NewPassword string      `json:"new_password"`
	Confirm     string      `json:"confirm"`
}
