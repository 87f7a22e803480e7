package service

import (
	"context"
	"time"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// AuthService authenticates the two operator roles.
type AuthService struct {
	taxonomy repository.TaxonomyRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, taxonomy repository.TaxonomyRepository) *AuthService {
	return &AuthService{
		taxonomy: taxonomy,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login matches password against each role's credential in precedence order and returns a
// token for the first role it opens.
func (s *AuthService) Login(ctx context.Context, password string) (domain.Role, string, time.Time, error) {
	tax := s.taxonomy.Load(ctx)
	for _, role := range domain.Roles() {
		if !auth.VerifyCredential(tax.Passwords[role], password) {
			continue
		}
		token, exp, err := s.tokenMgr.GenerateToken(role)
		if err != nil {
			return "", "", time.Time{}, apperrors.NewInternalError(err)
		}
		return role, token, exp, nil
	}
	return "", "", time.Time{}, apperrors.NewUnauthorized("invalid password")
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
