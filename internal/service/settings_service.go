package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// SettingsService manages the admin-editable taxonomy and operator credentials.
type SettingsService struct {
	mu         sync.Mutex
	taxonomy   repository.TaxonomyRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// SettingsDependencies encapsulates requirements for the settings service.
type SettingsDependencies struct {
	TaxonomyRepo repository.TaxonomyRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewSettingsService builds the service.
func NewSettingsService(cfg config.AuthConfig, deps SettingsDependencies) *SettingsService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{
		taxonomy:   deps.TaxonomyRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Get returns the current taxonomy without credentials.
func (s *SettingsService) Get(ctx context.Context) domain.Taxonomy {
	return s.taxonomy.Load(ctx).Redacted()
}

// Update replaces the taxonomy. Credentials are never taken from the update; they change only
// through ChangePassword.
func (s *SettingsService) Update(ctx context.Context, actor domain.Role, next domain.Taxonomy) (domain.Taxonomy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.taxonomy.LoadStrict(ctx)
	if err != nil {
		return domain.Taxonomy{}, apperrors.NewStorageError(err)
	}
	next = next.Clone()
	next.Passwords = current.Clone().Passwords
	if next.Labels == nil {
		next.Labels = current.Clone().Labels
	}
	if next.RetentionColors == nil {
		next.RetentionColors = map[string]string{}
	}
	if next.BurnoutColors == nil {
		next.BurnoutColors = map[string]string{}
	}
	next.Version = domain.TaxonomyVersion

	if err := next.Validate(); err != nil {
		return domain.Taxonomy{}, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.taxonomy.Save(ctx, next); err != nil {
		return domain.Taxonomy{}, apperrors.NewStorageError(err)
	}

	s.publish(ctx, events.New(events.EventTaxonomyUpdated, actor, "", events.TaxonomyUpdatedPayload{
		Version:    next.Version,
		SchoolName: next.SchoolName,
	}))
	return next.Redacted(), nil
}

// ChangePassword sets a new credential for role, stored as a bcrypt hash.
func (s *SettingsService) ChangePassword(ctx context.Context, actor, role domain.Role, newPassword, confirm string) error {
	if !role.Valid() {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	if newPassword == "" {
		return apperrors.NewValidationError("password is required", map[string]any{"field": "newPassword"})
	}
	if newPassword != confirm {
		return apperrors.NewValidationError("passwords do not match", map[string]any{"field": "confirm"})
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tax, err := s.taxonomy.LoadStrict(ctx)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if tax.Passwords == nil {
		tax.Passwords = map[domain.Role]string{}
	}
	tax.Passwords[role] = hash
	if err := s.taxonomy.Save(ctx, tax); err != nil {
		return apperrors.NewStorageError(err)
	}

	s.publish(ctx, events.New(events.EventPasswordChanged, actor, "", events.PasswordChangedPayload{Role: role}))
	return nil
}

func (s *SettingsService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
