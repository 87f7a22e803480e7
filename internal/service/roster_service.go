package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/analytics"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/interchange"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/search"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// RosterService owns the employee collection lifecycle. Mutations are serialized so each one
// reads, changes and persists the whole collection before the next begins.
type RosterService struct {
	mu         sync.Mutex
	employees  repository.EmployeeRepository
	taxonomy   repository.TaxonomyRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// RosterDependencies encapsulates repo requirements for the roster service.
type RosterDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	TaxonomyRepo repository.TaxonomyRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// ImportSummary reports the outcome of a successful import.
type ImportSummary struct {
	Added      int `json:"added" yaml:"added"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Unnamed    int `json:"unnamed" yaml:"unnamed"`
	Total      int `json:"total" yaml:"total"`
}

// NewRosterService builds the service.
func NewRosterService(deps RosterDependencies) *RosterService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		employees:  deps.EmployeeRepo,
		taxonomy:   deps.TaxonomyRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Draft returns an unsaved record carrying the current taxonomy defaults.
func (s *RosterService) Draft(ctx context.Context) domain.Employee {
	return domain.NewEmployee(s.taxonomy.Load(ctx))
}

// List returns the employees matching c, in collection order.
func (s *RosterService) List(ctx context.Context, c search.Criteria) []domain.Employee {
	all := s.employees.List(ctx)
	if c.IsZero() {
		return all
	}
	return search.Filter(all, c)
}

// Get returns the employee with the given id.
func (s *RosterService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	for _, e := range s.employees.List(ctx) {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
}

// NeedsCheckin returns the employees with no recorded check-in.
func (s *RosterService) NeedsCheckin(ctx context.Context) []domain.Employee {
	return analytics.NeedsCheckin(s.employees.List(ctx))
}

// Save replaces the record with the same id, or appends it when the id is new or empty.
// The whole record is written; created reports whether it was appended.
func (s *RosterService) Save(ctx context.Context, actor domain.Role, emp domain.Employee) (saved *domain.Employee, created bool, err error) {
	if !emp.HasName() {
		return nil, false, apperrors.NewValidationError("full name is required", map[string]any{"field": "fullName"})
	}
	if emp.ID == "" {
		emp.ID = domain.NewEmployeeID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.employees.Load(ctx)
	if err != nil {
		return nil, false, apperrors.NewStorageError(err)
	}
	created = true
	for i := range list {
		if list[i].ID == emp.ID {
			list[i] = emp
			created = false
			break
		}
	}
	if created {
		list = append(list, emp)
	}

	if err := s.employees.ReplaceAll(ctx, list); err != nil {
		return nil, false, apperrors.NewStorageError(err)
	}

	eventType := events.EventEmployeeUpdated
	if created {
		eventType = events.EventEmployeeCreated
	}
	s.publish(ctx, events.New(eventType, actor, emp.ID, events.EmployeeChangedPayload{
		FullName: emp.FullName,
		Team:     emp.Team,
		Status:   emp.Status,
	}))
	return &emp, created, nil
}

// Delete removes the record with the given id and persists the result.
func (s *RosterService) Delete(ctx context.Context, actor domain.Role, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.employees.Load(ctx)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	removed := list[idx]
	list = append(list[:idx], list[idx+1:]...)

	if err := s.employees.ReplaceAll(ctx, list); err != nil {
		return apperrors.NewStorageError(err)
	}
	s.publish(ctx, events.New(events.EventEmployeeDeleted, actor, id, events.EmployeeChangedPayload{FullName: removed.FullName}))
	return nil
}

// Import parses data against the current collection and taxonomy. The merged collection is
// persisted only after the whole file parsed successfully and added at least one record.
func (s *RosterService) Import(ctx context.Context, actor domain.Role, data []byte) (*ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.employees.Load(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	tax, err := s.taxonomy.LoadStrict(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	// Rows whose full name is blank after trimming are discarded, whitespace-only names included.
	res, err := interchange.Import(data, existing, tax)
	switch {
	case errors.Is(err, interchange.ErrEmptyFile):
		return nil, apperrors.NewImportError(apperrors.CodeImportInvalidFile, err.Error(), err)
	case errors.Is(err, interchange.ErrNoValidRecords):
		return nil, apperrors.NewImportError(apperrors.CodeImportNoValidRecords, err.Error(), err)
	case err != nil:
		return nil, apperrors.NewInternalError(err)
	}

	summary := &ImportSummary{
		Added:      len(res.Added),
		Duplicates: res.Duplicates,
		Unnamed:    res.Unnamed,
		Total:      len(res.Merged),
	}
	if summary.Added > 0 {
		if err := s.employees.ReplaceAll(ctx, res.Merged); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
	}

	s.logger.Info("employees imported",
		zap.Int("added", summary.Added),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("unnamed", summary.Unnamed),
		zap.Int("total", summary.Total))
	s.publish(ctx, events.New(events.EventEmployeesImported, actor, "", events.EmployeesImportedPayload(*summary)))
	return summary, nil
}

// Export writes the full collection as CSV.
func (s *RosterService) Export(ctx context.Context, w io.Writer) error {
	return interchange.Export(w, s.employees.List(ctx))
}

// ExportXLSX writes the full collection as a spreadsheet.
func (s *RosterService) ExportXLSX(ctx context.Context, w io.Writer) error {
	return interchange.ExportXLSX(w, s.employees.List(ctx))
}

func (s *RosterService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
