package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/persistence"
)

// EmployeeRepository persists the employee collection as a single document.
type EmployeeRepository interface {
	// Load returns the stored collection, or an error when the store or the document cannot be
	// read. Missing data is an empty collection.
	Load(ctx context.Context) ([]domain.Employee, error)
	// List is Load for display: unreadable data yields an empty collection.
	List(ctx context.Context) []domain.Employee
	// ReplaceAll overwrites the stored collection.
	ReplaceAll(ctx context.Context, employees []domain.Employee) error
}

type employeeRepository struct {
	store  persistence.Store
	logger *zap.Logger
}

// NewEmployeeRepository constructs repository.
func NewEmployeeRepository(store persistence.Store, logger *zap.Logger) EmployeeRepository {
	return &employeeRepository{store: store, logger: logger}
}

func (r *employeeRepository) Load(ctx context.Context) ([]domain.Employee, error) {
	raw, found, err := r.store.Load(ctx, persistence.KeyEmployees)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	if !found || raw == "" {
		return []domain.Employee{}, nil
	}

	var employees []domain.Employee
	if err := json.Unmarshal([]byte(raw), &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

func (r *employeeRepository) List(ctx context.Context) []domain.Employee {
	employees, err := r.Load(ctx)
	if err != nil {
		r.logger.Error("list employees", zap.Error(err))
		return []domain.Employee{}
	}
	return employees
}

func (r *employeeRepository) ReplaceAll(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	if err := r.store.Save(ctx, persistence.KeyEmployees, string(raw)); err != nil {
		r.logger.Error("save employees", zap.Int("count", len(employees)), zap.Error(err))
		return fmt.Errorf("save employees: %w", err)
	}
	return nil
}
