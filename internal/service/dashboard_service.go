package service

import (
	"context"

	"github.com/spec-kit/hr-service/internal/analytics"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
)

// Dashboard is the full projection behind the dashboard screen.
type Dashboard struct {
	SchoolName    string                  `json:"schoolName" yaml:"schoolName"`
	Summary       analytics.Summary       `json:"summary" yaml:"summary"`
	Distributions analytics.Distributions `json:"distributions" yaml:"distributions"`
	NeedsCheckin  []domain.Employee       `json:"needsCheckin" yaml:"-"`
}

// DashboardService computes dashboard figures on demand.
type DashboardService struct {
	employees repository.EmployeeRepository
	taxonomy  repository.TaxonomyRepository
}

// NewDashboardService builds the service.
func NewDashboardService(employees repository.EmployeeRepository, taxonomy repository.TaxonomyRepository) *DashboardService {
	return &DashboardService{employees: employees, taxonomy: taxonomy}
}

// Dashboard recomputes every figure from the stored collection and current taxonomy.
func (s *DashboardService) Dashboard(ctx context.Context) Dashboard {
	list := s.employees.List(ctx)
	tax := s.taxonomy.Load(ctx)
	return Dashboard{
		SchoolName:    tax.SchoolName,
		Summary:       analytics.Summarize(list, tax),
		Distributions: analytics.Distribute(list, tax),
		NeedsCheckin:  analytics.NeedsCheckin(list),
	}
}
