package dto

import (
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/search"
)

// EmployeeListQuery captures query filters for the roster list.
type EmployeeListQuery struct {
	Q         string `query:"q"`
	Status    string `query:"status"`
	Team      string `query:"team"`
	Retention string `query:"retention"`
}

// Criteria converts the query to filter criteria.
func (q EmployeeListQuery) Criteria() search.Criteria {
	return search.Criteria{
		Text:      q.Q,
		Status:    q.Status,
		Team:      q.Team,
		Retention: q.Retention,
	}
}

// EmployeeListResponse wraps a filtered roster page.
type EmployeeListResponse struct {
	Items []domain.Employee `json:"items"`
	Count int               `json:"count"`
}
