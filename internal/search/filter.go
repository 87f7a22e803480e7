package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/spec-kit/hr-service/internal/domain"
)

// Criteria narrows an employee list. Empty fields impose no constraint.
type Criteria struct {
	Text      string
	Status    string
	Team      string
	Retention string
}

// IsZero reports whether c matches every employee.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Filter returns the employees matching every non-empty criterion, in their original order.
// Text matches case-insensitively as a substring of the full name, roles or team.
func Filter(employees []domain.Employee, c Criteria) []domain.Employee {
	fold := cases.Fold()
	query := fold.String(c.Text)

	out := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if query != "" &&
			!strings.Contains(fold.String(e.FullName), query) &&
			!strings.Contains(fold.String(e.Roles), query) &&
			!strings.Contains(fold.String(e.Team), query) {
			continue
		}
		if c.Status != "" && e.Status != c.Status {
			continue
		}
		if c.Team != "" && e.Team != c.Team {
			continue
		}
		if c.Retention != "" && e.RetentionStatus != c.Retention {
			continue
		}
		out = append(out, e)
	}
	return out
}
