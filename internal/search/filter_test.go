package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-service/internal/domain"
)

func names(list []domain.Employee) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.FullName
	}
	return out
}

func TestFilter_Conjunction(t *testing.T) {
	list := []domain.Employee{
		{FullName: "Dana", Team: "Math", Status: "Active"},
		{FullName: "Dan", Team: "Math", Status: "Leave"},
	}

	got := Filter(list, Criteria{Text: "dan", Status: "Active"})
	assert.Equal(t, []string{"Dana"}, names(got))
}

func TestFilter(t *testing.T) {
	list := []domain.Employee{
		{FullName: "Dana Cohen", Roles: "Homeroom", Team: "Math", Status: "Active", RetentionStatus: "green"},
		{FullName: "Avi", Roles: "MATH coordinator", Team: "Science", Status: "Active", RetentionStatus: "red"},
		{FullName: "Rina", Roles: "", Team: "Mathematics", Status: "Leave", RetentionStatus: "red"},
		{FullName: "שרה לוי", Roles: "יועצת", Team: "ייעוץ", Status: "Active", RetentionStatus: "green"},
	}

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"empty criteria keeps all", Criteria{}, []string{"Dana Cohen", "Avi", "Rina", "שרה לוי"}},
		{"text over name roles team", Criteria{Text: "math"}, []string{"Dana Cohen", "Avi", "Rina"}},
		{"text is case insensitive", Criteria{Text: "COHEN"}, []string{"Dana Cohen"}},
		{"hebrew text", Criteria{Text: "לוי"}, []string{"שרה לוי"}},
		{"team is exact", Criteria{Team: "Math"}, []string{"Dana Cohen"}},
		{"retention", Criteria{Retention: "red"}, []string{"Avi", "Rina"}},
		{"all filters", Criteria{Text: "a", Status: "Active", Retention: "red"}, []string{"Avi"}},
		{"no match", Criteria{Text: "zzz"}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(Filter(list, tc.c)))
		})
	}
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Team: "x"}.IsZero())
}
