// Package analytics derives dashboard figures from an employee collection and the taxonomy
// that was current when they were requested. Nothing here mutates its inputs or caches results.
package analytics

import (
	"github.com/spec-kit/hr-service/internal/domain"
)

// Fixed palettes for series that have no admin-editable colors, cycled by option index.
var (
	statusPalette    = []string{"#6366f1", "#f59e0b", "#60a5fa", "#f472b6", "#a78bfa"}
	potentialPalette = []string{"#6366f1", "#60a5fa", "#94a3b8", "#e2e8f0"}
	absencePalette   = []string{"#22c55e", "#60a5fa", "#ef4444"}
)

// Summary holds the headline counters.
type Summary struct {
	Total             int `json:"total" yaml:"total"`
	Active            int `json:"active" yaml:"active"`
	OnLeave           int `json:"onLeave" yaml:"onLeave"`
	CriticalRetention int `json:"criticalRetention" yaml:"criticalRetention"`
	AtRiskRetention   int `json:"atRiskRetention" yaml:"atRiskRetention"`
	HighBurnout       int `json:"highBurnout" yaml:"highBurnout"`
	HighPotential     int `json:"highPotential" yaml:"highPotential"`
}

// Point is one option of a distribution.
type Point struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

// Series is an ordered distribution over one option list. Zero counts are kept.
type Series []Point

// NonZero drops zero-count points, as pie charts expect.
func (s Series) NonZero() Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if p.Value > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Distributions groups the per-option series driving the dashboard charts.
type Distributions struct {
	Status       Series `json:"status" yaml:"status"`
	Retention    Series `json:"retention" yaml:"retention"`
	Burnout      Series `json:"burnout" yaml:"burnout"`
	Potential    Series `json:"potential" yaml:"potential"`
	AbsenceTrend Series `json:"absenceTrend" yaml:"absenceTrend"`
	Teams        Series `json:"teams" yaml:"teams"`
}

// Summarize computes the headline counters. Option meaning comes from the resolved semantics
// of tax, so reordering a list with explicit tags does not change the figures.
func Summarize(employees []domain.Employee, tax domain.Taxonomy) Summary {
	sem := tax.Resolve()
	s := Summary{Total: len(employees)}
	for _, e := range employees {
		if sem.IsActive(e.Status) {
			s.Active++
		}
		if sem.IsCriticalRetention(e.RetentionStatus) {
			s.CriticalRetention++
		}
		if sem.IsAtRiskRetention(e.RetentionStatus) {
			s.AtRiskRetention++
		}
		if sem.IsHighBurnout(e.BurnoutLevel) {
			s.HighBurnout++
		}
		if sem.IsTopPotential(e.ManagementPotential) {
			s.HighPotential++
		}
	}
	s.OnLeave = s.Total - s.Active
	return s
}

// Distribute counts employees per option for every configured list.
func Distribute(employees []domain.Employee, tax domain.Taxonomy) Distributions {
	return Distributions{
		Status: series(tax.StatusOptions, employees,
			func(e domain.Employee) string { return e.Status }, paletteColor(statusPalette)),
		Retention: series(tax.RetentionOptions, employees,
			func(e domain.Employee) string { return e.RetentionStatus },
			func(_ int, v string) string { return tax.RetentionColor(v) }),
		Burnout: series(tax.BurnoutOptions, employees,
			func(e domain.Employee) string { return e.BurnoutLevel },
			func(_ int, v string) string { return tax.BurnoutColor(v) }),
		Potential: series(tax.PotentialOptions, employees,
			func(e domain.Employee) string { return e.ManagementPotential }, paletteColor(potentialPalette)),
		AbsenceTrend: series(tax.AbsenceTrend, employees,
			func(e domain.Employee) string { return e.AbsenceTrend }, paletteColor(absencePalette)),
		Teams: series(tax.Teams, employees,
			func(e domain.Employee) string { return e.Team },
			func(int, string) string { return domain.NeutralColor }),
	}
}

// NeedsCheckin returns, in collection order, the employees with no recorded check-in.
func NeedsCheckin(employees []domain.Employee) []domain.Employee {
	out := make([]domain.Employee, 0)
	for _, e := range employees {
		if e.NeedsCheckin() {
			out = append(out, e)
		}
	}
	return out
}

func series(options []string, employees []domain.Employee, field func(domain.Employee) string, color func(int, string) string) Series {
	counts := make(map[string]int, len(options))
	for _, e := range employees {
		counts[field(e)]++
	}
	out := make(Series, len(options))
	for i, opt := range options {
		out[i] = Point{Name: opt, Value: counts[opt], Color: color(i, opt)}
	}
	return out
}

func paletteColor(palette []string) func(int, string) string {
	return func(i int, _ string) string {
		if len(palette) == 0 {
			return domain.NeutralColor
		}
		return palette[i%len(palette)]
	}
}
