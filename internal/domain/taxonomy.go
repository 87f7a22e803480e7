package domain

import (
	"fmt"
	"strings"
)

// TaxonomyVersion is the schema version written with every saved taxonomy.
const TaxonomyVersion = 1

// NeutralColor is used for any option that has no color assigned.
const NeutralColor = "#94a3b8"

// Role identifies one of the two fixed operator accounts.
type Role string

const (
	RoleCoordinator Role = "coordinator"
	RolePrincipal   Role = "principal"
)

// Roles lists the operator accounts in login precedence order.
func Roles() []Role {
	return []Role{RoleCoordinator, RolePrincipal}
}

// Valid reports whether r is one of the fixed roles.
func (r Role) Valid() bool {
	return r == RoleCoordinator || r == RolePrincipal
}

// Taxonomy is the admin-editable configuration: credentials, labels and the option lists that
// drive record defaults and every dashboard computation. Option list order is display order.
type Taxonomy struct {
	Version          int               `json:"version" yaml:"version"`
	Passwords        map[Role]string   `json:"passwords" yaml:"passwords,omitempty"`
	Labels           map[Role]string   `json:"labels" yaml:"labels"`
	SchoolName       string            `json:"schoolName" yaml:"schoolName"`
	StatusOptions    []string          `json:"statusOptions" yaml:"statusOptions"`
	PotentialOptions []string          `json:"potentialOptions" yaml:"potentialOptions"`
	RetentionOptions []string          `json:"retentionOptions" yaml:"retentionOptions"`
	BurnoutOptions   []string          `json:"burnoutOptions" yaml:"burnoutOptions"`
	AbsenceTrend     []string          `json:"absenceTrend" yaml:"absenceTrend"`
	Teams            []string          `json:"teams" yaml:"teams"`
	RetentionColors  map[string]string `json:"retentionColors" yaml:"retentionColors"`
	BurnoutColors    map[string]string `json:"burnoutColors" yaml:"burnoutColors"`
	Semantics        *SemanticTags     `json:"semantics,omitempty" yaml:"semantics,omitempty"`
}

// DefaultTaxonomy returns a fresh copy of the built-in configuration.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Version: TaxonomyVersion,
		Passwords: map[Role]string{
			RoleCoordinator: "maya2024",
			RolePrincipal:   "principal2024",
		},
		Labels: map[Role]string{
			RoleCoordinator: "רכזת HR",
			RolePrincipal:   "מנהלת",
		},
		SchoolName:       "בית הספר",
		StatusOptions:    []string{"פעיל", `חל"ת`, "שבתון", "חופשת לידה"},
		PotentialOptions: []string{"גבוה", "בינוני", "נמוך", "לא הוערך"},
		RetentionOptions: []string{"ירוק", "צהוב", "אדום"},
		BurnoutOptions:   []string{"נמוכה", "בינונית", "גבוהה", "גבוהה מאוד"},
		AbsenceTrend:     []string{"יורדת", "יציבה", "עולה"},
		Teams: []string{
			"הנהלה", "מדעים", "הומניסטיקה", "מתמטיקה", "אנגלית",
			"חינוך גופני", "אמנויות", "מקצועות טכנולוגיים", "ייעוץ", "מינהל",
		},
		RetentionColors: map[string]string{
			"ירוק": "#22c55e",
			"צהוב": "#eab308",
			"אדום": "#ef4444",
		},
		BurnoutColors: map[string]string{
			"נמוכה":      "#22c55e",
			"בינונית":    "#eab308",
			"גבוהה":      "#f97316",
			"גבוהה מאוד": "#ef4444",
		},
	}
}

// Clone returns a deep copy so callers can edit a draft without touching shared state.
func (t Taxonomy) Clone() Taxonomy {
	out := t
	out.Passwords = cloneMap(t.Passwords)
	out.Labels = cloneMap(t.Labels)
	out.StatusOptions = cloneSlice(t.StatusOptions)
	out.PotentialOptions = cloneSlice(t.PotentialOptions)
	out.RetentionOptions = cloneSlice(t.RetentionOptions)
	out.BurnoutOptions = cloneSlice(t.BurnoutOptions)
	out.AbsenceTrend = cloneSlice(t.AbsenceTrend)
	out.Teams = cloneSlice(t.Teams)
	out.RetentionColors = cloneMap(t.RetentionColors)
	out.BurnoutColors = cloneMap(t.BurnoutColors)
	if t.Semantics != nil {
		tags := *t.Semantics
		tags.HighBurnout = cloneSlice(t.Semantics.HighBurnout)
		out.Semantics = &tags
	}
	return out
}

// Redacted returns a copy with credentials removed, safe to hand to clients.
func (t Taxonomy) Redacted() Taxonomy {
	out := t.Clone()
	out.Passwords = nil
	return out
}

// RetentionColor returns the color for a retention value, or NeutralColor.
func (t Taxonomy) RetentionColor(value string) string {
	return colorOf(t.RetentionColors, value)
}

// BurnoutColor returns the color for a burnout value, or NeutralColor.
func (t Taxonomy) BurnoutColor(value string) string {
	return colorOf(t.BurnoutColors, value)
}

// Validate checks the structural invariants every downstream computation relies on.
func (t Taxonomy) Validate() error {
	lists := []struct {
		name string
		min  int
		vals []string
	}{
		{"statusOptions", 1, t.StatusOptions},
		{"potentialOptions", 1, t.PotentialOptions},
		{"retentionOptions", 2, t.RetentionOptions},
		{"burnoutOptions", 2, t.BurnoutOptions},
		{"absenceTrend", 2, t.AbsenceTrend},
		{"teams", 1, t.Teams},
	}
	for _, l := range lists {
		if len(l.vals) < l.min {
			return fmt.Errorf("%s needs at least %d entries", l.name, l.min)
		}
		seen := make(map[string]struct{}, len(l.vals))
		for _, v := range l.vals {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s contains a blank entry", l.name)
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("%s contains %q twice", l.name, v)
			}
			seen[v] = struct{}{}
		}
	}
	for _, role := range Roles() {
		if t.Passwords[role] == "" {
			return fmt.Errorf("password for %s is empty", role)
		}
	}
	return nil
}

func colorOf(colors map[string]string, value string) string {
	if c, ok := colors[value]; ok && c != "" {
		return c
	}
	return NeutralColor
}

func cloneSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneMap[K comparable](in map[K]string) map[K]string {
	if in == nil {
		return nil
	}
	out := make(map[K]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
