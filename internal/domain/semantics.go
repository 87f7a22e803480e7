package domain

// SemanticTags pins option values to a meaning independent of their display position.
// Any tag left empty, or naming a value no longer in its list, falls back to the positional
// convention: first status is active, first potential is top, last potential is the default,
// second retention is at-risk, last retention is critical, the last two burnout levels are high,
// second absence trend is the default.
type SemanticTags struct {
	ActiveStatus        string   `json:"activeStatus,omitempty" yaml:"activeStatus,omitempty"`
	TopPotential        string   `json:"topPotential,omitempty" yaml:"topPotential,omitempty"`
	DefaultPotential    string   `json:"defaultPotential,omitempty" yaml:"defaultPotential,omitempty"`
	DefaultRetention    string   `json:"defaultRetention,omitempty" yaml:"defaultRetention,omitempty"`
	AtRiskRetention     string   `json:"atRiskRetention,omitempty" yaml:"atRiskRetention,omitempty"`
	CriticalRetention   string   `json:"criticalRetention,omitempty" yaml:"criticalRetention,omitempty"`
	DefaultBurnout      string   `json:"defaultBurnout,omitempty" yaml:"defaultBurnout,omitempty"`
	HighBurnout         []string `json:"highBurnout,omitempty" yaml:"highBurnout,omitempty"`
	DefaultAbsenceTrend string   `json:"defaultAbsenceTrend,omitempty" yaml:"defaultAbsenceTrend,omitempty"`
}

// Semantics is the resolved form of a taxonomy's tags. An empty string means the role has no
// value in the current lists and matches nothing.
type Semantics struct {
	ActiveStatus        string
	TopPotential        string
	DefaultPotential    string
	DefaultRetention    string
	AtRiskRetention     string
	CriticalRetention   string
	DefaultBurnout      string
	DefaultAbsenceTrend string
	highBurnout         map[string]struct{}
}

// Resolve turns explicit tags and positional conventions into semantic accessors.
func (t Taxonomy) Resolve() Semantics {
	var tags SemanticTags
	if t.Semantics != nil {
		tags = *t.Semantics
	}

	sem := Semantics{
		ActiveStatus:        pick(t.StatusOptions, tags.ActiveStatus, 0),
		TopPotential:        pick(t.PotentialOptions, tags.TopPotential, 0),
		DefaultPotential:    pick(t.PotentialOptions, tags.DefaultPotential, len(t.PotentialOptions)-1),
		DefaultRetention:    pick(t.RetentionOptions, tags.DefaultRetention, 0),
		AtRiskRetention:     pick(t.RetentionOptions, tags.AtRiskRetention, 1),
		CriticalRetention:   pick(t.RetentionOptions, tags.CriticalRetention, len(t.RetentionOptions)-1),
		DefaultBurnout:      pick(t.BurnoutOptions, tags.DefaultBurnout, 0),
		DefaultAbsenceTrend: pick(t.AbsenceTrend, tags.DefaultAbsenceTrend, 1),
		highBurnout:         make(map[string]struct{}),
	}
	if sem.DefaultAbsenceTrend == "" {
		sem.DefaultAbsenceTrend = pick(t.AbsenceTrend, "", 0)
	}

	for _, v := range tags.HighBurnout {
		if indexOf(t.BurnoutOptions, v) >= 0 {
			sem.highBurnout[v] = struct{}{}
		}
	}
	if len(sem.highBurnout) == 0 {
		for i, v := range t.BurnoutOptions {
			if i >= len(t.BurnoutOptions)-2 {
				sem.highBurnout[v] = struct{}{}
			}
		}
	}
	return sem
}

// IsActive reports whether status is the active status.
func (s Semantics) IsActive(status string) bool {
	return s.ActiveStatus != "" && status == s.ActiveStatus
}

// IsTopPotential reports whether potential is the top tier.
func (s Semantics) IsTopPotential(potential string) bool {
	return s.TopPotential != "" && potential == s.TopPotential
}

// IsCriticalRetention reports whether retention is the most severe tier.
func (s Semantics) IsCriticalRetention(retention string) bool {
	return s.CriticalRetention != "" && retention == s.CriticalRetention
}

// IsAtRiskRetention reports whether retention is the at-risk tier.
func (s Semantics) IsAtRiskRetention(retention string) bool {
	return s.AtRiskRetention != "" && retention == s.AtRiskRetention
}

// IsHighBurnout reports whether level is one of the high burnout tiers. Values missing from
// the burnout list never count.
func (s Semantics) IsHighBurnout(level string) bool {
	_, ok := s.highBurnout[level]
	return ok
}

// pick returns tag when it names an entry of list, otherwise list[pos] when in range.
func pick(list []string, tag string, pos int) string {
	if tag != "" && indexOf(list, tag) >= 0 {
		return tag
	}
	if pos < 0 || pos >= len(list) {
		return ""
	}
	return list[pos]
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
