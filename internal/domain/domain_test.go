package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy() Taxonomy {
	t := DefaultTaxonomy()
	t.StatusOptions = []string{"A", "B"}
	t.PotentialOptions = []string{"X", "Y", "Z"}
	t.RetentionOptions = []string{"R1", "R2"}
	t.AbsenceTrend = []string{"down", "flat", "up"}
	t.BurnoutOptions = []string{"b1", "b2"}
	return t
}

func TestNewEmployee_AppliesTaxonomyDefaults(t *testing.T) {
	emp := NewEmployee(testTaxonomy())

	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "A", emp.Status)
	assert.Equal(t, "Z", emp.ManagementPotential)
	assert.Equal(t, "R1", emp.RetentionStatus)
	assert.Equal(t, "flat", emp.AbsenceTrend)
	assert.Equal(t, "b1", emp.BurnoutLevel)
	assert.Empty(t, emp.FullName)
	assert.Empty(t, emp.Team)
	assert.Empty(t, emp.LastCheckinDate)
}

func TestNewEmployee_FreshIDs(t *testing.T) {
	tax := DefaultTaxonomy()
	a := NewEmployee(tax)
	b := NewEmployee(tax)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestResolve_PositionalFallback(t *testing.T) {
	tax := DefaultTaxonomy()
	tax.BurnoutOptions = []string{"low", "med", "high", "severe"}

	sem := tax.Resolve()
	assert.True(t, sem.IsHighBurnout("high"))
	assert.True(t, sem.IsHighBurnout("severe"))
	assert.False(t, sem.IsHighBurnout("med"))
	assert.False(t, sem.IsHighBurnout("unknown"))
	assert.True(t, sem.IsCriticalRetention("אדום"))
	assert.True(t, sem.IsAtRiskRetention("צהוב"))
	assert.True(t, sem.IsActive("פעיל"))
	assert.True(t, sem.IsTopPotential("גבוה"))
}

func TestResolve_TagsSurviveReordering(t *testing.T) {
	tax := DefaultTaxonomy()
	tax.RetentionOptions = []string{"אדום", "ירוק", "צהוב"}
	tax.Semantics = &SemanticTags{
		DefaultRetention:  "ירוק",
		AtRiskRetention:   "צהוב",
		CriticalRetention: "אדום",
		HighBurnout:       []string{"גבוהה מאוד"},
	}

	sem := tax.Resolve()
	assert.Equal(t, "ירוק", sem.DefaultRetention)
	assert.True(t, sem.IsCriticalRetention("אדום"))
	assert.True(t, sem.IsAtRiskRetention("צהוב"))
	assert.True(t, sem.IsHighBurnout("גבוהה מאוד"))
	assert.False(t, sem.IsHighBurnout("גבוהה"))
}

func TestResolve_StaleTagFallsBack(t *testing.T) {
	tax := DefaultTaxonomy()
	tax.Semantics = &SemanticTags{ActiveStatus: "removed", HighBurnout: []string{"gone"}}

	sem := tax.Resolve()
	assert.Equal(t, "פעיל", sem.ActiveStatus)
	assert.True(t, sem.IsHighBurnout("גבוהה"))
}

func TestResolve_ShortListsNeverPanic(t *testing.T) {
	tax := Taxonomy{RetentionOptions: []string{"only"}, AbsenceTrend: []string{"flat"}}

	sem := tax.Resolve()
	assert.Equal(t, "", sem.ActiveStatus)
	assert.Equal(t, "", sem.AtRiskRetention)
	assert.Equal(t, "only", sem.CriticalRetention)
	assert.Equal(t, "flat", sem.DefaultAbsenceTrend)
	assert.False(t, sem.IsActive(""))
}

func TestTaxonomy_Validate(t *testing.T) {
	require.NoError(t, DefaultTaxonomy().Validate())

	tax := DefaultTaxonomy()
	tax.Teams = nil
	assert.ErrorContains(t, tax.Validate(), "teams")

	tax = DefaultTaxonomy()
	tax.StatusOptions = []string{"a", "a"}
	assert.ErrorContains(t, tax.Validate(), "twice")

	tax = DefaultTaxonomy()
	tax.BurnoutOptions = []string{"only"}
	assert.ErrorContains(t, tax.Validate(), "burnoutOptions")

	tax = DefaultTaxonomy()
	tax.PotentialOptions = []string{"x", " "}
	assert.ErrorContains(t, tax.Validate(), "blank")

	tax = DefaultTaxonomy()
	tax.Passwords[RolePrincipal] = ""
	assert.ErrorContains(t, tax.Validate(), "principal")
}

func TestTaxonomy_CloneIsDeep(t *testing.T) {
	orig := DefaultTaxonomy()
	clone := orig.Clone()
	clone.Teams[0] = "changed"
	clone.RetentionColors["ירוק"] = "#000000"

	assert.Equal(t, "הנהלה", orig.Teams[0])
	assert.Equal(t, "#22c55e", orig.RetentionColors["ירוק"])
}

func TestTaxonomy_ColorFallback(t *testing.T) {
	tax := DefaultTaxonomy()
	assert.Equal(t, "#ef4444", tax.RetentionColor("אדום"))
	assert.Equal(t, NeutralColor, tax.RetentionColor("סגול"))
	assert.Equal(t, NeutralColor, Taxonomy{}.BurnoutColor("x"))
}

func TestTaxonomy_RedactedDropsPasswords(t *testing.T) {
	tax := DefaultTaxonomy()
	red := tax.Redacted()
	assert.Nil(t, red.Passwords)
	assert.NotEmpty(t, tax.Passwords)
}
