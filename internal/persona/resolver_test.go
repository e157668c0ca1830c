package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

func testProfiles() []types.PersonaProfile {
	return []types.PersonaProfile{
		{
			ID:                "quality",
			TitlePatterns:     []string{"quality", "regulatory affairs"},
			EligibleProducts:  []string{"qms", "compliance_docs"},
			SecondaryProducts: []string{"analytics"},
			ForbiddenProducts: []string{"finops"},
			SafeAngleID:       "audit_readiness",
			AutomationAllowed: true,
			ConfidenceCap:     types.TierHigh,
		},
		{
			ID:                "operations",
			TitlePatterns:     []string{"operations", "plant manager"},
			EligibleProducts:  []string{"mes", "analytics", "qms"},
			SafeAngleID:       "downtime_reduction",
			AutomationAllowed: true,
			ConfidenceCap:     types.TierHigh,
		},
		{
			ID:                "finance",
			TitlePatterns:     []string{"finance", "cfo"},
			EligibleProducts:  []string{"finops", "analytics"},
			ForbiddenProducts: []string{"qms", "mes"},
			SafeAngleID:       "cost_visibility",
			AutomationAllowed: false,
			ConfidenceCap:     types.TierMedium,
		},
		{
			ID:                "general",
			TitlePatterns:     []string{"business leader"},
			EligibleProducts:  []string{"analytics"},
			SafeAngleID:       "data_blindspots",
			AutomationAllowed: false,
			ConfidenceCap:     types.TierLow,
		},
	}
}

func newTestResolver(t *testing.T, strategy ResolutionStrategy) *Resolver {
	t.Helper()
	r, err := NewResolver(testProfiles(), "general", strategy)
	require.NoError(t, err)
	return r
}

func TestNewResolver_Validation(t *testing.T) {
	_, err := NewResolver(nil, "general", "")
	assert.Error(t, err)

	profiles := testProfiles()
	profiles[1].ID = "quality"
	_, err = NewResolver(profiles, "general", "")
	assert.ErrorContains(t, err, "duplicate persona id")

	_, err = NewResolver(testProfiles(), "nobody", "")
	assert.ErrorContains(t, err, "not found")

	_, err = NewResolver(testProfiles(), "general", "coin_flip")
	assert.ErrorContains(t, err, "unknown resolution strategy")
}

func TestResolve_SingleMatch(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	d := r.Resolve("VP Quality")
	assert.Equal(t, "quality", d.PersonaID)
	assert.False(t, d.AmbiguityDetected)
	assert.False(t, d.FallbackApplied)
	assert.False(t, d.SafeAngleOnly)
	assert.False(t, d.ConfidenceDowngrade)
	assert.Equal(t, []string{"qms", "compliance_docs"}, d.EligibleProducts)
	assert.Equal(t, []string{"analytics"}, d.SecondaryProducts)
	assert.Equal(t, types.TierHigh, d.ConfidenceCap)
	assert.Contains(t, d.SelectionReason, `single persona "quality" matched`)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	assert.Equal(t, "finance", r.Resolve("CFO").PersonaID)
	assert.Equal(t, "finance", r.Resolve("Chief Financial Officer (cfo)").PersonaID)
}

func TestResolve_NoMatchFallsBackToDefault(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	d := r.Resolve("Head of Astronomy")
	assert.Equal(t, "general", d.PersonaID)
	assert.True(t, d.FallbackApplied)
	assert.False(t, d.AmbiguityDetected)
	assert.Equal(t, types.TierLow, d.ConfidenceCap)
	assert.Contains(t, d.SelectionReason, `default persona "general" applied`)
}

func TestResolve_EmptyTitleFallsBackToDefault(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	d := r.Resolve("   ")
	assert.Equal(t, "general", d.PersonaID)
	assert.True(t, d.FallbackApplied)
	assert.Empty(t, d.Matches)
}

func TestResolve_AmbiguousMergesPolicies(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	// Matches both quality and operations.
	d := r.Resolve("Director of Quality and Operations")
	assert.True(t, d.AmbiguityDetected)
	assert.True(t, d.SafeAngleOnly)
	assert.True(t, d.ConfidenceDowngrade)

	// Eligible is the intersection, secondary is emptied, forbidden the union.
	assert.Equal(t, []string{"qms"}, d.EligibleProducts)
	assert.Empty(t, d.SecondaryProducts)
	assert.Equal(t, []string{"finops"}, d.ForbiddenProducts)
}

func TestResolve_AmbiguousDisjointEligibleSets(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	// finance and operations share only analytics, and finance forbids what
	// operations sells.
	d := r.Resolve("VP Finance and Operations")
	assert.True(t, d.AmbiguityDetected)
	assert.Empty(t, d.EligibleProducts)
	assert.Equal(t, []string{"qms", "mes"}, d.ForbiddenProducts)
}

func TestResolve_MostRestrictiveWinner(t *testing.T) {
	r := newTestResolver(t, StrategyMostRestrictive)

	// finance has two forbidden products, quality has one.
	d := r.Resolve("Director of Quality and Finance")
	assert.Equal(t, "finance", d.PersonaID)
	assert.Contains(t, d.SelectionReason, "most_restrictive")
}

func TestResolve_BroadestWinner(t *testing.T) {
	r := newTestResolver(t, StrategyBroadest)

	// operations has three eligible products, quality has two.
	d := r.Resolve("Director of Quality and Operations")
	assert.Equal(t, "operations", d.PersonaID)
	assert.Contains(t, d.SelectionReason, "broadest")
}

func TestResolve_FirstMatchWinner(t *testing.T) {
	r := newTestResolver(t, StrategyFirstMatch)

	d := r.Resolve("Operations and Quality Director")
	assert.Equal(t, "operations", d.PersonaID)
	assert.Contains(t, d.SelectionReason, "first_match")

	d = r.Resolve("Quality and Operations Director")
	assert.Equal(t, "quality", d.PersonaID)
}

func TestResolve_TieGoesToTableOrder(t *testing.T) {
	r := newTestResolver(t, StrategyBroadest)

	// quality and finance both have two eligible products; quality comes
	// first in the table.
	d := r.Resolve("Quality and Finance Director")
	assert.Equal(t, "quality", d.PersonaID)
}

func TestNewResolver_EmptyStrategyDefaultsToMostRestrictive(t *testing.T) {
	r := newTestResolver(t, "")

	// finance has two forbidden products, quality has one.
	d := r.Resolve("Director of Quality and Finance")
	assert.Equal(t, "finance", d.PersonaID)
	assert.Contains(t, d.SelectionReason, "most_restrictive")
}

func TestResolver_Accessors(t *testing.T) {
	r := newTestResolver(t, "")

	assert.Equal(t, "general", r.DefaultPersonaID())
	require.NotNil(t, r.Profile("quality"))
	assert.Equal(t, "audit_readiness", r.Profile("quality").SafeAngleID)
	assert.Nil(t, r.Profile("nobody"))
}
