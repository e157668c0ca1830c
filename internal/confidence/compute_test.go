package confidence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

func citedSignals(t *testing.T, n int) []types.Signal {
	t.Helper()
	signals := make([]types.Signal, 0, n)
	for i := 0; i < n; i++ {
		sig, err := types.NewSignal(
			fmt.Sprintf("sig-%d", i+1),
			fmt.Sprintf("Cited fact number %d about the prospect", i+1),
			fmt.Sprintf("https://news.example.com/fact-%d", i+1),
			types.ProvenancePublicURL,
			types.ScopeCompanySpecific,
			10,
			nil,
		)
		require.NoError(t, err)
		signals = append(signals, *sig)
	}
	return signals
}

func uncapped() types.PersonaDiagnostics {
	return types.PersonaDiagnostics{PersonaID: "quality", ConfidenceCap: types.TierHigh}
}

func TestCompute_Thresholds(t *testing.T) {
	tests := []struct {
		cited int
		want  types.ConfidenceTier
	}{
		{0, types.TierGeneric},
		{1, types.TierLow},
		{2, types.TierMedium},
		{3, types.TierHigh},
		{7, types.TierHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d cited", tt.cited), func(t *testing.T) {
			tier, note := Compute(citedSignals(t, tt.cited), uncapped(), false)
			assert.Equal(t, tt.want, tier)
			assert.Contains(t, note, fmt.Sprintf("%d cited signals -> %s", tt.cited, tt.want))
		})
	}
}

func TestCompute_UncitedSignalsDoNotCount(t *testing.T) {
	vendor, err := types.NewSignal("sig-v", "Headcount listed as 500-1000", "", types.ProvenanceVendorData, types.ScopeCompanySpecific, 0, nil)
	require.NoError(t, err)
	inferred, err := types.NewSignal("sig-i", "Mid-size plants face recall pressure", "", types.ProvenanceInferred, types.ScopeIndustryWide, 0, nil)
	require.NoError(t, err)

	tier, _ := Compute([]types.Signal{*vendor, *inferred}, uncapped(), false)
	assert.Equal(t, types.TierGeneric, tier)
}

func TestCompute_CitationQualityProblemForcesGeneric(t *testing.T) {
	tier, note := Compute(citedSignals(t, 3), uncapped(), true)
	assert.Equal(t, types.TierGeneric, tier)
	assert.Contains(t, note, "forced generic")
}

func TestCompute_PersonaCapClampsTier(t *testing.T) {
	diag := uncapped()
	diag.ConfidenceCap = types.TierMedium

	tier, note := Compute(citedSignals(t, 3), diag, false)
	assert.Equal(t, types.TierMedium, tier)
	assert.Contains(t, note, "capped at medium by persona policy")
}

func TestCompute_CapBelowRawDoesNotAnnotate(t *testing.T) {
	diag := uncapped()
	diag.ConfidenceCap = types.TierHigh

	_, note := Compute(citedSignals(t, 1), diag, false)
	assert.NotContains(t, note, "capped")
}

func TestCompute_AmbiguityDowngradesOneTier(t *testing.T) {
	diag := uncapped()
	diag.ConfidenceDowngrade = true

	tier, note := Compute(citedSignals(t, 3), diag, false)
	assert.Equal(t, types.TierMedium, tier)
	assert.Contains(t, note, "downgraded to medium: ambiguous persona resolution")
}

func TestCompute_DowngradeNeverGoesBelowGeneric(t *testing.T) {
	diag := uncapped()
	diag.ConfidenceDowngrade = true

	tier, note := Compute(nil, diag, false)
	assert.Equal(t, types.TierGeneric, tier)
	assert.NotContains(t, note, "downgraded")
}

func TestCompute_OverridesStack(t *testing.T) {
	// Cap to medium first, then downgrade for ambiguity: two tiers below raw.
	diag := uncapped()
	diag.ConfidenceCap = types.TierMedium
	diag.ConfidenceDowngrade = true

	tier, note := Compute(citedSignals(t, 4), diag, false)
	assert.Equal(t, types.TierLow, tier)
	assert.Contains(t, note, "4 cited signals -> high")
	assert.Contains(t, note, "capped at medium")
	assert.Contains(t, note, "downgraded to low")
}
