package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

func validOptions(t *testing.T) AssembleOptions {
	t.Helper()
	sig, err := types.NewSignal("sig-1", "Acme Foods failed an FDA audit at the Columbus plant",
		"https://news.example.com/acme-audit", types.ProvenancePublicURL, types.ScopeCompanySpecific, 14, []string{"FDA", "audit"})
	require.NoError(t, err)

	return AssembleOptions{
		CompanyName: "Acme Foods",
		Industry:    "food manufacturing",
		RoleTitle:   "VP Quality",
		Persona: types.PersonaDiagnostics{
			PersonaID:         "quality",
			AutomationAllowed: true,
			ConfidenceCap:     types.TierHigh,
		},
		ConfidenceTier: types.TierLow,
		ConfidenceNote: "1 cited signals -> low",
		Signals:        []types.Signal{*sig},
		ChosenAngleID:  "audit_readiness",
		AngleSelection: types.SelectionMetadata{Method: types.SelectionDeterministic},
		ChosenOfferID:  "audit_gap_checklist",
		OfferSelection: types.SelectionMetadata{Method: types.SelectionDeterministic},
	}
}

func TestAssemble_Valid(t *testing.T) {
	b, err := Assemble(validOptions(t))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Acme Foods", b.CompanyName)
	assert.Equal(t, types.TierLow, b.ConfidenceTier)
	assert.False(t, b.ReviewRequired)
	assert.Empty(t, b.ReviewReasons)
}

func TestAssemble_FreshIDPerAssembly(t *testing.T) {
	a, err := Assemble(validOptions(t))
	require.NoError(t, err)
	b, err := Assemble(validOptions(t))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAssemble_ContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AssembleOptions)
		detail string
	}{
		{
			"missing company",
			func(o *AssembleOptions) { o.CompanyName = "" },
			"company name",
		},
		{
			"empty angle id",
			func(o *AssembleOptions) { o.ChosenAngleID = "" },
			"chosen angle id",
		},
		{
			"empty offer id",
			func(o *AssembleOptions) { o.ChosenOfferID = "" },
			"chosen offer id",
		},
		{
			"duplicate signal ids",
			func(o *AssembleOptions) { o.Signals = append(o.Signals, o.Signals[0]) },
			"duplicate signal id",
		},
		{
			"unknown provenance",
			func(o *AssembleOptions) { o.Signals[0].Provenance = "rumor" },
			"unknown provenance",
		},
		{
			"cited without citable URL",
			func(o *AssembleOptions) { o.Signals[0].SourceURL = "https://www.google.com/search?q=acme" },
			"citable page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions(t)
			tt.mutate(&opts)

			_, err := Assemble(opts)
			require.Error(t, err)

			var cerr *ContractError
			require.ErrorAs(t, err, &cerr)
			assert.Contains(t, cerr.Error(), tt.detail)
		})
	}
}

func TestAssemble_ReviewFlags(t *testing.T) {
	opts := validOptions(t)
	opts.Persona.AutomationAllowed = false
	opts.Persona.AmbiguityDetected = true

	b, err := Assemble(opts)
	require.NoError(t, err)
	assert.True(t, b.ReviewRequired)
	assert.Len(t, b.ReviewReasons, 2)

	opts = validOptions(t)
	opts.Persona.FallbackApplied = true
	b, err = Assemble(opts)
	require.NoError(t, err)
	assert.True(t, b.ReviewRequired)
	require.Len(t, b.ReviewReasons, 1)
	assert.Contains(t, b.ReviewReasons[0], "default applied")
}
