package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medley/agentic-sales-framework-sub000/internal/research"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

func TestExtract_NilAndEmpty(t *testing.T) {
	assert.Empty(t, Extract(nil))
	assert.Empty(t, Extract(&research.RawSources{}))
}

func TestExtract_CitationWithURL(t *testing.T) {
	raw := &research.RawSources{
		Citations: []research.CitationRecord{
			{Text: "Acme Foods failed an FDA audit at the Columbus plant", URL: "https://news.example.com/acme", AgeDays: 14},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 1)
	assert.Equal(t, "sig-1", signals[0].ID)
	assert.Equal(t, types.ProvenancePublicURL, signals[0].Provenance)
	assert.Equal(t, types.CitabilityCited, signals[0].Citability)
	assert.Equal(t, types.ScopeCompanySpecific, signals[0].Scope)
	assert.Equal(t, 14, signals[0].RecencyDays)
	assert.NotEmpty(t, signals[0].KeyTerms)
}

func TestExtract_CitationWithSearchURLDowngraded(t *testing.T) {
	raw := &research.RawSources{
		Citations: []research.CitationRecord{
			{Text: "Acme Foods reportedly expanding into frozen meals", URL: "https://www.google.com/search?q=acme+frozen"},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 1)
	assert.Equal(t, types.ProvenanceInferred, signals[0].Provenance)
	assert.Equal(t, types.CitabilityGeneric, signals[0].Citability)
	assert.Empty(t, signals[0].SourceURL)
}

func TestExtract_CitationScopes(t *testing.T) {
	raw := &research.RawSources{
		Citations: []research.CitationRecord{
			{Text: "New FDA guidance tightens batch-record review", URL: "https://example.com/fda", Regulatory: true},
			{Text: "Food manufacturers face rising recall volumes", URL: "https://example.com/trend", IndustryNew: true},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 2)
	assert.Equal(t, types.ScopeRegulatory, signals[0].Scope)
	assert.Equal(t, types.ScopeIndustryWide, signals[1].Scope)
}

func TestExtract_VendorFieldsSkipPlaceholders(t *testing.T) {
	raw := &research.RawSources{
		VendorProfile: []research.VendorField{
			{Name: "employee_range", Value: "500-1000 employees"},
			{Name: "revenue", Value: "N/A"},
			{Name: "funding", Value: "-"},
			{Name: "tech_stack", Value: "unknown"},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 1)
	assert.Equal(t, "employee_range: 500-1000 employees", signals[0].Claim)
	assert.Equal(t, types.ProvenanceVendorData, signals[0].Provenance)
	assert.Equal(t, types.CitabilityUncited, signals[0].Citability)
}

func TestExtract_UserNotes(t *testing.T) {
	raw := &research.RawSources{
		UserNotes: []research.UserNote{
			{Text: "They mentioned an audit coming up in the discovery call", AgeDays: 3},
			{Text: "Their press release confirms the Columbus expansion", URL: "https://example.com/pr", AgeDays: 5},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 2)
	assert.Equal(t, types.CitabilityUncited, signals[0].Citability)
	assert.Equal(t, types.CitabilityCited, signals[1].Citability)
}

func TestExtract_DropsUnusableClaims(t *testing.T) {
	raw := &research.RawSources{
		Citations: []research.CitationRecord{
			{Text: "tbd"},
			{Text: "short"},
			{Text: "COMPANY OVERVIEW"},
			{Text: "Recent developments:"},
			{Text: "Acme Foods is hiring a Director of Quality Systems", URL: "https://jobs.example.com/acme"},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 1)
	assert.Equal(t, "sig-1", signals[0].ID)
	assert.Contains(t, signals[0].Claim, "Director of Quality Systems")
}

func TestExtract_InferredScope(t *testing.T) {
	raw := &research.RawSources{
		Inferred: []research.InferredFact{
			{Text: "Mid-size food plants typically run quarterly audits", Industry: true},
			{Text: "Acme likely operates two production shifts"},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 2)
	assert.Equal(t, types.ScopeIndustryWide, signals[0].Scope)
	assert.Equal(t, types.ScopeCompanySpecific, signals[1].Scope)
	for _, s := range signals {
		assert.Equal(t, types.CitabilityGeneric, s.Citability)
	}
}

func TestExtract_SequentialIDs(t *testing.T) {
	raw := &research.RawSources{
		Citations: []research.CitationRecord{
			{Text: "Acme Foods failed an FDA audit at the Columbus plant", URL: "https://example.com/a"},
			{Text: "tbd"},
			{Text: "Acme Foods is hiring a Director of Quality Systems", URL: "https://example.com/b"},
		},
	}

	signals := Extract(raw)
	require.Len(t, signals, 2)
	assert.Equal(t, "sig-1", signals[0].ID)
	assert.Equal(t, "sig-2", signals[1].ID)
}

func TestExtractKeyTerms(t *testing.T) {
	terms := ExtractKeyTerms("Acme Foods failed an FDA audit at the Columbus plant, costing 3 weeks of remediation")

	assert.Contains(t, terms, "Acme")
	assert.Contains(t, terms, "FDA")
	assert.Contains(t, terms, "Columbus")
	assert.Contains(t, terms, "3")
	assert.Contains(t, terms, "remediation")
	assert.NotContains(t, terms, "at")
	assert.NotContains(t, terms, "failed")
}

func TestExtractKeyTerms_DedupAndCap(t *testing.T) {
	terms := ExtractKeyTerms("Columbus columbus COLUMBUS Columbus")
	assert.Equal(t, []string{"Columbus"}, terms)

	long := "Alpha Bravo Charlie Delta Echo Foxtrot Golf Hotel India Juliett Kilo Lima"
	assert.Len(t, ExtractKeyTerms(long), types.MaxKeyTerms)
}
