package types

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignal_DerivesCitedFromPublicURL(t *testing.T) {
	sig, err := NewSignal("sig-1", "Acme opened a second plant in Ohio", "https://example.com/news/plant", ProvenancePublicURL, ScopeCompanySpecific, 14, []string{"Acme", "Ohio"})
	require.NoError(t, err)

	assert.Equal(t, CitabilityCited, sig.Citability)
	assert.Equal(t, "https://example.com/news/plant", sig.SourceURL)
}

func TestNewSignal_PublicURLWithoutSourceIsUncited(t *testing.T) {
	sig, err := NewSignal("sig-1", "Acme opened a second plant in Ohio", "", ProvenancePublicURL, ScopeCompanySpecific, 14, nil)
	require.NoError(t, err)

	assert.Equal(t, CitabilityUncited, sig.Citability)
}

func TestNewSignal_VendorDataNeverCited(t *testing.T) {
	// Even a perfectly good URL does not make vendor data citable.
	sig, err := NewSignal("sig-1", "Headcount listed as 500-1000", "https://example.com/profile", ProvenanceVendorData, ScopeCompanySpecific, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, CitabilityUncited, sig.Citability)
}

func TestNewSignal_UserProvidedWithURLIsCited(t *testing.T) {
	sig, err := NewSignal("sig-1", "They mentioned an audit in the discovery call", "https://example.com/notes", ProvenanceUserProvided, ScopeCompanySpecific, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, CitabilityCited, sig.Citability)
}

func TestNewSignal_InferredIsGeneric(t *testing.T) {
	sig, err := NewSignal("sig-1", "Mid-size manufacturers face recall pressure", "", ProvenanceInferred, ScopeIndustryWide, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, CitabilityGeneric, sig.Citability)
}

func TestNewSignal_RejectsEmptyClaim(t *testing.T) {
	_, err := NewSignal("sig-1", "   ", "", ProvenanceInferred, ScopeCompanySpecific, 0, nil)
	assert.Error(t, err)
}

func TestNewSignal_RejectsNegativeRecency(t *testing.T) {
	_, err := NewSignal("sig-1", "Acme opened a second plant", "", ProvenanceInferred, ScopeCompanySpecific, -1, nil)
	assert.Error(t, err)
}

func TestNewSignal_CapsKeyTerms(t *testing.T) {
	terms := make([]string, MaxKeyTerms+5)
	for i := range terms {
		terms[i] = "term"
	}

	sig, err := NewSignal("sig-1", "A claim with too many key terms attached", "", ProvenanceInferred, ScopeCompanySpecific, 0, terms)
	require.NoError(t, err)
	assert.Len(t, sig.KeyTerms, MaxKeyTerms)
}

func TestIsCitableURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https page", "https://example.com/news/article", true},
		{"http page", "http://example.com/about", true},
		{"empty", "", false},
		{"no scheme", "example.com/news", false},
		{"ftp scheme", "ftp://example.com/file", false},
		{"no host", "https:///path", false},
		{"google search", "https://www.google.com/search?q=acme+news", false},
		{"bing search", "https://bing.com/search?q=acme", false},
		{"generic search path", "https://example.com/search?q=acme", false},
		{"search path without query", "https://example.com/search-tips", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCitableURL(tt.url))
		})
	}
}

func TestIsSearchQueryURL_KnownHosts(t *testing.T) {
	u, err := url.Parse("https://duckduckgo.com/?q=acme")
	require.NoError(t, err)
	assert.True(t, IsSearchQueryURL(u))

	u, err = url.Parse("https://news.example.com/press")
	require.NoError(t, err)
	assert.False(t, IsSearchQueryURL(u))
}

func TestValidProvenance(t *testing.T) {
	assert.True(t, ValidProvenance(ProvenancePublicURL))
	assert.True(t, ValidProvenance(ProvenanceVendorData))
	assert.True(t, ValidProvenance(ProvenanceUserProvided))
	assert.True(t, ValidProvenance(ProvenanceInferred))
	assert.False(t, ValidProvenance(Provenance("rumor")))
}
