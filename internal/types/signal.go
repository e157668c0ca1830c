// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"net/url"
	"strings"
)

// Provenance classifies where a signal's underlying fact came from
type Provenance string

// Provenance constants define the recognized source classes
const (
	// ProvenancePublicURL is a fact backed by a resolvable public web page
	ProvenancePublicURL Provenance = "public_url"
	// ProvenanceVendorData is a fact taken from an enrichment-vendor profile field
	ProvenanceVendorData Provenance = "vendor_data"
	// ProvenanceUserProvided is a fact supplied directly by the operator
	ProvenanceUserProvided Provenance = "user_provided"
	// ProvenanceInferred is a fact heuristically derived from structured context
	ProvenanceInferred Provenance = "inferred"
)

// Citability classifies how strong a signal's sourcing is
type Citability string

// Citability constants
const (
	// CitabilityCited means the signal can back an explicit factual claim
	CitabilityCited Citability = "cited"
	// CitabilityUncited means the signal may only guide tone, not explicit claims
	CitabilityUncited Citability = "uncited"
	// CitabilityGeneric means the signal carries no citable weight at all
	CitabilityGeneric Citability = "generic"
)

// SignalScope classifies how specific a signal is to the prospect
type SignalScope string

// SignalScope constants
const (
	ScopeCompanySpecific SignalScope = "company_specific"
	ScopeIndustryWide    SignalScope = "industry_wide"
	ScopeRegulatory      SignalScope = "regulatory"
)

// MaxKeyTerms caps the number of key terms extracted per signal
const MaxKeyTerms = 10

// Signal represents a single extracted, provenance-tagged factual claim.
// Signals are immutable once created; construct them only through NewSignal.
type Signal struct {
	ID          string      `json:"id"`
	Claim       string      `json:"claim"`
	SourceURL   string      `json:"source_url,omitempty"`
	Provenance  Provenance  `json:"provenance"`
	Citability  Citability  `json:"citability"`
	Scope       SignalScope `json:"scope"`
	RecencyDays int         `json:"recency_days"`
	KeyTerms    []string    `json:"key_terms,omitempty"`
}

// NewSignal constructs a Signal, deriving citability from provenance and
// enforcing the construction-time contract: a cited signal must carry a
// well-formed, non-search source URL. A signal that would claim citability
// without one is rejected here, not flagged downstream.
func NewSignal(id, claim, sourceURL string, provenance Provenance, scope SignalScope, recencyDays int, keyTerms []string) (*Signal, error) {
	if id == "" {
		return nil, fmt.Errorf("signal id is required")
	}
	if strings.TrimSpace(claim) == "" {
		return nil, fmt.Errorf("signal %s: claim is empty", id)
	}
	if recencyDays < 0 {
		return nil, fmt.Errorf("signal %s: recency_days must be non-negative", id)
	}

	citability := DeriveCitability(provenance, sourceURL)
	if citability == CitabilityCited && !IsCitableURL(sourceURL) {
		return nil, fmt.Errorf("signal %s: cited signal requires a resolvable source URL, got %q", id, sourceURL)
	}

	if len(keyTerms) > MaxKeyTerms {
		keyTerms = keyTerms[:MaxKeyTerms]
	}

	return &Signal{
		ID:          id,
		Claim:       claim,
		SourceURL:   sourceURL,
		Provenance:  provenance,
		Citability:  citability,
		Scope:       scope,
		RecencyDays: recencyDays,
		KeyTerms:    keyTerms,
	}, nil
}

// DeriveCitability computes citability deterministically from provenance.
// There is no independent citability flag anywhere in the system.
func DeriveCitability(provenance Provenance, sourceURL string) Citability {
	switch provenance {
	case ProvenancePublicURL:
		if IsCitableURL(sourceURL) {
			return CitabilityCited
		}
		return CitabilityUncited
	case ProvenanceUserProvided:
		if IsCitableURL(sourceURL) {
			return CitabilityCited
		}
		return CitabilityUncited
	case ProvenanceVendorData:
		return CitabilityUncited
	default:
		return CitabilityGeneric
	}
}

// IsCitableURL reports whether a URL is well-formed http(s) and is not a
// search-engine query URL. Search result URLs prove nothing about the claim.
func IsCitableURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	return !IsSearchQueryURL(parsed)
}

// searchHosts are hosts whose URLs are search result pages, never sources
var searchHosts = []string{
	"google.com",
	"www.google.com",
	"bing.com",
	"www.bing.com",
	"duckduckgo.com",
	"search.yahoo.com",
}

// IsSearchQueryURL reports whether a parsed URL is a search-engine query
func IsSearchQueryURL(u *url.URL) bool {
	host := strings.ToLower(u.Host)
	for _, sh := range searchHosts {
		if host == sh {
			return true
		}
	}
	// Generic heuristic: a /search path with a q= parameter
	if strings.HasPrefix(u.Path, "/search") && u.Query().Get("q") != "" {
		return true
	}
	return false
}

// ValidProvenance reports whether p is one of the recognized provenance classes
func ValidProvenance(p Provenance) bool {
	switch p {
	case ProvenancePublicURL, ProvenanceVendorData, ProvenanceUserProvided, ProvenanceInferred:
		return true
	}
	return false
}
