// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonaProfile is the static per-persona policy record. Profiles are loaded
// once at process start from configuration and are read-only thereafter.
type PersonaProfile struct {
	ID                string         `json:"id" validate:"required"`
	DisplayName       string         `json:"display_name,omitempty"`
	TitlePatterns     []string       `json:"title_patterns" validate:"required,min=1"`
	EligibleProducts  []string       `json:"eligible_products"`
	SecondaryProducts []string       `json:"secondary_products"`
	ForbiddenProducts []string       `json:"forbidden_products"`
	SafeAngleID       string         `json:"safe_angle_id" validate:"required"`
	AutomationAllowed bool           `json:"automation_allowed"`
	ConfidenceCap     ConfidenceTier `json:"confidence_cap"`
}

// PatternMatch records one title-pattern hit during persona resolution
type PatternMatch struct {
	PersonaID string `json:"persona_id"`
	Pattern   string `json:"pattern"`
	// Position is the index of the pattern's first occurrence in the
	// lowercased title, used by the first_match resolution strategy.
	Position int `json:"position"`
}

// PersonaDiagnostics is the full audit trail of one persona resolution,
// including the effective (possibly ambiguity-constrained) product policy.
type PersonaDiagnostics struct {
	PersonaID       string         `json:"persona_id"`
	Matches         []PatternMatch `json:"matches,omitempty"`
	SelectionReason string         `json:"selection_reason"`

	AmbiguityDetected   bool `json:"ambiguity_detected"`
	FallbackApplied     bool `json:"fallback_applied"`
	SafeAngleOnly       bool `json:"safe_angle_only"`
	ConfidenceDowngrade bool `json:"confidence_downgrade"`

	// Effective policy. For an unambiguous resolution these mirror the
	// persona's profile; for an ambiguous one they are the constrained merge
	// (eligible = intersection, secondary = empty, forbidden = union).
	EligibleProducts  []string `json:"eligible_products"`
	SecondaryProducts []string `json:"secondary_products"`
	ForbiddenProducts []string `json:"forbidden_products"`

	SafeAngleID       string         `json:"safe_angle_id"`
	AutomationAllowed bool           `json:"automation_allowed"`
	ConfidenceCap     ConfidenceTier `json:"confidence_cap"`
}

// ProductAllowed reports whether a product is in the effective eligible or
// secondary set and not in the forbidden set.
func (d *PersonaDiagnostics) ProductAllowed(product string) bool {
	for _, p := range d.ForbiddenProducts {
		if p == product {
			return false
		}
	}
	for _, p := range d.EligibleProducts {
		if p == product {
			return true
		}
	}
	for _, p := range d.SecondaryProducts {
		if p == product {
			return true
		}
	}
	return false
}

// ProductForbidden reports whether a product is in the effective forbidden set
func (d *PersonaDiagnostics) ProductForbidden(product string) bool {
	for _, p := range d.ForbiddenProducts {
		if p == product {
			return true
		}
	}
	return false
}
