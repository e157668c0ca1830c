// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Angle is a messaging theme. Angles are loaded once from the strategy
// catalog and are read-only thereafter.
type Angle struct {
	ID             string        `json:"id" validate:"required"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	TargetPersonas []string      `json:"target_personas"`
	Products       []string      `json:"products"`
	PainAreas      []string      `json:"pain_areas"`
	Keywords       []string      `json:"keywords"`
	SignalScopes   []SignalScope `json:"signal_scopes"`
}

// TargetsPersona reports whether the angle lists the persona as a target
func (a *Angle) TargetsPersona(personaID string) bool {
	for _, p := range a.TargetPersonas {
		if p == personaID {
			return true
		}
	}
	return false
}

// Offer is a call-to-action/deliverable paired with an angle
type Offer struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	TargetPersonas []string `json:"target_personas"`
	Products       []string `json:"products"`
	PainAreas      []string `json:"pain_areas"`
}

// TargetsPersona reports whether the offer lists the persona as a target
func (o *Offer) TargetsPersona(personaID string) bool {
	for _, p := range o.TargetPersonas {
		if p == personaID {
			return true
		}
	}
	return false
}

// SelectionMethod records how a strategy selection was made
type SelectionMethod string

// Selection methods
const (
	// SelectionDeterministic is the heuristic highest-score pick
	SelectionDeterministic SelectionMethod = "deterministic"
	// SelectionScored is a pick driven by the external scorer
	SelectionScored SelectionMethod = "scored"
	// SelectionSafeAngle is the forced safe angle under ambiguity
	SelectionSafeAngle SelectionMethod = "safe_angle"
	// SelectionDefault is the configured fallback when no candidate survives
	SelectionDefault SelectionMethod = "default"
)

// SelectionMetadata is the audit record attached to a chosen angle or offer
type SelectionMetadata struct {
	Method SelectionMethod `json:"method"`
	// Scores maps candidate id to its (deterministic or weighted) score.
	Scores map[string]float64 `json:"scores,omitempty"`
	// Justifications maps candidate id to the scorer's one-sentence rationale.
	Justifications map[string]string `json:"justifications,omitempty"`
	TieBreakUsed   bool              `json:"tie_break_used,omitempty"`
	// FallbackReason records why the scorer path was abandoned, when it was.
	FallbackReason string `json:"fallback_reason,omitempty"`
}
