// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProspectBrief is the assembled, immutable decision record for one prospect.
// It is the sole input the generation engine and the validators see. Once
// assembled a brief is never mutated; re-runs build a new brief.
type ProspectBrief struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry,omitempty"`
	RoleTitle   string `json:"role_title"`

	Persona PersonaDiagnostics `json:"persona"`

	ConfidenceTier ConfidenceTier `json:"confidence_tier"`
	ConfidenceNote string         `json:"confidence_note"`

	Signals []Signal `json:"signals"`

	ChosenAngleID  string            `json:"chosen_angle_id"`
	AngleSelection SelectionMetadata `json:"angle_selection"`
	ChosenOfferID  string            `json:"chosen_offer_id"`
	OfferSelection SelectionMetadata `json:"offer_selection"`

	Constraints BriefConstraints `json:"constraints"`

	ReviewRequired bool     `json:"review_required"`
	ReviewReasons  []string `json:"review_reasons,omitempty"`
}

// SignalByID returns the signal with the given id, or nil if absent
func (b *ProspectBrief) SignalByID(id string) *Signal {
	for i := range b.Signals {
		if b.Signals[i].ID == id {
			return &b.Signals[i]
		}
	}
	return nil
}

// CitedSignals returns the subset of signals with cited citability
func (b *ProspectBrief) CitedSignals() []Signal {
	var cited []Signal
	for _, s := range b.Signals {
		if s.Citability == CitabilityCited {
			cited = append(cited, s)
		}
	}
	return cited
}
