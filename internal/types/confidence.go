// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ConfidenceTier is an ordered classification of how much citable evidence
// backs a message: generic < low < medium < high.
type ConfidenceTier int

// Confidence tiers in ascending order
const (
	TierGeneric ConfidenceTier = iota
	TierLow
	TierMedium
	TierHigh
)

func (t ConfidenceTier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	default:
		return "generic"
	}
}

// ParseConfidenceTier parses a tier name; unknown names map to generic.
func ParseConfidenceTier(s string) ConfidenceTier {
	switch s {
	case "high":
		return TierHigh
	case "medium":
		return TierMedium
	case "low":
		return TierLow
	default:
		return TierGeneric
	}
}

// MarshalJSON encodes the tier by name
func (t ConfidenceTier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes the tier from its name
func (t *ConfidenceTier) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*t = ParseConfidenceTier(s)
	return nil
}
