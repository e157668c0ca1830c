// Package confidence derives a confidence tier from the citable evidence
// available, clamped and downgraded by persona policy. All adjustments are
// monotone non-increasing: the final tier never exceeds the raw tier.
package confidence

import (
	"fmt"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// Tier thresholds: cited-signal count → raw tier
const (
	countLow    = 1
	countMedium = 2
	countHigh   = 3
)

// Compute derives the final tier and an auditable note. The note always
// states the raw cited count first, then every override applied, in the
// fixed order: citation-quality forcing, persona cap, ambiguity downgrade.
func Compute(signals []types.Signal, diag types.PersonaDiagnostics, citationQualityProblem bool) (types.ConfidenceTier, string) {
	cited := 0
	for _, s := range signals {
		if s.Citability == types.CitabilityCited {
			cited++
		}
	}

	tier := rawTier(cited)
	note := fmt.Sprintf("%d cited signals -> %s", cited, tier)

	if citationQualityProblem && tier > types.TierGeneric {
		tier = types.TierGeneric
		note += "; forced generic: source returned content without extractable citations"
	}

	if tier > diag.ConfidenceCap {
		tier = diag.ConfidenceCap
		note += fmt.Sprintf("; capped at %s by persona policy", diag.ConfidenceCap)
	}

	if diag.ConfidenceDowngrade && tier > types.TierGeneric {
		tier--
		note += fmt.Sprintf("; downgraded to %s: ambiguous persona resolution", tier)
	}

	return tier, note
}

func rawTier(cited int) types.ConfidenceTier {
	switch {
	case cited >= countHigh:
		return types.TierHigh
	case cited >= countMedium:
		return types.TierMedium
	case cited >= countLow:
		return types.TierLow
	default:
		return types.TierGeneric
	}
}
