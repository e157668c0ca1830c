package generation

import (
	"fmt"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// BuildSkeleton produces the deterministic draft outline the model is told to
// follow. The skeleton carries the brief's decisions into the prompt as
// structure, so the model fills slots rather than inventing shape: an opener,
// an optional proof line for each citable signal the tier permits, the pain
// framing from the angle, the offer, and a closing question when the channel
// demands one.
func BuildSkeleton(brief *types.ProspectBrief, angle *types.Angle, offer *types.Offer) string {
	var lines []string

	if brief.Constraints.Content.ForbidCompanyName {
		lines = append(lines, "1. Opener: a general industry observation; do NOT name the company.")
	} else {
		lines = append(lines, fmt.Sprintf("1. Opener: one sentence connecting to %s.", brief.CompanyName))
	}

	n := 2
	maxRefs := brief.Constraints.Content.MaxSignalRefs
	if maxRefs > 0 {
		cited := brief.CitedSignals()
		if len(cited) > maxRefs {
			cited = cited[:maxRefs]
		}
		for _, sig := range cited {
			lines = append(lines, fmt.Sprintf("%d. Proof: reference signal %s (%s).", n, sig.ID, truncateClaim(sig.Claim, 90)))
			n++
		}
	}

	lines = append(lines, fmt.Sprintf("%d. Pain: frame the %s problem in the prospect's terms.", n, angle.Name))
	n++
	lines = append(lines, fmt.Sprintf("%d. Offer: propose the %s.", n, offer.Name))
	n++

	if brief.Constraints.Structural.MustEndWithQuestion {
		lines = append(lines, fmt.Sprintf("%d. Close: a yes/no question inviting a reply.", n))
	} else {
		lines = append(lines, fmt.Sprintf("%d. Close: a low-pressure sign-off.", n))
	}

	return strings.Join(lines, "\n")
}

func truncateClaim(claim string, maxLen int) string {
	if len(claim) <= maxLen {
		return claim
	}
	return claim[:maxLen] + "..."
}
