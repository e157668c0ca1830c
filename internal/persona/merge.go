// Package persona - merge.go handles multi-persona ambiguity: strategy-based
// winner selection plus the constrained policy merge that applies regardless
// of which persona wins.
package persona

import (
	"fmt"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// resolveAmbiguous picks a winning persona per the configured strategy, then
// overlays the constrained merged policy: eligible products become the
// intersection across all matched personas, secondary products empty,
// forbidden products the union, with safe-angle-only and confidence-downgrade
// set. The merge is the same no matter which persona wins.
func (r *Resolver) resolveAmbiguous(matches []types.PatternMatch, matchedOrder []string) types.PersonaDiagnostics {
	winnerID, reason := r.pickWinner(matches, matchedOrder)
	winner := r.byID[winnerID]

	eligible := intersectProducts(r.matchedProfiles(matchedOrder))
	forbidden := unionForbidden(r.matchedProfiles(matchedOrder))

	return types.PersonaDiagnostics{
		PersonaID:           winnerID,
		Matches:             matches,
		SelectionReason:     reason,
		AmbiguityDetected:   true,
		SafeAngleOnly:       true,
		ConfidenceDowngrade: true,
		EligibleProducts:    eligible,
		SecondaryProducts:   []string{},
		ForbiddenProducts:   forbidden,
		SafeAngleID:         winner.SafeAngleID,
		AutomationAllowed:   winner.AutomationAllowed,
		ConfidenceCap:       winner.ConfidenceCap,
	}
}

func (r *Resolver) matchedProfiles(ids []string) []*types.PersonaProfile {
	profiles := make([]*types.PersonaProfile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, r.byID[id])
	}
	return profiles
}

// pickWinner applies the configured resolution strategy. Ties resolve to the
// earlier persona in table order, which matchedOrder preserves.
func (r *Resolver) pickWinner(matches []types.PatternMatch, matchedOrder []string) (string, string) {
	switch r.strategy {
	case StrategyFirstMatch:
		best := matches[0]
		for _, m := range matches[1:] {
			if m.Position < best.Position {
				best = m
			}
		}
		return best.PersonaID, fmt.Sprintf(
			"ambiguous title; first_match chose %q (pattern %q at offset %d)",
			best.PersonaID, best.Pattern, best.Position)

	case StrategyBroadest:
		winner := matchedOrder[0]
		size := len(r.byID[winner].EligibleProducts)
		for _, id := range matchedOrder[1:] {
			if n := len(r.byID[id].EligibleProducts); n > size {
				winner, size = id, n
			}
		}
		return winner, fmt.Sprintf(
			"ambiguous title; broadest chose %q (%d eligible products)", winner, size)

	default: // StrategyMostRestrictive
		winner := matchedOrder[0]
		size := len(r.byID[winner].ForbiddenProducts)
		for _, id := range matchedOrder[1:] {
			if n := len(r.byID[id].ForbiddenProducts); n > size {
				winner, size = id, n
			}
		}
		return winner, fmt.Sprintf(
			"ambiguous title; most_restrictive chose %q (%d forbidden products)", winner, size)
	}
}

// intersectProducts returns the products eligible for every matched persona,
// in the first profile's order.
func intersectProducts(profiles []*types.PersonaProfile) []string {
	if len(profiles) == 0 {
		return []string{}
	}
	out := []string{}
	for _, product := range profiles[0].EligibleProducts {
		everywhere := true
		for _, p := range profiles[1:] {
			if !containsProduct(p.EligibleProducts, product) {
				everywhere = false
				break
			}
		}
		if everywhere {
			out = append(out, product)
		}
	}
	return out
}

// unionForbidden returns the union of forbidden sets, order-preserving
func unionForbidden(profiles []*types.PersonaProfile) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, p := range profiles {
		for _, product := range p.ForbiddenProducts {
			if seen[product] {
				continue
			}
			seen[product] = true
			out = append(out, product)
		}
	}
	return out
}

func containsProduct(products []string, product string) bool {
	for _, p := range products {
		if p == product {
			return true
		}
	}
	return false
}
