// Package strategy - offer.go selects the offer paired with the chosen
// angle: same product-policy filtering as angles, with a simpler two-term
// deterministic score.
package strategy

import (
	"sort"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// Offer score increments
const (
	offerScorePersona     = 2
	offerScorePainOverlap = 1
)

// SelectOffer picks an offer consistent with the persona's product policy
// and the chosen angle's pain areas. Falls back to the configured default
// offer; never returns an empty id.
func (c *Catalog) SelectOffer(diag types.PersonaDiagnostics, chosenAngleID string) (string, types.SelectionMetadata) {
	angle := c.AngleByID(chosenAngleID)

	type scoredOffer struct {
		offer *types.Offer
		score int
	}
	var eligible []scoredOffer

	for i := range c.Offers {
		offer := &c.Offers[i]
		if anyForbidden(offer.Products, diag) {
			continue
		}
		if !anyAllowed(offer.Products, diag) {
			continue
		}
		score := 0
		if offer.TargetsPersona(diag.PersonaID) {
			score += offerScorePersona
		}
		if angle != nil {
			score += offerScorePainOverlap * painOverlap(offer.PainAreas, angle.PainAreas)
		}
		if score <= 0 {
			continue
		}
		eligible = append(eligible, scoredOffer{offer: offer, score: score})
	}

	if len(eligible) == 0 {
		return c.DefaultOfferID, types.SelectionMetadata{
			Method: types.SelectionDefault,
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	scores := make(map[string]float64, len(eligible))
	for _, so := range eligible {
		scores[so.offer.ID] = float64(so.score)
	}

	return eligible[0].offer.ID, types.SelectionMetadata{
		Method: types.SelectionDeterministic,
		Scores: scores,
	}
}

func painOverlap(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, p := range b {
		set[p] = true
	}
	n := 0
	for _, p := range a {
		if set[p] {
			n++
		}
	}
	return n
}
