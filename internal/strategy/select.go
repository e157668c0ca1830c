// Package strategy - select.go implements candidate generation and angle
// selection: deterministic scoring, optional external scoring with silent
// fallback, and the safe-angle and default-angle paths.
package strategy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// Deterministic relevance score increments
const (
	scorePersonaMatch  = 2
	scoreIndustryMatch = 2
	scorePerSignal     = 1
)

// Candidate is an angle with its deterministic relevance score
type Candidate struct {
	Angle *types.Angle
	Score int
}

// SelectAngle picks the messaging angle for a brief. The returned metadata
// records the method used, per-candidate scores, and any scorer fallback
// reason. SelectAngle never returns an empty angle id.
func (c *Catalog) SelectAngle(ctx context.Context, signals []types.Signal, diag types.PersonaDiagnostics, industry, companyName string, scorer Scorer) (string, types.SelectionMetadata) {
	// Ambiguity resolution forces the persona's designated safe angle;
	// scoring is skipped entirely.
	if diag.SafeAngleOnly {
		return diag.SafeAngleID, types.SelectionMetadata{
			Method: types.SelectionSafeAngle,
		}
	}

	candidates := c.GenerateCandidates(signals, diag, industry)
	if len(candidates) == 0 {
		return c.DefaultAngleID, types.SelectionMetadata{
			Method: types.SelectionDefault,
		}
	}

	deterministic := func(reason string) (string, types.SelectionMetadata) {
		meta := types.SelectionMetadata{
			Method:         types.SelectionDeterministic,
			Scores:         candidateScores(candidates),
			FallbackReason: reason,
		}
		// Highest score wins; GenerateCandidates already sorted with
		// insertion-order tie-break.
		return candidates[0].Angle.ID, meta
	}

	if len(candidates) == 1 || scorer == nil {
		return deterministic("")
	}

	resp, err := scorer.ScoreAngles(ctx, buildScoreRequest(diag, companyName, signals, candidates))
	if err != nil {
		return deterministic(fmt.Sprintf("scorer unavailable: %v", err))
	}

	return c.pickScored(candidates, resp)
}

// GenerateCandidates produces the eligible angle list: target-persona match,
// no forbidden product, at least one eligible-or-secondary product, and a
// positive deterministic relevance score. Sorted by score descending with
// insertion order breaking ties, capped at MaxCandidates.
func (c *Catalog) GenerateCandidates(signals []types.Signal, diag types.PersonaDiagnostics, industry string) []Candidate {
	var candidates []Candidate
	for i := range c.Angles {
		angle := &c.Angles[i]
		if !angle.TargetsPersona(diag.PersonaID) {
			continue
		}
		if anyForbidden(angle.Products, diag) {
			continue
		}
		if !anyAllowed(angle.Products, diag) {
			continue
		}
		score := c.relevanceScore(angle, diag, industry, signals)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{Angle: angle, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > c.MaxCandidates {
		candidates = candidates[:c.MaxCandidates]
	}
	return candidates
}

// relevanceScore is the simple deterministic relevance heuristic: +2 for the
// persona match (always true for a candidate), +2 for an industry keyword
// match, +1 per signal whose scope the angle lists.
func (c *Catalog) relevanceScore(angle *types.Angle, diag types.PersonaDiagnostics, industry string, signals []types.Signal) int {
	score := 0
	if angle.TargetsPersona(diag.PersonaID) {
		score += scorePersonaMatch
	}
	if industryMatches(angle.Keywords, industry) {
		score += scoreIndustryMatch
	}
	for _, s := range signals {
		if scopeListed(angle.SignalScopes, s.Scope) {
			score += scorePerSignal
		}
	}
	return score
}

func industryMatches(keywords []string, industry string) bool {
	if industry == "" {
		return false
	}
	lowered := strings.ToLower(industry)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func scopeListed(scopes []types.SignalScope, scope types.SignalScope) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func anyForbidden(products []string, diag types.PersonaDiagnostics) bool {
	for _, p := range products {
		if diag.ProductForbidden(p) {
			return true
		}
	}
	return false
}

func anyAllowed(products []string, diag types.PersonaDiagnostics) bool {
	for _, p := range products {
		if diag.ProductAllowed(p) {
			return true
		}
	}
	return false
}

func candidateScores(candidates []Candidate) map[string]float64 {
	scores := make(map[string]float64, len(candidates))
	for _, cand := range candidates {
		scores[cand.Angle.ID] = float64(cand.Score)
	}
	return scores
}

// pickScored applies the configured weights to the scorer's sub-scores and
// picks the highest weighted sum, falling back to the static priority
// ordering when the top two are within epsilon.
func (c *Catalog) pickScored(candidates []Candidate, resp *ScoreResponse) (string, types.SelectionMetadata) {
	weighted := make(map[string]float64, len(resp.Scores))
	justifications := make(map[string]string, len(resp.Scores))
	for _, s := range resp.Scores {
		weighted[s.AngleID] = c.Weights.Relevance*s.Relevance +
			c.Weights.Urgency*s.Urgency +
			c.Weights.ReplyLikelihood*s.ReplyLikelihood
		if s.Justification != "" {
			justifications[s.AngleID] = s.Justification
		}
	}

	ordered := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if _, ok := weighted[cand.Angle.ID]; ok {
			ordered = append(ordered, cand.Angle.ID)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return weighted[ordered[i]] > weighted[ordered[j]]
	})

	winner := ordered[0]
	meta := types.SelectionMetadata{
		Method:         types.SelectionScored,
		Scores:         weighted,
		Justifications: justifications,
	}

	if len(ordered) > 1 && weighted[ordered[0]]-weighted[ordered[1]] < c.Epsilon {
		meta.TieBreakUsed = true
		if c.priorityIndex(ordered[1]) < c.priorityIndex(ordered[0]) {
			winner = ordered[1]
		}
	}

	return winner, meta
}
