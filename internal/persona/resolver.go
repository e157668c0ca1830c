// Package persona resolves free-text role titles into personas carrying an
// explicit product-eligibility policy. Resolution is a pure fold over the
// configured persona table; it never fails outward.
package persona

import (
	"fmt"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// ResolutionStrategy selects among personas when a title matches more than one
type ResolutionStrategy string

// Ambiguity resolution strategies
const (
	// StrategyFirstMatch picks the persona whose pattern occurs leftmost in
	// the title.
	StrategyFirstMatch ResolutionStrategy = "first_match"
	// StrategyMostRestrictive picks the persona with the largest forbidden set.
	StrategyMostRestrictive ResolutionStrategy = "most_restrictive"
	// StrategyBroadest picks the persona with the largest eligible set.
	StrategyBroadest ResolutionStrategy = "broadest"
)

// Resolver maps role titles to personas using a static profile table.
// Construct once at process start; safe for concurrent use.
type Resolver struct {
	profiles  []types.PersonaProfile
	byID      map[string]*types.PersonaProfile
	defaultID string
	strategy  ResolutionStrategy
}

// NewResolver builds a resolver over a persona table. The default persona id
// must exist in the table.
func NewResolver(profiles []types.PersonaProfile, defaultID string, strategy ResolutionStrategy) (*Resolver, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("persona table is empty")
	}
	byID := make(map[string]*types.PersonaProfile, len(profiles))
	for i := range profiles {
		if _, dup := byID[profiles[i].ID]; dup {
			return nil, fmt.Errorf("duplicate persona id %q", profiles[i].ID)
		}
		byID[profiles[i].ID] = &profiles[i]
	}
	if _, ok := byID[defaultID]; !ok {
		return nil, fmt.Errorf("default persona %q not found in table", defaultID)
	}
	switch strategy {
	case StrategyFirstMatch, StrategyMostRestrictive, StrategyBroadest:
	case "":
		strategy = StrategyMostRestrictive
	default:
		return nil, fmt.Errorf("unknown resolution strategy %q", strategy)
	}
	return &Resolver{
		profiles:  profiles,
		byID:      byID,
		defaultID: defaultID,
		strategy:  strategy,
	}, nil
}

// Resolve maps a role title to persona diagnostics with a full audit trail.
// An empty title, or a title matching nothing, resolves to the default
// persona with fallback_applied set; Resolve never returns an empty result.
func (r *Resolver) Resolve(title string) types.PersonaDiagnostics {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var matches []types.PatternMatch
	matchedIDs := make(map[string]bool)
	var matchedOrder []string

	if lowered != "" {
		for _, profile := range r.profiles {
			for _, pattern := range profile.TitlePatterns {
				p := strings.ToLower(pattern)
				if p == "" {
					continue
				}
				pos := strings.Index(lowered, p)
				if pos < 0 {
					continue
				}
				matches = append(matches, types.PatternMatch{
					PersonaID: profile.ID,
					Pattern:   pattern,
					Position:  pos,
				})
				if !matchedIDs[profile.ID] {
					matchedIDs[profile.ID] = true
					matchedOrder = append(matchedOrder, profile.ID)
				}
			}
		}
	}

	switch len(matchedOrder) {
	case 0:
		d := r.fullPolicy(r.defaultID)
		d.Matches = matches
		d.FallbackApplied = true
		d.SelectionReason = fmt.Sprintf("no pattern matched; default persona %q applied", r.defaultID)
		return d
	case 1:
		d := r.fullPolicy(matchedOrder[0])
		d.Matches = matches
		d.SelectionReason = fmt.Sprintf("single persona %q matched", matchedOrder[0])
		return d
	default:
		return r.resolveAmbiguous(matches, matchedOrder)
	}
}

// fullPolicy builds diagnostics carrying a persona's unconstrained policy
func (r *Resolver) fullPolicy(id string) types.PersonaDiagnostics {
	p := r.byID[id]
	return types.PersonaDiagnostics{
		PersonaID:         p.ID,
		EligibleProducts:  append([]string(nil), p.EligibleProducts...),
		SecondaryProducts: append([]string(nil), p.SecondaryProducts...),
		ForbiddenProducts: append([]string(nil), p.ForbiddenProducts...),
		SafeAngleID:       p.SafeAngleID,
		AutomationAllowed: p.AutomationAllowed,
		ConfidenceCap:     p.ConfidenceCap,
	}
}

// Profile returns the static profile for a persona id, or nil if unknown
func (r *Resolver) Profile(id string) *types.PersonaProfile {
	return r.byID[id]
}

// DefaultPersonaID returns the configured fallback persona id
func (r *Resolver) DefaultPersonaID() string {
	return r.defaultID
}
