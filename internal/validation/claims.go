// Package validation - claims.go covers claim integrity and provenance
// gating: every referenced signal must exist in the brief, and its provenance
// must be permitted for the brief's confidence tier.
package validation

import (
	"fmt"
	"net/url"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// CheckClaimIntegrity reports every referenced signal id that does not exist
// in the brief's signal list. Unknown ids are reported, never silently
// dropped.
func CheckClaimIntegrity(candidate types.MessageCandidate, brief *types.ProspectBrief) []types.Issue {
	var issues []types.Issue
	for _, id := range candidate.UsedSignalIDs {
		if brief.SignalByID(id) == nil {
			issues = append(issues, types.Issue{
				Code:     types.IssueMissingSignalRef,
				Detail:   fmt.Sprintf("candidate references signal %q which is not in the brief", id),
				SignalID: id,
			})
		}
	}
	return issues
}

// CheckProvenance enforces the tier's provenance gate on every referenced
// signal. A public_url signal whose URL does not resolve, or resolves to a
// search-query page, is rejected regardless of tier.
func CheckProvenance(candidate types.MessageCandidate, brief *types.ProspectBrief) []types.Issue {
	var issues []types.Issue
	rules := brief.Constraints.Content

	for _, id := range candidate.UsedSignalIDs {
		sig := brief.SignalByID(id)
		if sig == nil {
			continue // reported by claim integrity
		}

		if sig.Provenance == types.ProvenancePublicURL && !citableSource(sig.SourceURL) {
			issues = append(issues, types.Issue{
				Code:     types.IssueUnresolvableSource,
				Detail:   fmt.Sprintf("signal %q claims public_url provenance but its source %q is not a resolvable citation", id, sig.SourceURL),
				SignalID: id,
			})
			continue
		}

		if !rules.ProvenanceAllowed(sig.Provenance) {
			issues = append(issues, types.Issue{
				Code: types.IssueForbiddenProvenance,
				Detail: fmt.Sprintf("signal %q has provenance %s, not permitted under tier %s",
					id, sig.Provenance, brief.ConfidenceTier),
				SignalID: id,
			})
		}
	}
	return issues
}

func citableSource(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return false
	}
	return !types.IsSearchQueryURL(parsed)
}
