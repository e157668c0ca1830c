// Package validation - coverage.go checks that every referenced signal is
// textually substantiated: tagging a claim without using it is a policy
// failure.
package validation

import (
	"fmt"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// CheckCoverage verifies, for each referenced signal, that at least the
// configured absolute number AND the configured fraction of its key terms
// literally appear in the candidate body, case-insensitively.
func CheckCoverage(candidate types.MessageCandidate, brief *types.ProspectBrief) []types.Issue {
	var issues []types.Issue
	minAbsolute := brief.Constraints.MinAbsoluteTerms
	minFraction := brief.Constraints.MinTermCoverage
	lowered := strings.ToLower(candidate.Body)

	for _, id := range candidate.UsedSignalIDs {
		sig := brief.SignalByID(id)
		if sig == nil {
			continue // reported by claim integrity
		}
		if len(sig.KeyTerms) == 0 {
			continue
		}

		found := 0
		for _, term := range sig.KeyTerms {
			if strings.Contains(lowered, strings.ToLower(term)) {
				found++
			}
		}

		required := minAbsolute
		if required > len(sig.KeyTerms) {
			required = len(sig.KeyTerms)
		}
		fraction := float64(found) / float64(len(sig.KeyTerms))

		if found < required || fraction < minFraction {
			issues = append(issues, types.Issue{
				Code: types.IssueCoverageFailure,
				Detail: fmt.Sprintf("signal %q is tagged but not substantiated: %d/%d key terms present (need %d and %.0f%%)",
					id, found, len(sig.KeyTerms), required, minFraction*100),
				SignalID: id,
			})
		}
	}
	return issues
}
