// Package validation checks generated message candidates against a brief's
// policy. Every check is pure and exception-free: checks report issues, they
// never mutate input and never fail outward.
package validation

import (
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// Suite is the fixed set of independent checks applied to every candidate.
// Construct once from configuration; safe for concurrent use.
type Suite struct {
	lexicon         ProductLexicon
	entityAllowList map[string]bool
}

// NewSuite builds a validator suite. A nil allow list uses
// DefaultEntityAllowList.
func NewSuite(lexicon ProductLexicon, entityAllowList []string) *Suite {
	if entityAllowList == nil {
		entityAllowList = DefaultEntityAllowList
	}
	allowed := make(map[string]bool, len(entityAllowList))
	for _, phrase := range entityAllowList {
		allowed[strings.ToLower(phrase)] = true
	}
	if lexicon == nil {
		lexicon = ProductLexicon{}
	}
	return &Suite{
		lexicon:         lexicon,
		entityAllowList: allowed,
	}
}

// Validate runs every check and aggregates the result. The report passes
// only when every validator returned an empty issue list.
func (s *Suite) Validate(candidate types.MessageCandidate, b *types.ProspectBrief) *types.ValidationReport {
	issues := map[string][]types.Issue{
		types.ValidatorClaimIntegrity: CheckClaimIntegrity(candidate, b),
		types.ValidatorProvenance:     CheckProvenance(candidate, b),
		types.ValidatorContent:        s.CheckContentRules(candidate, b),
		types.ValidatorCoverage:       CheckCoverage(candidate, b),
		types.ValidatorProducts:       s.CheckForbiddenProducts(candidate, b),
		types.ValidatorStructure:      CheckStructure(candidate, b),
	}

	total := 0
	for _, list := range issues {
		total += len(list)
	}

	return &types.ValidationReport{
		Passed:      total == 0,
		Issues:      issues,
		TotalIssues: total,
	}
}
