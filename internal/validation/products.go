// Package validation - products.go scans candidate text for mentions of
// products the resolved persona must never hear about. Multi-word trigger
// phrases match by substring; single-word identifiers match on word
// boundaries to reduce false positives.
package validation

import (
	"fmt"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// ProductTriggers is the detection lexicon for one product
type ProductTriggers struct {
	// Phrases are multi-word triggers, matched case-insensitively by substring.
	Phrases []string `json:"phrases"`
	// Identifiers are single words unique enough to identify the product,
	// matched with word boundaries.
	Identifiers []string `json:"identifiers"`
}

// ProductLexicon maps product id to its detection lexicon
type ProductLexicon map[string]ProductTriggers

// CheckForbiddenProducts scans the candidate (subject and body) for the
// persona's forbidden products, reporting every product matched together
// with the exact triggering text.
func (s *Suite) CheckForbiddenProducts(candidate types.MessageCandidate, brief *types.ProspectBrief) []types.Issue {
	var issues []types.Issue
	text := candidate.Body
	if candidate.Subject != "" {
		text = candidate.Subject + "\n" + candidate.Body
	}
	lowered := strings.ToLower(text)

	for _, product := range brief.Persona.ForbiddenProducts {
		triggers, ok := s.lexicon[product]
		if !ok {
			continue
		}

		if trigger := matchTrigger(lowered, text, triggers); trigger != "" {
			issues = append(issues, types.Issue{
				Code:   types.IssueForbiddenProduct,
				Detail: fmt.Sprintf("forbidden product %q referenced via %q", product, trigger),
			})
		}
	}
	return issues
}

// matchTrigger returns the first triggering text found, or empty
func matchTrigger(lowered, original string, triggers ProductTriggers) string {
	for _, phrase := range triggers.Phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return phrase
		}
	}
	for _, ident := range triggers.Identifiers {
		if ContainsWord(original, ident) {
			return ident
		}
	}
	return ""
}
