// Package validation - structure.go enforces the channel's structural rules:
// word and sentence (or paragraph) bounds, subject handling, and the
// terminal yes/no question requirement.
package validation

import (
	"fmt"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// CheckStructure validates the candidate's shape against the brief's channel
// constraints.
func CheckStructure(candidate types.MessageCandidate, brief *types.ProspectBrief) []types.Issue {
	var issues []types.Issue
	rules := brief.Constraints.Structural
	body := candidate.Body

	words := WordCount(body)
	if rules.MaxWords > 0 && words > rules.MaxWords {
		issues = append(issues, types.Issue{
			Code:   types.IssueWordCountHigh,
			Detail: fmt.Sprintf("body has %d words, maximum for %s is %d", words, rules.Channel, rules.MaxWords),
		})
	}
	if rules.MinWords > 0 && words < rules.MinWords {
		issues = append(issues, types.Issue{
			Code:   types.IssueWordCountLow,
			Detail: fmt.Sprintf("body has %d words, minimum for %s is %d", words, rules.Channel, rules.MinWords),
		})
	}

	unitName := "sentences"
	var units int
	if rules.CountParagraphs {
		unitName = "paragraphs"
		units = len(SplitParagraphs(body))
	} else {
		units = len(SplitSentences(body))
	}
	if rules.MaxSentences > 0 && units > rules.MaxSentences {
		issues = append(issues, types.Issue{
			Code:   types.IssueSentenceHigh,
			Detail: fmt.Sprintf("body has %d %s, maximum for %s is %d", units, unitName, rules.Channel, rules.MaxSentences),
		})
	}
	if rules.MinSentences > 0 && units < rules.MinSentences {
		issues = append(issues, types.Issue{
			Code:   types.IssueSentenceLow,
			Detail: fmt.Sprintf("body has %d %s, minimum for %s is %d", units, unitName, rules.Channel, rules.MinSentences),
		})
	}

	subject := strings.TrimSpace(candidate.Subject)
	if rules.SubjectRequired && subject == "" {
		issues = append(issues, types.Issue{
			Code:   types.IssueSubjectMissing,
			Detail: fmt.Sprintf("channel %s requires a subject line", rules.Channel),
		})
	}
	if !rules.SubjectRequired && subject != "" {
		issues = append(issues, types.Issue{
			Code:   types.IssueSubjectUnwanted,
			Detail: fmt.Sprintf("channel %s does not carry a subject line", rules.Channel),
		})
	}
	if subject != "" && rules.MaxSubjectWords > 0 {
		if n := WordCount(subject); n > rules.MaxSubjectWords {
			issues = append(issues, types.Issue{
				Code:   types.IssueSubjectTooLong,
				Detail: fmt.Sprintf("subject has %d words, maximum is %d", n, rules.MaxSubjectWords),
			})
		}
	}

	if rules.MustEndWithQuestion && !EndsWithYesNoQuestion(body) {
		issues = append(issues, types.Issue{
			Code:   types.IssueNoQuestion,
			Detail: fmt.Sprintf("body must end with a yes/no question on %s", rules.Channel),
		})
	}

	return issues
}
