// Package repair deterministically patches recognized validation failures in
// message candidates. One transform per recognized issue family; unrecognized
// issues pass through unmodified and contribute to eventual failure.
package repair

import (
	"strings"
	"unicode"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
	"github.com/medley/agentic-sales-framework-sub000/internal/validation"
)

// sentenceBoundaryWindow is the tail fraction of the truncation window within
// which a sentence boundary is preferred over a hard word cut.
const sentenceBoundaryWindow = 0.30

// AppendQuestion rewrites the final sentence into question form: trailing
// punctuation is stripped and a '?' appended. If the last clause is empty
// after removing a trailing period, the prior clause is converted instead.
// This guarantees a trailing '?', not that the question reads as yes/no.
func AppendQuestion(body string) string {
	trimmed := strings.TrimRightFunc(body, unicode.IsSpace)
	if trimmed == "" {
		return body
	}

	stripped := strings.TrimRight(trimmed, ".!? ")
	if stripped == "" {
		return trimmed
	}
	return stripped + "?"
}

// MergeSentences repeatedly merges the two adjacent sentences with the
// smallest combined length until the body is within maxSentences or fewer
// than two sentences remain.
func MergeSentences(body string, maxSentences int) string {
	sentences := validation.SplitSentences(body)
	for len(sentences) > maxSentences && len(sentences) >= 2 {
		best := 0
		bestLen := len(sentences[0]) + len(sentences[1])
		for i := 1; i < len(sentences)-1; i++ {
			if combined := len(sentences[i]) + len(sentences[i+1]); combined < bestLen {
				best, bestLen = i, combined
			}
		}
		merged := joinSentences(sentences[best], sentences[best+1])
		sentences = append(sentences[:best], append([]string{merged}, sentences[best+2:]...)...)
	}
	return strings.Join(sentences, " ")
}

// joinSentences fuses two sentences with a connective, keeping the second
// sentence's terminal punctuation.
func joinSentences(first, second string) string {
	first = strings.TrimRight(first, ".!? ")
	secondRunes := []rune(second)
	if len(secondRunes) > 0 {
		secondRunes[0] = unicode.ToLower(secondRunes[0])
	}
	return first + ", and " + string(secondRunes)
}

// TruncateBody cuts the body to maxWords, preferring the nearest sentence
// boundary when one falls within the last 30% of the truncation window.
func TruncateBody(body string, maxWords int) string {
	words := validation.Words(body)
	if len(words) <= maxWords {
		return body
	}

	hard := strings.Join(words[:maxWords], " ")

	// Look for a sentence boundary in the tail of the window.
	windowStart := int(float64(maxWords) * (1 - sentenceBoundaryWindow))
	sentences := validation.SplitSentences(hard)
	if len(sentences) > 1 {
		withoutLast := strings.Join(sentences[:len(sentences)-1], " ")
		if n := validation.WordCount(withoutLast); n >= windowStart {
			return withoutLast
		}
	}

	return strings.TrimRight(hard, ",;: ") + "."
}

// TruncateSubject slices the subject down to maxWords by word count
func TruncateSubject(subject string, maxWords int) string {
	words := validation.Words(subject)
	if len(words) <= maxWords {
		return subject
	}
	return strings.Join(words[:maxWords], " ")
}

// transformFor maps a recognized issue code to its transform kind. Issues
// with no mapping return empty: they are never retried.
func transformFor(code types.IssueCode) types.TransformKind {
	switch code {
	case types.IssueNoQuestion:
		return types.TransformAppendQuestion
	case types.IssueSentenceHigh:
		return types.TransformMergeSentences
	case types.IssueWordCountHigh:
		return types.TransformTruncateBody
	case types.IssueSubjectTooLong:
		return types.TransformTruncateSubject
	case types.IssueWordCountLow, types.IssueSentenceLow:
		// Short is safer than fabricated padding: recorded, not expanded.
		return types.TransformAccepted
	default:
		return ""
	}
}
