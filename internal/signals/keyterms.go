// Package signals converts raw research records into classified,
// provenance-tagged signals.
package signals

import (
	"strings"
	"unicode"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// minLowercaseTermLen is the minimum length for a lowercase word to count as
// a key term. Short lowercase words are almost always function words.
const minLowercaseTermLen = 7

// ExtractKeyTerms pulls the lexical tokens used for semantic-coverage checks
// out of a claim: capitalized multi-character words, pure numerals, and
// lowercase words of seven characters or more. Deduplicated, order-preserving,
// capped at types.MaxKeyTerms.
func ExtractKeyTerms(claim string) []string {
	var terms []string
	seen := make(map[string]bool)

	for _, raw := range strings.Fields(claim) {
		token := trimTokenPunct(raw)
		if token == "" {
			continue
		}
		if !isKeyTerm(token) {
			continue
		}
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, token)
		if len(terms) == types.MaxKeyTerms {
			break
		}
	}

	return terms
}

func isKeyTerm(token string) bool {
	if isNumeral(token) {
		return true
	}
	runes := []rune(token)
	if len(runes) >= 2 && unicode.IsUpper(runes[0]) && hasLetter(runes[1:]) {
		return true
	}
	if len(runes) >= minLowercaseTermLen && isLowerWord(runes) {
		return true
	}
	return false
}

func isNumeral(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isLowerWord(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func hasLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// trimTokenPunct strips leading and trailing punctuation from a token
func trimTokenPunct(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
