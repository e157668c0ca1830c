// Package validation checks generated message candidates against a brief's
// policy. Every check is pure and exception-free: checks report issues, they
// never mutate input and never fail outward.
package validation

import (
	"regexp"
	"strings"
)

var sentenceEndRe = regexp.MustCompile(`[.!?]+`)

// Words splits text into whitespace-delimited words
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of whitespace-delimited words
func WordCount(text string) int {
	return len(Words(text))
}

// SplitSentences splits text into sentences on terminal punctuation. A
// trailing fragment without terminal punctuation counts as a sentence.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(text, -1) {
		sentence := strings.TrimSpace(text[last:loc[1]])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		last = loc[1]
	}
	if rest := strings.TrimSpace(text[last:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// SplitParagraphs splits text into non-empty paragraphs on blank lines
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// yesNoOpeners are the auxiliaries that open a grammatically yes/no question
var yesNoOpeners = map[string]bool{
	"do": true, "does": true, "did": true,
	"is": true, "are": true, "was": true, "were": true, "am": true,
	"can": true, "could": true, "would": true, "will": true,
	"should": true, "shall": true, "may": true, "might": true,
	"have": true, "has": true, "had": true,
}

// EndsWithYesNoQuestion reports whether the final sentence is a question in
// yes/no form: it must end with '?' AND open with a yes/no auxiliary. A
// wh-question ("What do you think?") does not satisfy it.
func EndsWithYesNoQuestion(text string) bool {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return false
	}
	last := sentences[len(sentences)-1]
	if !strings.HasSuffix(last, "?") {
		return false
	}
	words := Words(last)
	if len(words) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(words[0], `"'(`))
	return yesNoOpeners[first]
}

// EndsWithQuestion reports whether the text ends with a question mark at all
func EndsWithQuestion(text string) bool {
	return strings.HasSuffix(strings.TrimSpace(text), "?")
}

// ContainsWord reports whether needle occurs in haystack as a whole word,
// case-insensitively.
func ContainsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	re, err := wordBoundaryPattern(needle)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}

func wordBoundaryPattern(word string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}
