package repair

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
	"github.com/medley/agentic-sales-framework-sub000/internal/validation"
)

func TestAppendQuestion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"period becomes question", "Would a checklist help.", "Would a checklist help?"},
		{"statement gains question mark", "Let me know", "Let me know?"},
		{"already a question unchanged", "Would a checklist help?", "Would a checklist help?"},
		{"trailing whitespace stripped", "Would a checklist help.  \n", "Would a checklist help?"},
		{"empty unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendQuestion(tt.body))
		})
	}
}

func TestMergeSentences(t *testing.T) {
	body := "One here. Two more. A much longer third sentence with many words. Four!"

	merged := MergeSentences(body, 3)
	assert.Len(t, validation.SplitSentences(merged), 3)

	// The two shortest adjacent sentences fused with a connective.
	assert.Contains(t, merged, "One here, and two more.")
}

func TestMergeSentences_AlreadyWithinBound(t *testing.T) {
	body := "First sentence. Second sentence."
	assert.Equal(t, body, MergeSentences(body, 3))
}

func TestTruncateBody_PrefersSentenceBoundary(t *testing.T) {
	// Thirteen sentences of ten words each: 130 words total.
	var sb strings.Builder
	for i := 0; i < 13; i++ {
		sb.WriteString(fmt.Sprintf("Sentence number %d carries exactly ten words for this test. ", i))
	}
	body := strings.TrimSpace(sb.String())

	out := TruncateBody(body, 100)
	assert.LessOrEqual(t, validation.WordCount(out), 100)
	assert.True(t, strings.HasSuffix(out, "."), "truncation should end on a sentence boundary: %q", out)
	assert.NotContains(t, out, "number 12")
}

func TestTruncateBody_HardCutWhenNoBoundaryInWindow(t *testing.T) {
	// One long run-on sentence: no boundary to prefer, hard cut plus period.
	words := make([]string, 130)
	for i := range words {
		words[i] = "word"
	}
	body := strings.Join(words, " ")

	out := TruncateBody(body, 100)
	assert.Equal(t, 100, validation.WordCount(out))
	assert.True(t, strings.HasSuffix(out, "."))
}

func TestTruncateBody_ShortBodyUnchanged(t *testing.T) {
	body := "Already short enough."
	assert.Equal(t, body, TruncateBody(body, 100))
}

func TestTruncateSubject(t *testing.T) {
	assert.Equal(t, "Audit readiness at the Columbus plant this quarter",
		TruncateSubject("Audit readiness at the Columbus plant this quarter for you", 8))
	assert.Equal(t, "Short subject", TruncateSubject("Short subject", 8))
}

func TestTransformFor(t *testing.T) {
	assert.Equal(t, types.TransformAppendQuestion, transformFor(types.IssueNoQuestion))
	assert.Equal(t, types.TransformMergeSentences, transformFor(types.IssueSentenceHigh))
	assert.Equal(t, types.TransformTruncateBody, transformFor(types.IssueWordCountHigh))
	assert.Equal(t, types.TransformTruncateSubject, transformFor(types.IssueSubjectTooLong))
	assert.Equal(t, types.TransformAccepted, transformFor(types.IssueWordCountLow))
	assert.Equal(t, types.TransformAccepted, transformFor(types.IssueSentenceLow))

	// Unmapped families have no transform and are never retried.
	assert.Empty(t, transformFor(types.IssueForbiddenProvenance))
	assert.Empty(t, transformFor(types.IssueNamedEntity))
	assert.Empty(t, transformFor(types.IssueCoverageFailure))
}
