// Package repair - loop.go drives the bounded validate/repair cycle for one
// candidate.
package repair

import (
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
	"github.com/medley/agentic-sales-framework-sub000/internal/validation"
)

// DefaultMaxRepairs bounds the repair attempts per candidate
const DefaultMaxRepairs = 2

// Engine runs the validate/repair loop. Construct once; safe for concurrent
// use across candidates.
type Engine struct {
	suite      *validation.Suite
	maxRepairs int
}

// NewEngine creates a repair engine over a validator suite. maxRepairs <= 0
// uses DefaultMaxRepairs.
func NewEngine(suite *validation.Suite, maxRepairs int) *Engine {
	if maxRepairs <= 0 {
		maxRepairs = DefaultMaxRepairs
	}
	return &Engine{suite: suite, maxRepairs: maxRepairs}
}

// Outcome is the terminal result of the loop for one candidate
type Outcome struct {
	Status    types.RepairStatus
	Candidate types.MessageCandidate
	// Report is the last validation report (the passing one on PASSED, the
	// final failing one on FAILED).
	Report *types.ValidationReport
	// Attempts are the repair passes consumed, in order.
	Attempts []types.RepairAttempt
}

// Run validates, repairs recognized failures, and re-validates, for at most
// maxRepairs repair passes (maxRepairs + 1 validation passes total). The
// loop is strictly bounded and never retries an issue family it has no
// mapped transform for.
func (e *Engine) Run(candidate types.MessageCandidate, b *types.ProspectBrief) Outcome {
	current := candidate
	report := e.suite.Validate(current, b)

	outcome := Outcome{Candidate: current, Report: report}
	if report.Passed {
		outcome.Status = types.RepairPassed
		return outcome
	}

	for attempt := 1; attempt <= e.maxRepairs; attempt++ {
		repaired, record := e.applyTransforms(current, b, report)
		record.AttemptNumber = attempt
		outcome.Attempts = append(outcome.Attempts, record)
		current = repaired

		report = e.suite.Validate(current, b)
		outcome.Candidate = current
		outcome.Report = report
		if report.Passed {
			outcome.Status = types.RepairPassed
			return outcome
		}
	}

	outcome.Status = types.RepairFailed
	return outcome
}

// applyTransforms applies the mapped transform for each distinct issue code
// present in the report, in the suite's fixed validator order. The transform
// sequence is a pure function of the report and configuration, so re-running
// the loop on the same input yields the same sequence.
func (e *Engine) applyTransforms(candidate types.MessageCandidate, b *types.ProspectBrief, report *types.ValidationReport) (types.MessageCandidate, types.RepairAttempt) {
	rules := b.Constraints.Structural
	record := types.RepairAttempt{}
	seen := make(map[types.IssueCode]bool)

	for _, issue := range report.AllIssues() {
		if seen[issue.Code] {
			continue
		}
		seen[issue.Code] = true

		kind := transformFor(issue.Code)
		if kind == "" {
			continue // unmapped family: passes through unrepaired
		}
		record.IssuesAddressed = append(record.IssuesAddressed, issue.Code)
		record.TransformsApplied = append(record.TransformsApplied, kind)

		switch kind {
		case types.TransformAppendQuestion:
			candidate.Body = AppendQuestion(candidate.Body)
		case types.TransformMergeSentences:
			candidate.Body = MergeSentences(candidate.Body, rules.MaxSentences)
		case types.TransformTruncateBody:
			candidate.Body = TruncateBody(candidate.Body, rules.MaxWords)
		case types.TransformTruncateSubject:
			candidate.Subject = TruncateSubject(candidate.Subject, rules.MaxSubjectWords)
		case types.TransformAccepted:
			// Recorded only.
		}
	}

	return candidate, record
}
