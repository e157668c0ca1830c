// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TransformKind names a deterministic repair transform
type TransformKind string

// Repair transforms, one per recognized issue family
const (
	TransformAppendQuestion  TransformKind = "append_question"
	TransformMergeSentences  TransformKind = "merge_sentences"
	TransformTruncateBody    TransformKind = "truncate_body"
	TransformTruncateSubject TransformKind = "truncate_subject"
	// TransformAccepted records an issue the engine deliberately leaves
	// alone (short bodies are safer than fabricated padding).
	TransformAccepted TransformKind = "accepted_as_is"
)

// RepairAttempt records one pass of the repair loop. Attempts exist only
// within the bounded loop and are reported for audit, never persisted as a
// long-lived entity.
type RepairAttempt struct {
	AttemptNumber     int             `json:"attempt_number"`
	IssuesAddressed   []IssueCode     `json:"issues_addressed"`
	TransformsApplied []TransformKind `json:"transforms_applied"`
}

// RepairStatus is the terminal state of the repair loop for one candidate
type RepairStatus string

// Repair loop outcomes
const (
	RepairPassed RepairStatus = "PASSED"
	RepairFailed RepairStatus = "FAILED"
)
