// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MessageCandidate is one generated message variant as returned by the
// generation engine. The engine is untrusted: every field here is validated
// before a candidate is considered deliverable.
type MessageCandidate struct {
	ID            string   `json:"id"`
	Subject       string   `json:"subject,omitempty"`
	Body          string   `json:"body"`
	UsedSignalIDs []string `json:"used_signal_ids"`
}

// RenderedVariant is the pipeline's final output for one prospect: the best
// candidate together with its validation outcome.
type RenderedVariant struct {
	Candidate MessageCandidate  `json:"candidate"`
	Report    *ValidationReport `json:"report,omitempty"`
	Passed    bool              `json:"passed"`
	// RepairAttempts is the number of repair passes consumed on this candidate.
	RepairAttempts int `json:"repair_attempts"`
}
