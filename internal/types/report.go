// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IssueCode identifies a recognized validation failure family. The repair
// engine keys its transform table on these codes; unrecognized codes have no
// transform and pass through unrepaired.
type IssueCode string

// Issue codes, grouped by validator
const (
	// Claim integrity
	IssueMissingSignalRef IssueCode = "missing_signal_reference"

	// Provenance gating
	IssueForbiddenProvenance IssueCode = "forbidden_provenance"
	IssueUnresolvableSource  IssueCode = "unresolvable_source"

	// Confidence-mode content rules
	IssueTooManySignalRefs IssueCode = "too_many_signal_refs"
	IssueCompanyNameUsed   IssueCode = "company_name_used"
	IssueNumericMetric     IssueCode = "numeric_metric"
	IssueNamedEntity       IssueCode = "named_entity"
	IssueExplicitClaim     IssueCode = "explicit_claim_phrasing"

	// Semantic coverage
	IssueCoverageFailure IssueCode = "semantic_coverage"

	// Forbidden products
	IssueForbiddenProduct IssueCode = "forbidden_product"

	// Structural constraints
	IssueWordCountHigh   IssueCode = "word_count_high"
	IssueWordCountLow    IssueCode = "word_count_low"
	IssueSentenceHigh    IssueCode = "sentence_count_high"
	IssueSentenceLow     IssueCode = "sentence_count_low"
	IssueSubjectMissing  IssueCode = "subject_missing"
	IssueSubjectTooLong  IssueCode = "subject_too_long"
	IssueSubjectUnwanted IssueCode = "subject_unwanted"
	IssueNoQuestion      IssueCode = "no_terminal_question"
)

// Issue is a single typed validation failure
type Issue struct {
	Code   IssueCode `json:"code"`
	Detail string    `json:"detail"`
	// SignalID is set for issues tied to a specific referenced signal.
	SignalID string `json:"signal_id,omitempty"`
}

// ValidationReport is the aggregated outcome of one validation pass over one
// candidate. It is ephemeral: discarded once the repair loop completes.
type ValidationReport struct {
	Passed bool `json:"passed"`
	// Issues maps validator name to the issues it reported.
	Issues      map[string][]Issue `json:"issues"`
	TotalIssues int                `json:"total_issues"`
}

// AllIssues flattens the per-validator issue lists in validator-name order
// stable enough for deterministic repair: claim_integrity, provenance,
// content, coverage, products, structure.
func (r *ValidationReport) AllIssues() []Issue {
	var out []Issue
	for _, name := range ValidatorNames {
		out = append(out, r.Issues[name]...)
	}
	return out
}

// HasCode reports whether any validator produced an issue with the code
func (r *ValidationReport) HasCode(code IssueCode) bool {
	for _, issues := range r.Issues {
		for _, issue := range issues {
			if issue.Code == code {
				return true
			}
		}
	}
	return false
}

// ValidatorNames is the fixed evaluation order of the validator suite
var ValidatorNames = []string{
	ValidatorClaimIntegrity,
	ValidatorProvenance,
	ValidatorContent,
	ValidatorCoverage,
	ValidatorProducts,
	ValidatorStructure,
}

// Validator name constants
const (
	ValidatorClaimIntegrity = "claim_integrity"
	ValidatorProvenance     = "provenance"
	ValidatorContent        = "content"
	ValidatorCoverage       = "coverage"
	ValidatorProducts       = "products"
	ValidatorStructure      = "structure"
)
