package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationReport_AllIssuesFollowsValidatorOrder(t *testing.T) {
	report := &ValidationReport{
		Issues: map[string][]Issue{
			ValidatorStructure:      {{Code: IssueNoQuestion}},
			ValidatorClaimIntegrity: {{Code: IssueMissingSignalRef}},
			ValidatorContent:        {{Code: IssueNumericMetric}, {Code: IssueNamedEntity}},
		},
		TotalIssues: 4,
	}

	all := report.AllIssues()
	assert.Equal(t, []IssueCode{
		IssueMissingSignalRef,
		IssueNumericMetric,
		IssueNamedEntity,
		IssueNoQuestion,
	}, issueCodes(all))
}

func TestValidationReport_HasCode(t *testing.T) {
	report := &ValidationReport{
		Issues: map[string][]Issue{
			ValidatorProvenance: {{Code: IssueForbiddenProvenance, SignalID: "sig-2"}},
		},
		TotalIssues: 1,
	}

	assert.True(t, report.HasCode(IssueForbiddenProvenance))
	assert.False(t, report.HasCode(IssueNoQuestion))
}

func issueCodes(issues []Issue) []IssueCode {
	codes := make([]IssueCode, len(issues))
	for i, issue := range issues {
		codes[i] = issue.Code
	}
	return codes
}
