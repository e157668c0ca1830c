// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/repair"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSignals outputs the extracted signals with provenance and citability.
func (p *Printer) PrintSignals(signals []types.Signal) {
	if len(signals) == 0 {
		p.printBox("EXTRACTED SIGNALS", "(no signals extracted)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d signals:\n\n", len(signals)))

	count := min(len(signals), maxItemsToShow)
	for i := 0; i < count; i++ {
		sig := signals[i]
		claim := sig.Claim
		if len(claim) > 48 {
			claim = claim[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s  %s\n", sig.ID, claim))
		sb.WriteString(fmt.Sprintf("  [%s / %s / %s]\n", sig.Provenance, sig.Citability, sig.Scope))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(signals) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more signals", len(signals)-maxItemsToShow))
	}

	p.printBox("EXTRACTED SIGNALS", sb.String())
}

// PrintBrief outputs a human-readable summary of the assembled brief.
func (p *Printer) PrintBrief(brief *types.ProspectBrief) {
	if brief == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:    %s\n", brief.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", brief.RoleTitle))
	sb.WriteString(fmt.Sprintf("Persona:    %s\n", brief.Persona.PersonaID))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", brief.ConfidenceTier))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Angle:  %s (%s)\n", brief.ChosenAngleID, brief.AngleSelection.Method))
	sb.WriteString(fmt.Sprintf("Offer:  %s (%s)\n", brief.ChosenOfferID, brief.OfferSelection.Method))
	if brief.AngleSelection.FallbackReason != "" {
		sb.WriteString(fmt.Sprintf("  scorer fallback: %s\n", brief.AngleSelection.FallbackReason))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Signals: %d total, %d cited\n", len(brief.Signals), len(brief.CitedSignals())))
	if brief.Persona.AmbiguityDetected {
		sb.WriteString("Persona ambiguity: constrained product policy in effect\n")
	}
	if brief.ReviewRequired {
		sb.WriteString(fmt.Sprintf("Review required: %s\n", strings.Join(brief.ReviewReasons, "; ")))
	}

	p.printBox("PROSPECT BRIEF", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs any validation issues found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.ValidationReport) {
	if report == nil || report.Passed {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL VALIDATORS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", report.TotalIssues))

	for _, name := range types.ValidatorNames {
		issues := report.Issues[name]
		if len(issues) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", name))
		for _, issue := range issues {
			detail := issue.Detail
			if len(detail) > 45 {
				detail = detail[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue.Code))
			sb.WriteString(fmt.Sprintf("    %s\n", detail))
		}
	}

	p.printBox("VALIDATION ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRepairOutcome outputs the repair loop trace for one candidate.
func (p *Printer) PrintRepairOutcome(outcome *repair.Outcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", outcome.Status))
	sb.WriteString(fmt.Sprintf("Repair passes: %d\n", len(outcome.Attempts)))

	for _, attempt := range outcome.Attempts {
		sb.WriteString(fmt.Sprintf("\nPass %d:\n", attempt.AttemptNumber))
		for i, code := range attempt.IssuesAddressed {
			transform := types.TransformKind("none")
			if i < len(attempt.TransformsApplied) {
				transform = attempt.TransformsApplied[i]
			}
			sb.WriteString(fmt.Sprintf("  %s → %s\n", code, transform))
		}
	}

	if outcome.Status == types.RepairFailed && outcome.Report != nil {
		sb.WriteString(fmt.Sprintf("\nRemaining issues: %d", outcome.Report.TotalIssues))
	}

	p.printBox("REPAIR LOOP", sb.String())
}

// PrintVariant outputs one rendered variant.
func (p *Printer) PrintVariant(variant *types.RenderedVariant) {
	if variant == nil {
		return
	}

	var sb strings.Builder
	if variant.Candidate.Subject != "" {
		sb.WriteString(fmt.Sprintf("Subject: %s\n\n", variant.Candidate.Subject))
	}

	body := variant.Candidate.Body
	for len(body) > boxWidth-8 {
		sb.WriteString(body[:boxWidth-8] + "\n")
		body = body[boxWidth-8:]
	}
	sb.WriteString(body + "\n")

	if len(variant.Candidate.UsedSignalIDs) > 0 {
		sb.WriteString(fmt.Sprintf("\nCites: %s", strings.Join(variant.Candidate.UsedSignalIDs, ", ")))
	}

	title := fmt.Sprintf("VARIANT %s", variant.Candidate.ID)
	if variant.Passed {
		title += " ✓"
	} else {
		title += " ✗"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
