// Package brief assembles the immutable ProspectBrief consumed by generation
// and validation. Assembly is the one place a structurally invalid brief can
// be caught, and the only component failure that propagates hard to the
// caller: a contract violation here is a programming error, not content.
package brief

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// ContractError reports a structurally invalid brief at construction time
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("brief contract violation: %s", e.Message)
}

// AssembleOptions carries the resolved component outputs to compose
type AssembleOptions struct {
	CompanyName string
	Industry    string
	RoleTitle   string

	Persona        types.PersonaDiagnostics
	ConfidenceTier types.ConfidenceTier
	ConfidenceNote string
	Signals        []types.Signal

	ChosenAngleID  string
	AngleSelection types.SelectionMetadata
	ChosenOfferID  string
	OfferSelection types.SelectionMetadata

	Constraints types.BriefConstraints
}

// Assemble composes a ProspectBrief and enforces its construction contract:
// unique signal ids, valid provenance classes, and no cited signal without a
// resolvable non-search URL. Review flags are computed here so downstream
// consumers only read them.
func Assemble(opts AssembleOptions) (*types.ProspectBrief, error) {
	if opts.CompanyName == "" {
		return nil, &ContractError{Message: "company name is required"}
	}
	if opts.ChosenAngleID == "" {
		return nil, &ContractError{Message: "chosen angle id is empty; selection must never return no angle"}
	}
	if opts.ChosenOfferID == "" {
		return nil, &ContractError{Message: "chosen offer id is empty; selection must never return no offer"}
	}

	seen := make(map[string]bool, len(opts.Signals))
	for _, s := range opts.Signals {
		if s.ID == "" {
			return nil, &ContractError{Message: "signal with empty id"}
		}
		if seen[s.ID] {
			return nil, &ContractError{Message: fmt.Sprintf("duplicate signal id %q", s.ID)}
		}
		seen[s.ID] = true
		if !types.ValidProvenance(s.Provenance) {
			return nil, &ContractError{Message: fmt.Sprintf("signal %s has unknown provenance %q", s.ID, s.Provenance)}
		}
		if s.Citability == types.CitabilityCited && !types.IsCitableURL(s.SourceURL) {
			return nil, &ContractError{Message: fmt.Sprintf("signal %s is cited but its source URL %q does not resolve to a citable page", s.ID, s.SourceURL)}
		}
	}

	reviewRequired, reasons := reviewFlags(opts)

	return &types.ProspectBrief{
		ID:             uuid.NewString(),
		CompanyName:    opts.CompanyName,
		Industry:       opts.Industry,
		RoleTitle:      opts.RoleTitle,
		Persona:        opts.Persona,
		ConfidenceTier: opts.ConfidenceTier,
		ConfidenceNote: opts.ConfidenceNote,
		Signals:        opts.Signals,
		ChosenAngleID:  opts.ChosenAngleID,
		AngleSelection: opts.AngleSelection,
		ChosenOfferID:  opts.ChosenOfferID,
		OfferSelection: opts.OfferSelection,
		Constraints:    opts.Constraints,
		ReviewRequired: reviewRequired,
		ReviewReasons:  reasons,
	}, nil
}

// reviewFlags computes whether a human must review before send
func reviewFlags(opts AssembleOptions) (bool, []string) {
	var reasons []string
	if !opts.Persona.AutomationAllowed {
		reasons = append(reasons, "persona policy does not allow automated sends")
	}
	if opts.Persona.AmbiguityDetected {
		reasons = append(reasons, "role title matched multiple personas")
	}
	if opts.Persona.FallbackApplied {
		reasons = append(reasons, "role title matched no persona; default applied")
	}
	return len(reasons) > 0, reasons
}
