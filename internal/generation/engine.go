package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/llm"
	"github.com/medley/agentic-sales-framework-sub000/internal/prompts"
	"github.com/medley/agentic-sales-framework-sub000/internal/schemas"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// DefaultVariantCount is used when an Engine is built with a non-positive count
const DefaultVariantCount = 3

// Engine turns an assembled brief into message candidates via the LLM. The
// engine never sees raw research: the brief is its entire universe, and every
// candidate it returns goes through the validator suite before anything
// downstream trusts it.
type Engine struct {
	client       llm.Client
	variantCount int
}

// NewEngine creates a generation engine on an existing client
func NewEngine(client llm.Client, variantCount int) *Engine {
	if variantCount <= 0 {
		variantCount = DefaultVariantCount
	}
	return &Engine{
		client:       client,
		variantCount: variantCount,
	}
}

// Generate drafts candidates for the brief. Uses TierAdvanced: multi-variant
// generation under tight structural constraints is the hardest call we make.
func (e *Engine) Generate(ctx context.Context, brief *types.ProspectBrief, angle *types.Angle, offer *types.Offer) ([]types.MessageCandidate, error) {
	if brief == nil {
		return nil, &EngineError{Message: "brief is nil"}
	}
	if angle == nil || offer == nil {
		return nil, &EngineError{Message: "angle and offer are required"}
	}

	prompt := e.buildPrompt(brief, angle, offer)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &EngineError{
			Message: fmt.Sprintf("failed to generate variants for brief %s", brief.ID),
			Cause:   err,
		}
	}

	return ParseEngineResponse(responseText)
}

func (e *Engine) buildPrompt(brief *types.ProspectBrief, angle *types.Angle, offer *types.Offer) string {
	template := prompts.MustGet("generation.json", "generate-variants")

	return prompts.Format(template, map[string]string{
		"VariantCount":     fmt.Sprintf("%d", e.variantCount),
		"Channel":          string(brief.Constraints.Structural.Channel),
		"Persona":          brief.Persona.PersonaID,
		"AngleName":        angle.Name,
		"AngleDescription": angle.Description,
		"OfferName":        offer.Name,
		"OfferDescription": offer.Description,
		"Signals":          describeSignals(brief),
		"Skeleton":         BuildSkeleton(brief, angle, offer),
		"Constraints":      describeStructural(brief.Constraints.Structural),
		"ContentRules":     describeContent(brief),
	})
}

// describeSignals lists only the signals the model may cite. Uncited and
// generic signals are summarized as tone guidance without ids, so the model
// cannot reference them in used_signal_ids.
func describeSignals(brief *types.ProspectBrief) string {
	var sb strings.Builder

	citable := 0
	if brief.Constraints.Content.MaxSignalRefs > 0 {
		for _, sig := range brief.Signals {
			if sig.Citability != types.CitabilityCited {
				continue
			}
			if !brief.Constraints.Content.ProvenanceAllowed(sig.Provenance) {
				continue
			}
			fmt.Fprintf(&sb, "- %s: %s (source: %s)\n", sig.ID, sig.Claim, sig.SourceURL)
			citable++
			if citable >= brief.Constraints.Content.MaxSignalRefs {
				break
			}
		}
	}
	if citable == 0 {
		sb.WriteString("(none - do not reference any specific fact about this company)\n")
	}

	var tone []string
	for _, sig := range brief.Signals {
		if sig.Citability == types.CitabilityUncited {
			tone = append(tone, sig.Claim)
		}
	}
	if len(tone) > 0 {
		sb.WriteString("\nBackground for tone only (never state these as facts):\n")
		for _, claim := range tone {
			fmt.Fprintf(&sb, "- %s\n", claim)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func describeStructural(sc types.StructuralConstraints) string {
	var rules []string

	rules = append(rules, fmt.Sprintf("- Body length: %d-%d words", sc.MinWords, sc.MaxWords))
	if sc.CountParagraphs {
		rules = append(rules, fmt.Sprintf("- Paragraphs: %d-%d", sc.MinSentences, sc.MaxSentences))
	} else {
		rules = append(rules, fmt.Sprintf("- Sentences: %d-%d", sc.MinSentences, sc.MaxSentences))
	}
	if sc.SubjectRequired {
		rules = append(rules, fmt.Sprintf("- Subject line required, at most %d words", sc.MaxSubjectWords))
	} else {
		rules = append(rules, "- No subject line: leave subject empty")
	}
	if sc.MustEndWithQuestion {
		rules = append(rules, "- The body must end with a yes/no question")
	}

	return strings.Join(rules, "\n")
}

func describeContent(brief *types.ProspectBrief) string {
	cr := brief.Constraints.Content
	var rules []string

	if cr.ForbidCompanyName {
		rules = append(rules, "- Do not mention the company by name")
	}
	if cr.ForbidNumerics {
		rules = append(rules, "- No numeric metrics of any kind (percentages, amounts, multiples)")
	}
	if cr.ForbidEntities {
		rules = append(rules, "- No named people, products, or organizations")
	}
	if cr.ForbidExplicitClaims {
		rules = append(rules, "- No phrases implying you researched them (\"I saw that\", \"I noticed\", \"your recent\")")
	}
	if len(brief.Persona.ForbiddenProducts) > 0 {
		rules = append(rules, fmt.Sprintf("- Never mention these product areas: %s", strings.Join(brief.Persona.ForbiddenProducts, ", ")))
	}
	if len(rules) == 0 {
		rules = append(rules, "- Keep every factual claim traceable to a listed signal")
	}

	return strings.Join(rules, "\n")
}

type engineResponse struct {
	Variants []struct {
		Subject       string   `json:"subject"`
		Body          string   `json:"body"`
		UsedSignalIDs []string `json:"used_signal_ids"`
	} `json:"variants"`
}

// ParseEngineResponse validates and decodes the raw model output into
// candidates. Assigns sequential candidate ids; referenced signal ids are
// kept as-is for the claim-integrity validator to check against the brief.
func ParseEngineResponse(responseText string) ([]types.MessageCandidate, error) {
	cleaned := llm.CleanJSONBlock(responseText)

	if err := schemas.Validate(schemas.EngineResponse, []byte(cleaned)); err != nil {
		return nil, &ResponseError{Message: "response does not match schema", Cause: err}
	}

	var resp engineResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, &ResponseError{Message: "failed to parse response JSON", Cause: err}
	}

	candidates := make([]types.MessageCandidate, 0, len(resp.Variants))
	for i, v := range resp.Variants {
		candidates = append(candidates, types.MessageCandidate{
			ID:            fmt.Sprintf("variant-%d", i+1),
			Subject:       strings.TrimSpace(v.Subject),
			Body:          strings.TrimSpace(v.Body),
			UsedSignalIDs: v.UsedSignalIDs,
		})
	}
	return candidates, nil
}
