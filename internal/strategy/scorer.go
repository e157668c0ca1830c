// Package strategy - scorer.go is the external-scorer boundary. The scorer
// sees the candidate angles (id/name/description only, never raw research)
// together with the cited signals, and returns three 1-5 sub-scores per
// candidate. Any failure here degrades silently to the deterministic path.
package strategy

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

// ScoreRequest is what the external scorer is allowed to see
type ScoreRequest struct {
	PersonaID   string `json:"persona_id"`
	CompanyName string `json:"company_name"`
	// CitedSignals carries only signals with cited citability.
	CitedSignals []types.Signal   `json:"cited_signals"`
	Candidates   []CandidateBrief `json:"candidates"`
}

// CandidateBrief is the reduced angle view sent to the scorer
type CandidateBrief struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CandidateScore is one candidate's sub-scores from the scorer
type CandidateScore struct {
	AngleID         string  `json:"angle_id"`
	Relevance       float64 `json:"relevance"`
	Urgency         float64 `json:"urgency"`
	ReplyLikelihood float64 `json:"reply_likelihood"`
	Justification   string  `json:"justification"`
}

// ScoreResponse is the validated scorer output
type ScoreResponse struct {
	Scores []CandidateScore `json:"scores"`
}

// Scorer scores candidate angles. Implementations must treat their own
// failures as recoverable: SelectAngle falls back deterministically on any
// returned error and never propagates it to the caller.
type Scorer interface {
	ScoreAngles(ctx context.Context, req ScoreRequest) (*ScoreResponse, error)
}

// ScorerError wraps a scorer failure with the reason recorded in selection
// metadata.
type ScorerError struct {
	Message string
	Cause   error
}

func (e *ScorerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scorer error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scorer error: %s", e.Message)
}

func (e *ScorerError) Unwrap() error {
	return e.Cause
}

// LLMScorer implements Scorer over the tiered LLM client
type LLMScorer struct {
	client llm.Client
}

// NewLLMScorer creates a scorer backed by an LLM client
func NewLLMScorer(client llm.Client) *LLMScorer {
	return &LLMScorer{client: client}
}

// ScoreAngles submits the candidate set to the LLM and validates the response
// against the scorer schema, score ranges, and the candidate id set.
func (s *LLMScorer) ScoreAngles(ctx context.Context, req ScoreRequest) (*ScoreResponse, error) {
	prompt := buildScorerPrompt(req)

	jsonResp, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &ScorerError{Message: "LLM generation failed", Cause: err}
	}

	return ParseScoreResponse(llm.CleanJSONBlock(jsonResp), req.Candidates)
}

// ParseScoreResponse validates raw scorer JSON. Schema violations, scores
// outside 1-5, references to nonexistent candidates, and missing candidates
// all reject the response.
func ParseScoreResponse(raw string, candidates []CandidateBrief) (*ScoreResponse, error) {
	if err := schemas.Validate(schemas.ScorerResponse, []byte(raw)); err != nil {
		return nil, &ScorerError{Message: "response failed schema validation", Cause: err}
	}

	var resp ScoreResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ScorerError{Message: "invalid JSON", Cause: err}
	}

	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c.ID] = true
	}

	scored := make(map[string]bool, len(resp.Scores))
	for _, s := range resp.Scores {
		if !known[s.AngleID] {
			return nil, &ScorerError{Message: fmt.Sprintf("score references unknown candidate %q", s.AngleID)}
		}
		if scored[s.AngleID] {
			return nil, &ScorerError{Message: fmt.Sprintf("duplicate score for candidate %q", s.AngleID)}
		}
		scored[s.AngleID] = true
	}

	for id := range known {
		if !scored[id] {
			return nil, &ScorerError{Message: fmt.Sprintf("missing score for candidate %q", id)}
		}
	}

	return &resp, nil
}

func buildScoreRequest(diag types.PersonaDiagnostics, companyName string, signals []types.Signal, candidates []Candidate) ScoreRequest {
	req := ScoreRequest{
		PersonaID:   diag.PersonaID,
		CompanyName: companyName,
	}
	for _, s := range signals {
		if s.Citability == types.CitabilityCited {
			req.CitedSignals = append(req.CitedSignals, s)
		}
	}
	for _, c := range candidates {
		req.Candidates = append(req.Candidates, CandidateBrief{
			ID:          c.Angle.ID,
			Name:        c.Angle.Name,
			Description: c.Angle.Description,
		})
	}
	return req
}

func buildScorerPrompt(req ScoreRequest) string {
	var signalLines []string
	for _, s := range req.CitedSignals {
		signalLines = append(signalLines, fmt.Sprintf("- [%s] %s (%s)", s.ID, s.Claim, s.SourceURL))
	}
	signalsStr := strings.Join(signalLines, "\n")
	if signalsStr == "" {
		signalsStr = "(none)"
	}

	var candidateLines []string
	for _, c := range req.Candidates {
		candidateLines = append(candidateLines, fmt.Sprintf("- %s: %s - %s", c.ID, c.Name, c.Description))
	}

	template := prompts.MustGet("scoring.json", "score-angles")
	return prompts.Format(template, map[string]string{
		"Persona":    req.PersonaID,
		"Company":    req.CompanyName,
		"Signals":    signalsStr,
		"Candidates": strings.Join(candidateLines, "\n"),
	})
}
