// Package pipeline provides the high-level orchestration for one prospect:
// extract signals, resolve persona, compute confidence, select strategy,
// assemble the brief, generate candidates, and run each through the bounded
// validate/repair loop.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/medley/agentic-sales-framework-sub000/internal/brief"
	"github.com/medley/agentic-sales-framework-sub000/internal/confidence"
	"github.com/medley/agentic-sales-framework-sub000/internal/config"
	"github.com/medley/agentic-sales-framework-sub000/internal/generation"
	"github.com/medley/agentic-sales-framework-sub000/internal/llm"
	"github.com/medley/agentic-sales-framework-sub000/internal/observability"
	"github.com/medley/agentic-sales-framework-sub000/internal/persona"
	"github.com/medley/agentic-sales-framework-sub000/internal/repair"
	"github.com/medley/agentic-sales-framework-sub000/internal/research"
	"github.com/medley/agentic-sales-framework-sub000/internal/signals"
	"github.com/medley/agentic-sales-framework-sub000/internal/store"
	"github.com/medley/agentic-sales-framework-sub000/internal/strategy"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// Prospect is the complete input for one pipeline run
type Prospect struct {
	CompanyName string              `json:"company_name"`
	Industry    string              `json:"industry,omitempty"`
	RoleTitle   string              `json:"role_title"`
	Channel     types.Channel       `json:"channel,omitempty"`
	Sources     research.RawSources `json:"sources"`

	// RequestedTier, when set, is the minimum confidence the operator wants
	// this message sent at. A run whose computed tier falls short is flagged
	// needs_more_research; it still completes at the computed tier.
	RequestedTier string `json:"requested_tier,omitempty"`
}

// Result is the terminal output of one pipeline run
type Result struct {
	RunID    uuid.UUID               `json:"run_id,omitempty"`
	Brief    *types.ProspectBrief    `json:"brief"`
	Variants []types.RenderedVariant `json:"variants,omitempty"`
	// Best is the first passing variant, or nil when none passed.
	Best              *types.RenderedVariant `json:"best,omitempty"`
	NeedsMoreResearch bool                   `json:"needs_more_research,omitempty"`
	Status            string                 `json:"status"`
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Runner holds the resolved components for running prospects. Construct once
// per process; safe for concurrent use.
type Runner struct {
	cfg      *config.Config
	resolver *persona.Resolver
	catalog  *strategy.Catalog
	repairer *repair.Engine
	scorer   strategy.Scorer
	engine   *generation.Engine
	fetcher  research.Fetcher
	store    *store.Store
	printer  *observability.Printer

	// OnProgress, when set, receives step events for every run.
	OnProgress ProgressCallback
}

// NewRunner wires a runner from validated configuration. client may be nil:
// the runner then skips the scorer and generation, producing brief-only
// results. st may be nil to run without persistence.
func NewRunner(cfg *config.Config, client llm.Client, st *store.Store) (*Runner, error) {
	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, fmt.Errorf("building persona resolver: %w", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("building strategy catalog: %w", err)
	}

	r := &Runner{
		cfg:      cfg,
		resolver: resolver,
		catalog:  catalog,
		repairer: repair.NewEngine(cfg.Suite(), cfg.MaxRepairs),
		store:    st,
		printer:  observability.NewPrinter(os.Stdout),
	}
	if client != nil {
		r.engine = generation.NewEngine(client, cfg.VariantCount)
		if cfg.ScorerEnabled {
			r.scorer = strategy.NewLLMScorer(client)
		}
	}
	if cfg.FetchCitations {
		r.fetcher = research.NewCachedFetcher(nil)
	}
	return r, nil
}

// WithProgress returns a shallow copy of the runner with a per-caller
// progress callback, so concurrent API requests can stream independently.
func (r *Runner) WithProgress(cb ProgressCallback) *Runner {
	clone := *r
	clone.OnProgress = cb
	return &clone
}

func (r *Runner) emit(step, message string, content any) {
	if r.OnProgress != nil {
		r.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// Run executes the full pipeline for one prospect. The decision path up to
// the brief is fully deterministic; only generation and the optional scorer
// touch the network.
func (r *Runner) Run(ctx context.Context, p Prospect) (*Result, error) {
	if p.CompanyName == "" {
		return nil, fmt.Errorf("prospect company name is required")
	}
	channel := p.Channel
	if channel == "" {
		channel = types.ChannelEmail
	}

	var runID uuid.UUID
	if r.store != nil {
		var err error
		runID, err = r.store.CreateRun(ctx, p.CompanyName, p.RoleTitle, string(channel))
		if err != nil {
			fmt.Printf("Warning: failed to create run record: %v\n", err)
			fmt.Printf("Continuing without persistence...\n")
			runID = uuid.Nil
		}
	}

	// Citation enrichment: resolve citation URLs before extraction so
	// unreachable pages lose citable status and bare URLs gain claim text.
	sources := p.Sources
	if r.fetcher != nil {
		sources = research.EnrichCitations(ctx, r.fetcher, sources)
		r.emit("research", fmt.Sprintf("Resolved %d citation pages", len(sources.Citations)), nil)
	}

	// Signal extraction
	extracted := signals.Extract(&sources)
	if r.cfg.Verbose {
		r.printer.PrintSignals(extracted)
	}
	r.emit("signals", fmt.Sprintf("Extracted %d signals", len(extracted)), nil)

	// Persona resolution
	diag := r.resolver.Resolve(p.RoleTitle)
	r.emit("persona", fmt.Sprintf("Resolved persona %s (%s)", diag.PersonaID, diag.SelectionReason), nil)

	// Confidence
	tier, note := confidence.Compute(extracted, diag, sources.CitationQualityProblem)
	r.emit("confidence", fmt.Sprintf("Confidence tier: %s", tier), nil)

	needsResearch := false
	if p.RequestedTier != "" {
		if requested := types.ParseConfidenceTier(p.RequestedTier); requested > tier {
			needsResearch = true
			note = note + fmt.Sprintf("; requested tier %s not met", requested)
		}
	}

	// Strategy
	angleID, angleMeta := r.catalog.SelectAngle(ctx, extracted, diag, p.Industry, p.CompanyName, r.scorer)
	offerID, offerMeta := r.catalog.SelectOffer(diag, angleID)
	r.emit("strategy", fmt.Sprintf("Selected angle %s (%s), offer %s", angleID, angleMeta.Method, offerID), nil)

	// Brief assembly
	b, err := brief.Assemble(brief.AssembleOptions{
		CompanyName:    p.CompanyName,
		Industry:       p.Industry,
		RoleTitle:      p.RoleTitle,
		Persona:        diag,
		ConfidenceTier: tier,
		ConfidenceNote: note,
		Signals:        extracted,
		ChosenAngleID:  angleID,
		AngleSelection: angleMeta,
		ChosenOfferID:  offerID,
		OfferSelection: offerMeta,
		Constraints:    r.cfg.ConstraintsFor(channel, tier),
	})
	if err != nil {
		r.failRun(ctx, runID)
		return nil, fmt.Errorf("brief assembly failed: %w", err)
	}
	if r.cfg.Verbose {
		r.printer.PrintBrief(b)
	}
	r.emit("brief", fmt.Sprintf("Assembled brief %s", b.ID), b)

	if r.store != nil && runID != uuid.Nil {
		if err := r.store.SaveBrief(ctx, runID, b); err != nil {
			fmt.Printf("Warning: failed to save brief: %v\n", err)
		}
	}

	result := &Result{
		RunID:             runID,
		Brief:             b,
		NeedsMoreResearch: needsResearch,
		Status:            store.RunStatusCompleted,
	}

	if r.engine == nil {
		// Brief-only mode: decision record without drafting.
		r.finishRun(ctx, runID, result)
		return result, nil
	}

	// Generation
	angle := r.catalog.AngleByID(angleID)
	offer := r.catalog.OfferByID(offerID)
	candidates, err := r.engine.Generate(ctx, b, angle, offer)
	if err != nil {
		r.failRun(ctx, runID)
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	r.emit("generation", fmt.Sprintf("Generated %d candidates", len(candidates)), nil)

	// Validate and repair each candidate
	for _, candidate := range candidates {
		outcome := r.repairer.Run(candidate, b)
		variant := types.RenderedVariant{
			Candidate:      outcome.Candidate,
			Report:         outcome.Report,
			Passed:         outcome.Status == types.RepairPassed,
			RepairAttempts: len(outcome.Attempts),
		}
		result.Variants = append(result.Variants, variant)

		if r.cfg.Verbose {
			r.printer.PrintRepairOutcome(&outcome)
			r.printer.PrintVariant(&variant)
		}
		if r.store != nil && runID != uuid.Nil {
			if err := r.store.SaveVariant(ctx, runID, &variant); err != nil {
				fmt.Printf("Warning: failed to save variant: %v\n", err)
			}
		}
	}

	for i := range result.Variants {
		if result.Variants[i].Passed {
			result.Best = &result.Variants[i]
			break
		}
	}
	if result.Best == nil {
		result.Status = store.RunStatusFailed
	}
	r.emit("repair", fmt.Sprintf("%d of %d variants deliverable", countPassed(result.Variants), len(result.Variants)), nil)

	r.finishRun(ctx, runID, result)
	return result, nil
}

func (r *Runner) finishRun(ctx context.Context, runID uuid.UUID, result *Result) {
	if r.store == nil || runID == uuid.Nil {
		return
	}
	status := result.Status
	if result.NeedsMoreResearch {
		status = store.RunStatusNeedsMoreResearch
	}
	if err := r.store.CompleteRun(ctx, runID, status); err != nil {
		fmt.Printf("Warning: failed to complete run: %v\n", err)
	}
}

func (r *Runner) failRun(ctx context.Context, runID uuid.UUID) {
	if r.store == nil || runID == uuid.Nil {
		return
	}
	_ = r.store.CompleteRun(ctx, runID, store.RunStatusFailed)
}

func countPassed(variants []types.RenderedVariant) int {
	n := 0
	for _, v := range variants {
		if v.Passed {
			n++
		}
	}
	return n
}
