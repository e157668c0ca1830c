// Package store provides PostgreSQL persistence for the outreach audit
// trail: runs, assembled briefs, validation reports, and rendered variants.
// Persistence is best-effort from the pipeline's point of view; the decision
// path never depends on the database being reachable.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Run is one pipeline execution for one prospect
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	RoleTitle   string     `json:"role_title"`
	Channel     string     `json:"channel"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	RunStatusRunning           = "running"
	RunStatusCompleted         = "completed"
	RunStatusFailed            = "failed"
	RunStatusNeedsMoreResearch = "needs_more_research"
)

// CreateRun creates a new run record and returns its ID
func (s *Store) CreateRun(ctx context.Context, company, roleTitle, channel string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO outreach_runs (company, role_title, channel, status)
		 VALUES ($1, $2, $3, 'running')
		 RETURNING id`,
		company, roleTitle, channel,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run terminal with the given status
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE outreach_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID. Returns nil when the run does not exist.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var r Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, company, role_title, channel, status, created_at, completed_at
		 FROM outreach_runs WHERE id = $1`,
		runID,
	).Scan(&r.ID, &r.Company, &r.RoleTitle, &r.Channel, &r.Status, &r.CreatedAt, &r.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns retrieves the most recent runs, newest first
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, company, role_title, channel, status, created_at, completed_at
		 FROM outreach_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Company, &r.RoleTitle, &r.Channel, &r.Status,
			&r.CreatedAt, &r.CompletedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SaveBrief stores the assembled brief for a run as JSONB
func (s *Store) SaveBrief(ctx context.Context, runID uuid.UUID, b *types.ProspectBrief) error {
	content, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO briefs (run_id, brief_id, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id) DO UPDATE SET brief_id = $2, content = $3, created_at = NOW()`,
		runID, b.ID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save brief: %w", err)
	}
	return nil
}

// GetBrief retrieves the brief stored for a run. Returns nil when absent.
func (s *Store) GetBrief(ctx context.Context, runID uuid.UUID) (*types.ProspectBrief, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM briefs WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brief: %w", err)
	}

	var b types.ProspectBrief
	if err := json.Unmarshal(content, &b); err != nil {
		return nil, fmt.Errorf("failed to parse stored brief: %w", err)
	}
	return &b, nil
}

// SaveVariant stores one rendered variant with its validation report
func (s *Store) SaveVariant(ctx context.Context, runID uuid.UUID, v *types.RenderedVariant) error {
	var report []byte
	if v.Report != nil {
		var err error
		report, err = json.Marshal(v.Report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO variants (run_id, variant_id, subject, body, used_signal_ids, passed, repair_attempts, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (run_id, variant_id) DO UPDATE
		   SET subject = $3, body = $4, used_signal_ids = $5, passed = $6,
		       repair_attempts = $7, report = $8, created_at = NOW()`,
		runID, v.Candidate.ID, v.Candidate.Subject, v.Candidate.Body,
		v.Candidate.UsedSignalIDs, v.Passed, v.RepairAttempts, report,
	)
	if err != nil {
		return fmt.Errorf("failed to save variant %s: %w", v.Candidate.ID, err)
	}
	return nil
}

// GetVariants retrieves all variants stored for a run, in variant-id order
func (s *Store) GetVariants(ctx context.Context, runID uuid.UUID) ([]types.RenderedVariant, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT variant_id, subject, body, used_signal_ids, passed, repair_attempts, report
		 FROM variants WHERE run_id = $1 ORDER BY variant_id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get variants: %w", err)
	}
	defer rows.Close()

	var variants []types.RenderedVariant
	for rows.Next() {
		var v types.RenderedVariant
		var report []byte
		if err := rows.Scan(&v.Candidate.ID, &v.Candidate.Subject, &v.Candidate.Body,
			&v.Candidate.UsedSignalIDs, &v.Passed, &v.RepairAttempts, &report); err != nil {
			return nil, err
		}
		if report != nil {
			v.Report = &types.ValidationReport{}
			if err := json.Unmarshal(report, v.Report); err != nil {
				return nil, fmt.Errorf("failed to parse stored report: %w", err)
			}
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}
