package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds concurrent prospect runs in a batch
const DefaultBatchConcurrency = 4

// BatchItem pairs one prospect with its run outcome
type BatchItem struct {
	Prospect Prospect `json:"prospect"`
	Result   *Result  `json:"result,omitempty"`
	Err      error    `json:"-"`
	Error    string   `json:"error,omitempty"`
}

// RunBatch runs a set of prospects concurrently. Per-prospect failures are
// recorded on their item rather than aborting the batch; the returned slice
// preserves input order. concurrency <= 0 uses DefaultBatchConcurrency.
func (r *Runner) RunBatch(ctx context.Context, prospects []Prospect, concurrency int) []BatchItem {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	items := make([]BatchItem, len(prospects))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, p := range prospects {
		g.Go(func() error {
			result, err := r.Run(gCtx, p)
			items[i] = BatchItem{Prospect: p, Result: result}
			if err != nil {
				items[i].Err = err
				items[i].Error = err.Error()
				fmt.Printf("Warning: prospect %s failed: %v\n", p.CompanyName, err)
			}
			return nil // batch continues past individual failures
		})
	}

	_ = g.Wait()
	return items
}
