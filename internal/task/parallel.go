package task

import (
	"context"
	"sync"
)

// RunParallel launches one goroutine per id, all at once, and waits for
// every one of them to finish; a failed task never cancels its siblings.
// The batch outcome is classified by failure count: none, some
// (ExitPartialFailure), or all (ExitAllFailed). Every id is checked against
// the registry before anything launches.
func (r *Runner) RunParallel(ctx context.Context, ids []ID, flags []string) error {
	if err := r.reg.Ensure(ids); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, id := range ids {
		wg.Add(1)
		go func(id ID) {
			defer wg.Done()
			res, err := r.Run(ctx, id, flags)
			if err != nil || res.Code != 0 {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	if failed == 0 {
		return nil
	}
	agg := &AggregateError{Outcome: PartialFailure, Failed: failed, Total: len(ids)}
	if failed == len(ids) {
		agg.Outcome = AllFailed
	}
	r.log.Error().
		Int("failed", agg.Failed).
		Int("total", agg.Total).
		Str("outcome", agg.Outcome.String()).
		Msg("Parallel batch failed")
	return agg
}
