package task

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Result records a single task execution.
type Result struct {
	ID      ID
	Code    int
	Elapsed int64 // milliseconds, never negative
}

// Runner executes registered tasks, timing every run.
type Runner struct {
	reg     *Registry
	metrics *Metrics
	log     zerolog.Logger
	now     func() time.Time
}

func NewRunner(reg *Registry) *Runner {
	return &Runner{
		reg:     reg,
		metrics: NewMetrics(),
		log:     log.Logger,
		now:     time.Now,
	}
}

// WithRunID returns a copy of the runner whose log lines carry the run id.
// The copy shares the registry and metrics with the original.
func (r *Runner) WithRunID(id string) *Runner {
	clone := *r
	clone.log = r.log.With().Str("run_id", id).Logger()
	return &clone
}

// Registry returns the registry the runner resolves tasks against.
func (r *Runner) Registry() *Registry { return r.reg }

// GetMetrics returns current performance metrics.
func (r *Runner) GetMetrics() (int64, int64, time.Duration) {
	return r.metrics.GetStats()
}

// Run executes the runnable bound to id, passing flags verbatim, and
// reports its exit status and elapsed time. A non-zero status is data, not
// an error; the only error Run returns is an id with no registered
// runnable.
func (r *Runner) Run(ctx context.Context, id ID, flags []string) (Result, error) {
	run, err := r.reg.Get(id)
	if err != nil {
		r.metrics.RecordError()
		return Result{ID: id}, err
	}

	r.log.Info().Str("task", string(id)).Msg("Starting task")
	start := r.now()
	code := run.Run(ctx, flags)
	elapsed := r.now().Sub(start).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	r.metrics.RecordRun(time.Duration(elapsed) * time.Millisecond)

	res := Result{ID: id, Code: code, Elapsed: elapsed}
	if code != 0 {
		r.metrics.RecordError()
		r.log.Error().
			Str("task", string(id)).
			Int("status", code).
			Str("elapsed", FormatMillis(elapsed)).
			Msg("Task failed")
		return res, nil
	}
	r.log.Info().
		Str("task", string(id)).
		Str("elapsed", FormatMillis(elapsed)).
		Msg("Finished task")
	return res, nil
}
