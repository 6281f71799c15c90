package task

import "context"

// RunSequence executes ids in the given order, stopping at the first task
// that returns a non-zero status; tasks after it are skipped. Every id is
// checked against the registry before anything runs, so a missing id means
// zero tasks execute.
func (r *Runner) RunSequence(ctx context.Context, ids []ID, flags []string) error {
	if err := r.reg.Ensure(ids); err != nil {
		return err
	}
	for _, id := range ids {
		res, err := r.Run(ctx, id, flags)
		if err != nil {
			return err
		}
		if res.Code != 0 {
			return &Failure{ID: id, Code: res.Code}
		}
	}
	return nil
}
