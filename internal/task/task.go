package task

import "context"

// ID names a registered runnable unit of work.
type ID string

// Runnable is the unit of work bound to an ID. Run receives the CLI flags
// forwarded to every task and returns the task's exit status.
type Runnable interface {
	Run(ctx context.Context, flags []string) int
}

// RunFunc adapts a plain function to the Runnable interface.
type RunFunc func(ctx context.Context, flags []string) int

func (f RunFunc) Run(ctx context.Context, flags []string) int {
	return f(ctx, flags)
}
