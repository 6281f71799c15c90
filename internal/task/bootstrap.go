package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// State tracks the bootstrap lifecycle.
type State int

const (
	Idle State = iota
	Resolving
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Bootstrapper decides what to run from parsed CLI input and owns the
// process exit code. It triggers at most once; after the first call it
// neutralizes itself and repeat calls return the recorded exit code.
type Bootstrapper struct {
	runner      *Runner
	defaultTask ID
	out         io.Writer

	mu    sync.Mutex
	state State
	code  int
}

func NewBootstrapper(r *Runner, defaultTask ID) *Bootstrapper {
	return &Bootstrapper{
		runner:      r,
		defaultTask: defaultTask,
		out:         os.Stdout,
	}
}

// State returns the current bootstrap state.
func (b *Bootstrapper) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Bootstrap resolves and runs the top-level task list. Explicit tasks run
// sequentially, in order. With none given, the configured default task runs
// if it is defined. With no default either, nothing runs: the full task
// listing is printed and the exit code is zero.
func (b *Bootstrapper) Bootstrap(ctx context.Context, tasks []ID, flags []string) int {
	b.mu.Lock()
	if b.state != Idle {
		code := b.code
		b.mu.Unlock()
		return code
	}
	b.state = Resolving
	b.mu.Unlock()

	// Every log line of this run carries the same run id.
	runner := b.runner.WithRunID(uuid.NewString())
	runner.log.Debug().
		Int("tasks", len(tasks)).
		Int("flags", len(flags)).
		Msg("Bootstrapping")

	b.setState(Running)
	code := b.resolve(ctx, runner, tasks, flags)

	b.mu.Lock()
	b.code = code
	b.state = Done
	b.mu.Unlock()
	return code
}

func (b *Bootstrapper) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

func (b *Bootstrapper) resolve(ctx context.Context, runner *Runner, tasks []ID, flags []string) int {
	switch {
	case len(tasks) > 0:
		return exitCode(runner.RunSequence(ctx, tasks, flags))
	case runner.Registry().Defined(b.defaultTask):
		return exitCode(runner.RunSequence(ctx, []ID{b.defaultTask}, flags))
	default:
		runner.log.Info().Msg("Nothing to run")
		for _, id := range runner.Registry().List() {
			fmt.Fprintf(b.out, "%s\t%s\n", id, runner.Registry().Describe(id))
		}
		return ExitOK
	}
}

// exitCode maps an engine error to the process exit code contract.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}
