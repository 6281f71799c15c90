package taskfile

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Command is an exec-backed runnable built from a taskfile entry. Flags
// from the CLI are appended after the declared args; env entries are merged
// over the parent environment.
type Command struct {
	Spec Spec
}

func (c *Command) Run(ctx context.Context, flags []string) int {
	args := append(append([]string{}, c.Spec.Args...), flags...)
	cmd := exec.CommandContext(ctx, c.Spec.Command, args...)
	cmd.Dir = c.Spec.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	for k, v := range c.Spec.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		log.Error().Str("command", c.Spec.Command).Err(err).Msg("Failed to start command")
		return 127
	}
	return 0
}
