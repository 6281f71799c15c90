package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3cpo-dev/taskrun/internal/task"
	"github.com/3cpo-dev/taskrun/internal/taskfile"
)

// Resolve the registry from the taskfile
func resolveRegistry(cmd *cobra.Command) (*task.Registry, *taskfile.File, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("file")
	tf, err := taskfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	reg := task.NewRegistry()
	if err := tf.Register(reg); err != nil {
		return nil, nil, err
	}
	return reg, tf, nil
}

// Run the named tasks
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [task ...] [flag ...]",
		Short: "Run the named tasks in order, or the default task",
		Long:  "Positional arguments name tasks to run sequentially. Dash-prefixed arguments are forwarded unchanged to every invoked task. With no task arguments, the taskfile's default task runs; with no default either, the task listing is printed. Taskrun's own --file and --log flags are recognized only ahead of the first task or forwarded flag.",
		// Flag parsing is off so that dash arguments reach the tasks
		// instead of erroring as unknown flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rest, help, err := consumeOwnFlags(cmd, args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			level, _ := cmd.Root().PersistentFlags().GetString("log")
			applyLogLevel(level)

			reg, tf, err := resolveRegistry(cmd)
			if err != nil {
				return err
			}
			tasks, flags := splitArgs(rest)
			boot := task.NewBootstrapper(task.NewRunner(reg), task.ID(tf.Default))
			if code := boot.Bootstrap(cmd.Context(), tasks, flags); code != 0 {
				return &task.ExitError{Code: code}
			}
			return nil
		},
	}
	return cmd
}

// consumeOwnFlags peels taskrun's own flags off the front of args and
// applies them to the root flag set. The scan stops at the first argument
// it does not recognize, so unknown dash arguments are forwarded to tasks
// rather than rejected.
func consumeOwnFlags(cmd *cobra.Command, args []string) ([]string, bool, error) {
	for len(args) > 0 {
		arg := args[0]
		switch {
		case arg == "--help" || arg == "-h":
			return nil, true, nil
		case arg == "--file" || arg == "-f" || arg == "--log" || arg == "-l":
			if len(args) < 2 {
				return nil, false, fmt.Errorf("flag needs an argument: %s", arg)
			}
			if err := setOwnFlag(cmd, arg, args[1]); err != nil {
				return nil, false, err
			}
			args = args[2:]
		case strings.HasPrefix(arg, "--file=") || strings.HasPrefix(arg, "--log="):
			name, value, _ := strings.Cut(arg, "=")
			if err := setOwnFlag(cmd, name, value); err != nil {
				return nil, false, err
			}
			args = args[1:]
		case arg == "--":
			return args[1:], false, nil
		default:
			return args, false, nil
		}
	}
	return args, false, nil
}

func setOwnFlag(cmd *cobra.Command, name, value string) error {
	name = strings.TrimLeft(name, "-")
	switch name {
	case "f":
		name = "file"
	case "l":
		name = "log"
	}
	return cmd.Root().PersistentFlags().Set(name, value)
}

// List registered tasks
func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List tasks defined in the taskfile",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, tf, err := resolveRegistry(cmd)
			if err != nil {
				return err
			}
			for _, id := range reg.List() {
				name := string(id)
				if name == tf.Default {
					name += " (default)"
				}
				fmt.Printf("%s\t%s\n", name, reg.Describe(id))
			}
			return nil
		},
	}
}

// splitArgs separates task names from dash-prefixed flags, which are
// forwarded verbatim to every invoked task.
func splitArgs(args []string) ([]task.ID, []string) {
	var ids []task.ID
	var flags []string
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		} else {
			ids = append(ids, task.ID(a))
		}
	}
	return ids, flags
}
