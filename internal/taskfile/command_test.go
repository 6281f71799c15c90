package taskfile

import (
	"context"
	"testing"
)

func TestCommandRunExitStatus(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"success", Spec{Name: "ok", Command: "true"}, 0},
		{"failure", Spec{Name: "fail", Command: "sh", Args: []string{"-c", "exit 3"}}, 3},
		{"missing binary", Spec{Name: "ghost", Command: "taskrun-no-such-binary"}, 127},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmd := &Command{Spec: test.spec}
			if got := cmd.Run(context.Background(), nil); got != test.want {
				t.Errorf("expected exit %d, got %d", test.want, got)
			}
		})
	}
}

func TestCommandRunForwardsFlags(t *testing.T) {
	cmd := &Command{Spec: Spec{
		Name:    "count",
		Command: "sh",
		Args:    []string{"-c", `exit $#`, "argv0"},
	}}

	if got := cmd.Run(context.Background(), []string{"-v", "--fast"}); got != 2 {
		t.Errorf("expected forwarded flag count 2 as exit status, got %d", got)
	}
}

func TestCommandRunEnv(t *testing.T) {
	cmd := &Command{Spec: Spec{
		Name:    "env",
		Command: "sh",
		Args:    []string{"-c", `exit "$WANT"`},
		Env:     map[string]string{"WANT": "5"},
	}}

	if got := cmd.Run(context.Background(), nil); got != 5 {
		t.Errorf("expected exit 5 from env, got %d", got)
	}
}
