package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunParallelAllSucceed(t *testing.T) {
	reg := NewRegistry()
	tasks := []*fakeTask{{}, {}, {}}
	reg.Register("a", "", tasks[0])
	reg.Register("b", "", tasks[1])
	reg.Register("c", "", tasks[2])
	runner := NewRunner(reg)

	if err := runner.RunParallel(context.Background(), []ID{"a", "b", "c"}, nil); err != nil {
		t.Fatalf("RunParallel failed: %v", err)
	}
	for i, task := range tasks {
		if task.invocations() != 1 {
			t.Errorf("task %d: expected 1 invocation, got %d", i, task.invocations())
		}
	}
}

func TestRunParallelPartialFailure(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", "", &fakeTask{code: 0})
	reg.Register("b", "", &fakeTask{code: 1})
	runner := NewRunner(reg)

	err := runner.RunParallel(context.Background(), []ID{"a", "b"}, nil)
	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("expected AggregateError, got %v", err)
	}
	if agg.Outcome != PartialFailure {
		t.Errorf("expected partial failure, got %s", agg.Outcome)
	}
	if agg.Failed != 1 || agg.Total != 2 {
		t.Errorf("unexpected counts: %+v", agg)
	}
	if agg.ExitCode() != ExitPartialFailure {
		t.Errorf("expected exit code %d, got %d", ExitPartialFailure, agg.ExitCode())
	}
}

func TestRunParallelAllFailed(t *testing.T) {
	reg := NewRegistry()
	all := []*fakeTask{{code: 1}, {code: 2}, {code: 3}}
	reg.Register("a", "", all[0])
	reg.Register("b", "", all[1])
	reg.Register("c", "", all[2])
	runner := NewRunner(reg)

	err := runner.RunParallel(context.Background(), []ID{"a", "b", "c"}, nil)
	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("expected AggregateError, got %v", err)
	}
	if agg.Outcome != AllFailed {
		t.Errorf("expected all failed, got %s", agg.Outcome)
	}
	if agg.ExitCode() != ExitAllFailed {
		t.Errorf("expected exit code %d, got %d", ExitAllFailed, agg.ExitCode())
	}
	for i, task := range all {
		if task.invocations() != 1 {
			t.Errorf("task %d: expected 1 invocation, got %d", i, task.invocations())
		}
	}
}

func TestRunParallelMissingTaskLaunchesNothing(t *testing.T) {
	reg := NewRegistry()
	a := &fakeTask{}
	reg.Register("a", "", a)
	runner := NewRunner(reg)

	err := runner.RunParallel(context.Background(), []ID{"a", "ghost"}, nil)
	var unknown *UnknownTaskError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTaskError, got %v", err)
	}
	if a.invocations() != 0 {
		t.Errorf("expected zero invocations, got %d", a.invocations())
	}
}

func TestRunParallelWaitsForAllAfterFailure(t *testing.T) {
	reg := NewRegistry()
	fast := &fakeTask{code: 1}
	slow := &fakeTask{code: 0, delay: 50 * time.Millisecond}
	reg.Register("fast", "", fast)
	reg.Register("slow", "", slow)
	runner := NewRunner(reg)

	err := runner.RunParallel(context.Background(), []ID{"fast", "slow"}, nil)
	var agg *AggregateError
	if !errors.As(err, &agg) {
		t.Fatalf("expected AggregateError, got %v", err)
	}
	// The join must have waited for the slow sibling despite the early failure.
	if slow.invocations() != 1 {
		t.Errorf("slow task was not awaited: %d invocations", slow.invocations())
	}
}

func TestRunParallelEmptyList(t *testing.T) {
	runner := NewRunner(NewRegistry())
	if err := runner.RunParallel(context.Background(), nil, nil); err != nil {
		t.Fatalf("empty batch should succeed, got %v", err)
	}
}
