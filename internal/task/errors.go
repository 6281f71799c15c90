package task

import "fmt"

// Process exit codes. A sequential failure propagates the failing task's own
// status instead of one of these.
const (
	ExitOK             = 0
	ExitPartialFailure = 41
	ExitAllFailed      = 42
	ExitUnknownTask    = 127
)

// ExitCoder is implemented by errors that carry a process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// UnknownTaskError reports an id with no registered runnable.
type UnknownTaskError struct {
	ID ID
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("task not registered: %s", e.ID)
}

func (e *UnknownTaskError) ExitCode() int { return ExitUnknownTask }

// Failure reports a task that ran and returned a non-zero exit status.
type Failure struct {
	ID   ID
	Code int
}

func (e *Failure) Error() string {
	return fmt.Sprintf("task %s failed with status %d", e.ID, e.Code)
}

func (e *Failure) ExitCode() int { return e.Code }

// Outcome classifies a parallel batch by its failure count.
type Outcome int

const (
	AllSucceeded Outcome = iota
	PartialFailure
	AllFailed
)

func (o Outcome) String() string {
	switch o {
	case AllSucceeded:
		return "all succeeded"
	case PartialFailure:
		return "partial failure"
	case AllFailed:
		return "all failed"
	default:
		return "unknown"
	}
}

// AggregateError reports the outcome of a parallel batch with at least one
// failed task.
type AggregateError struct {
	Outcome Outcome
	Failed  int
	Total   int
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("parallel batch: %d of %d tasks failed (%s)", e.Failed, e.Total, e.Outcome)
}

func (e *AggregateError) ExitCode() int {
	if e.Outcome == AllFailed {
		return ExitAllFailed
	}
	return ExitPartialFailure
}

// ExitError carries a bare process exit code through a command's error
// return after the failure itself has already been logged.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) ExitCode() int { return e.Code }
