package domain

import "fmt"

// Result is the outcome of one plugin invocation.
type Result struct {
	Status  Status
	Message string
	// PerfData is appended after a pipe when non-empty.
	PerfData string
}

// Line renders the single line printed to stdout.
func (r Result) Line() string {
	line := fmt.Sprintf("%s - %s", r.Status, r.Message)
	if r.PerfData != "" {
		line += " | " + r.PerfData
	}
	return line
}

// ExitCode is shorthand for r.Status.ExitCode().
func (r Result) ExitCode() int {
	return r.Status.ExitCode()
}

func OK(format string, args ...any) Result {
	return Result{Status: StatusOK, Message: fmt.Sprintf(format, args...)}
}

func Critical(format string, args ...any) Result {
	return Result{Status: StatusCritical, Message: fmt.Sprintf(format, args...)}
}

func Unknown(format string, args ...any) Result {
	return Result{Status: StatusUnknown, Message: fmt.Sprintf(format, args...)}
}
