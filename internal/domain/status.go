// Package domain defines the verdicts, results and configuration shared by
// every layer of check_cdap.
//
// The domain layer carries no infrastructure concerns: it knows how a Nagios
// verdict is spelled and which exit code it maps to, but not how the status
// endpoint is reached.
package domain

// Status is a Nagios plugin verdict.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the upper-case label monitoring dashboards expect.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the verdict to the process exit code. Out-of-range values
// are reported as UNKNOWN.
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return int(StatusUnknown)
	}
	return int(s)
}
