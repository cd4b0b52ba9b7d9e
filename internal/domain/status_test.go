package domain_test

import (
	"testing"

	"github.com/doeshing/check-cdap/internal/domain"
)

func TestStatus_ExitCode(t *testing.T) {
	tests := []struct {
		status domain.Status
		label  string
		code   int
	}{
		{domain.StatusOK, "OK", 0},
		{domain.StatusWarning, "WARNING", 1},
		{domain.StatusCritical, "CRITICAL", 2},
		{domain.StatusUnknown, "UNKNOWN", 3},
		{domain.Status(42), "UNKNOWN", 3},
		{domain.Status(-1), "UNKNOWN", 3},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.status.String(); got != tt.label {
				t.Errorf("String() = %q, want %q", got, tt.label)
			}
			if got := tt.status.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestResult_Line(t *testing.T) {
	r := domain.OK(domain.MsgAllServicesOK)
	if got, want := r.Line(), "OK - All CDAP system services are OK"; got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}

	r.PerfData = "services=3;;;0"
	if got, want := r.Line(), "OK - All CDAP system services are OK | services=3;;;0"; got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestServiceStatus_Healthy(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"OK", true},
		{"NOTOK", false},
		{"PARTIALLY NOTOK", false},
		{"notok", true},
		{"", true},
	}

	for _, tt := range tests {
		s := domain.ServiceStatus{Name: "appfabric", Status: tt.status}
		if got := s.Healthy(); got != tt.want {
			t.Errorf("Healthy(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
