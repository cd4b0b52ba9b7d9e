package check

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/check-cdap/internal/domain"
)

func TestParseServiceStatuses(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []domain.ServiceStatus
	}{
		{
			name: "compact object",
			body: `{"appfabric":"OK","dataset.executor":"NOTOK"}`,
			want: []domain.ServiceStatus{
				{Name: "appfabric", Status: "OK"},
				{Name: "dataset.executor", Status: "NOTOK"},
			},
		},
		{
			name: "pretty printed",
			body: "{\n  \"metrics\" : \"OK\",\n  \"log.saver\" : \"OK\"\n}\n",
			want: []domain.ServiceStatus{
				{Name: "metrics", Status: "OK"},
				{Name: "log.saver", Status: "OK"},
			},
		},
		{
			name: "no braces",
			body: `"streams":"OK"`,
			want: []domain.ServiceStatus{{Name: "streams", Status: "OK"}},
		},
		{
			name: "colon inside name",
			body: `{"a:b":"OK", "tx:manager" : "NOTOK"}`,
			want: []domain.ServiceStatus{
				{Name: "a:b", Status: "OK"},
				{Name: "tx:manager", Status: "NOTOK"},
			},
		},
		{
			name: "empty object",
			body: "{ }",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServiceStatuses(tt.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseServiceStatuses() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseServiceStatusesMalformed(t *testing.T) {
	bodies := map[string]string{
		"empty":               "",
		"unbalanced":          `{"a":"OK"`,
		"missing colon":       `{"a" "OK"}`,
		"unquoted name":       `{a:"OK"}`,
		"unquoted status":     `{"a":OK}`,
		"empty name":          `{"":"OK"}`,
		"empty status":        `{"a":""}`,
		"trailing comma":      `{"a":"OK",}`,
		"half quoted":         `{"a:"OK"}`,
		"number value":        `{"a":1}`,
		"unquoted colon name": `{a:b:"OK"}`,
		"unterminated name":   `{"a:OK}`,
		"text after name":     `{"a"x:"OK"}`,
		"whitespace in quote": `{"  ":"OK"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ParseServiceStatuses(body)
			if !errors.Is(err, domain.ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Run("all ok", func(t *testing.T) {
		got := Aggregate([]domain.ServiceStatus{{Name: "a", Status: "OK"}, {Name: "b", Status: "OK"}})
		want := domain.Result{
			Status:   domain.StatusOK,
			Message:  domain.MsgAllServicesOK,
			PerfData: "services=2;;;0 notok=0;;;0",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("notok listed in order", func(t *testing.T) {
		got := Aggregate([]domain.ServiceStatus{
			{Name: "foo", Status: "NOTOK"},
			{Name: "bar", Status: "OK"},
			{Name: "baz", Status: "NOTOK"},
		})
		if got.Status != domain.StatusCritical {
			t.Fatalf("status = %s, want CRITICAL", got.Status)
		}
		if want := "CDAP system services NOTOK: foo=NOTOK, baz=NOTOK"; got.Message != want {
			t.Errorf("message = %q, want %q", got.Message, want)
		}
		if want := "services=3;;;0 notok=2;;;0"; got.PerfData != want {
			t.Errorf("perfdata = %q, want %q", got.PerfData, want)
		}
	})

	t.Run("no services", func(t *testing.T) {
		if got := Aggregate(nil); got.Status != domain.StatusOK {
			t.Errorf("status = %s, want OK", got.Status)
		}
	})
}
