package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/check-cdap/internal/domain"
)

func TestServiceRunHealthy(t *testing.T) {
	svc := &Service{Fetcher: stubFetcher{resp: domain.StatusResponse{Code: 200}}, ConfigPath: "/etc/check_cdap.yaml"}

	report, err := svc.Run(context.Background(), domain.Config{
		URI:            "https://cdap.example.com",
		TimeoutSeconds: 30,
		Token:          "t",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Failed() {
		t.Fatalf("unexpected failure: %+v", report.Checks)
	}
	for _, c := range report.Checks {
		if c.Status != domain.HealthOK {
			t.Errorf("check %s = %s (%s), want ok", c.Name, c.Status, c.Details)
		}
	}
}

func TestServiceRunInvalidConfigStops(t *testing.T) {
	fetcher := stubFetcher{err: errors.New("must not be called")}
	report, err := (&Service{Fetcher: fetcher}).Run(context.Background(), domain.Config{TimeoutSeconds: 30})

	if !errors.Is(err, domain.ErrMissingURI) {
		t.Fatalf("error = %v, want ErrMissingURI", err)
	}
	if len(report.Checks) != 1 || !report.Failed() {
		t.Fatalf("unexpected report %+v", report.Checks)
	}
}

func TestServiceRunWarnsOnInsecureAndMissingToken(t *testing.T) {
	svc := &Service{Fetcher: stubFetcher{resp: domain.StatusResponse{Code: 200}}}

	report, err := svc.Run(context.Background(), domain.Config{
		URI:            "https://cdap.example.com",
		TimeoutSeconds: 30,
		Insecure:       true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	warnings := map[string]bool{}
	for _, c := range report.Checks {
		if c.Status == domain.HealthWarn {
			warnings[c.Name] = true
		}
	}
	if !warnings["TLS"] || !warnings["Token"] {
		t.Fatalf("expected TLS and Token warnings, got %+v", report.Checks)
	}
}

func TestServiceRunUnauthorizedFails(t *testing.T) {
	svc := &Service{Fetcher: stubFetcher{resp: domain.StatusResponse{Code: 401}}}

	report, err := svc.Run(context.Background(), domain.Config{URI: "http://cdap:11015", TimeoutSeconds: 30})

	var httpErr *domain.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != 401 {
		t.Fatalf("error = %v, want HTTPError 401", err)
	}
	if !report.Failed() {
		t.Fatal("report should be marked failed")
	}
}

type stubFetcher struct {
	resp domain.StatusResponse
	err  error
}

func (s stubFetcher) Fetch(context.Context, domain.StatusRequest) (domain.StatusResponse, error) {
	return s.resp, s.err
}
