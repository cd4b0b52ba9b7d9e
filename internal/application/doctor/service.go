package doctor

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	configapp "github.com/doeshing/check-cdap/internal/application/config"
	"github.com/doeshing/check-cdap/internal/domain"
	"github.com/doeshing/check-cdap/internal/pkg/filesystem"
	"github.com/doeshing/check-cdap/internal/ports"
)

// Service runs setup diagnostics for operators wiring the plugin into Nagios.
type Service struct {
	Fetcher    ports.StatusFetcher
	ConfigPath string
}

// Run executes checks and returns a report. It stops after the first check
// that makes the following ones meaningless.
func (s *Service) Run(ctx context.Context, cfg domain.Config) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	switch {
	case s.ConfigPath == "":
	case filesystem.Exists(s.ConfigPath):
		checks = append(checks, ok("Config file", s.ConfigPath))
	default:
		checks = append(checks, ok("Config file", s.ConfigPath+" not present, using defaults and environment"))
	}

	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Configuration", err.Error()))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Configuration", fmt.Sprintf("uri=%s timeout=%s", cfg.URI, cfg.Timeout())))

	checks = append(checks, tlsCheck(cfg), tokenCheck(cfg))

	url := domain.StatusURL(cfg.URI)
	resp, err := s.Fetcher.Fetch(ctx, domain.StatusRequest{
		URL:      url,
		Token:    strings.TrimSpace(cfg.Token),
		Insecure: cfg.Insecure,
		Timeout:  cfg.Timeout(),
	})
	if err != nil {
		checks = append(checks, fail("Endpoint", err.Error()))
		return domain.HealthReport{Checks: checks}, err
	}

	switch resp.Code {
	case http.StatusOK:
		checks = append(checks, ok("Endpoint", fmt.Sprintf("%s answered 200", url)))
	case http.StatusUnauthorized:
		checks = append(checks, fail("Endpoint", "401: token missing or rejected"))
		return domain.HealthReport{Checks: checks}, &domain.HTTPError{Code: resp.Code, URL: url}
	default:
		checks = append(checks, warn("Endpoint", fmt.Sprintf("%s answered %03d", url, resp.Code)))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func tlsCheck(cfg domain.Config) domain.HealthCheck {
	switch {
	case !strings.HasPrefix(strings.ToLower(cfg.URI), "https://"):
		return warn("TLS", "plain http, token and status travel unencrypted")
	case cfg.Insecure:
		return warn("TLS", "certificate verification disabled (-k)")
	default:
		return ok("TLS", "certificate verification enabled")
	}
}

func tokenCheck(cfg domain.Config) domain.HealthCheck {
	if cfg.HasToken() {
		return ok("Token", "bearer token configured")
	}
	return warn("Token", "no token, fine unless the router enforces authentication")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
