// Package ports defines the interfaces (ports) between the check logic and
// its adapters.
//
// The application core depends only on these abstractions, so the HTTP
// client, the configuration source and the log backend can be swapped in
// tests without touching the check itself.
package ports

import (
	"context"

	"github.com/doeshing/check-cdap/internal/domain"
)

// ConfigProvider resolves configuration from defaults, the config file, the
// environment and command-line overrides.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
	// Path is the config file location Load reads, whether or not it exists.
	Path() string
}

// StatusFetcher issues the GET against the system services status endpoint.
// A non-nil error means no HTTP response was received at all.
type StatusFetcher interface {
	Fetch(ctx context.Context, req domain.StatusRequest) (domain.StatusResponse, error)
}

// Logger provides structured logging abstraction for the application layer.
// Output never goes to stdout, which carries the plugin result line.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
