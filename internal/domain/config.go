package domain

import (
	"strings"
	"time"
)

// Config is the effective plugin configuration after defaults, the config
// file, the environment and command-line flags have been layered.
type Config struct {
	URI            string `yaml:"uri" validate:"required,http_url"`
	TimeoutSeconds int    `yaml:"timeout" validate:"gt=0"`
	Token          string `yaml:"token,omitempty"`
	Insecure       bool   `yaml:"insecure"`
	Verbose        bool   `yaml:"verbose"`
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HasToken reports whether a bearer token is configured.
func (c Config) HasToken() bool {
	return strings.TrimSpace(c.Token) != ""
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.HasToken() {
		c.Token = RedactedToken
	}
	return c
}

// StatusURL joins the configured base URI with the system services status path.
func StatusURL(uri string) string {
	return strings.TrimRight(strings.TrimSpace(uri), "/") + StatusPath
}

// ConfigOverrides holds values set explicitly on the command line. A nil
// field leaves the underlying configuration untouched.
type ConfigOverrides struct {
	URI            *string
	TimeoutSeconds *int
	Token          *string
	Insecure       *bool
	Verbose        *bool
}

// Apply layers the overrides on top of cfg.
func (o ConfigOverrides) Apply(cfg Config) Config {
	if o.URI != nil {
		cfg.URI = *o.URI
	}
	if o.TimeoutSeconds != nil {
		cfg.TimeoutSeconds = *o.TimeoutSeconds
	}
	if o.Token != nil {
		cfg.Token = *o.Token
	}
	if o.Insecure != nil {
		cfg.Insecure = *o.Insecure
	}
	if o.Verbose != nil {
		cfg.Verbose = *o.Verbose
	}
	return cfg
}
