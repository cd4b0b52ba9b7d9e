package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/check-cdap/assets"
	"github.com/doeshing/check-cdap/internal/domain"
	"github.com/doeshing/check-cdap/internal/pkg/filesystem"
	"github.com/doeshing/check-cdap/internal/ports"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FileLoader layers embedded defaults, $XDG_CONFIG_HOME/check_cdap/config.yaml
// (overridable via CHECK_CDAP_CONFIG) and CHECK_CDAP_* environment variables.
type FileLoader struct {
	overridePath string
	envFile      string
	lookupEnv    LookupFunc
	overrides    domain.ConfigOverrides
}

// Option customises a FileLoader.
type Option func(*FileLoader)

// WithEnvFile reads KEY=VALUE pairs from path. Variables already present in
// the process environment win, as with godotenv.Load.
func WithEnvFile(path string) Option {
	return func(l *FileLoader) { l.envFile = path }
}

// WithOverrides layers command-line values on top of everything else. An
// environment variable shadowed by an override is neither read nor validated.
func WithOverrides(o domain.ConfigOverrides) Option {
	return func(l *FileLoader) { l.overrides = o }
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn LookupFunc) Option {
	return func(l *FileLoader) { l.lookupEnv = fn }
}

// NewFileLoader builds a new loader. An empty path selects the default location.
func NewFileLoader(path string, opts ...Option) *FileLoader {
	l := &FileLoader{overridePath: path, lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	lookup, err := l.lookup()
	if err != nil {
		return domain.Config{}, err
	}

	cfg, err := defaultConfig()
	if err != nil {
		return domain.Config{}, err
	}

	path, explicit := l.resolvePath(lookup)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return domain.Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg = hydrateDefaults(cfg)
	cfg, err = applyEnv(cfg, l.shadowed(lookup))
	if err != nil {
		return domain.Config{}, err
	}
	return l.overrides.Apply(cfg), nil
}

// shadowed hides variables whose value a command-line override replaces.
func (l *FileLoader) shadowed(lookup LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		switch {
		case key == domain.EnvURI && l.overrides.URI != nil,
			key == domain.EnvToken && l.overrides.Token != nil,
			key == domain.EnvTimeout && l.overrides.TimeoutSeconds != nil:
			return "", false
		}
		return lookup(key)
	}
}

// Path returns the config file location Load reads from.
func (l *FileLoader) Path() string {
	lookup, err := l.lookup()
	if err != nil {
		lookup = l.lookupEnv
	}
	path, _ := l.resolvePath(lookup)
	return path
}

func (l *FileLoader) lookup() (LookupFunc, error) {
	if l.envFile == "" {
		return l.lookupEnv, nil
	}
	vars, err := godotenv.Read(l.envFile)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	base := l.lookupEnv
	return func(key string) (string, bool) {
		if value, ok := base(key); ok {
			return value, true
		}
		value, ok := vars[key]
		return value, ok
	}, nil
}

func (l *FileLoader) resolvePath(lookup LookupFunc) (string, bool) {
	if l.overridePath != "" {
		return expandPath(l.overridePath), true
	}
	if custom, ok := lookup(domain.EnvConfig); ok && custom != "" {
		return expandPath(custom), true
	}
	return filepath.Join(filesystem.ConfigDir("check_cdap"), "config.yaml"), false
}

// Defaults returns the built-in configuration before any file or
// environment is applied.
func Defaults() (domain.Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = domain.DefaultTimeoutSeconds
	}
	return cfg
}

func applyEnv(cfg domain.Config, lookup LookupFunc) (domain.Config, error) {
	if value, ok := lookup(domain.EnvURI); ok && value != "" {
		cfg.URI = value
	}
	if value, ok := lookup(domain.EnvToken); ok && value != "" {
		cfg.Token = value
	}
	if value, ok := lookup(domain.EnvTimeout); ok && value != "" {
		seconds, err := ParseTimeout(value)
		if err != nil {
			return domain.Config{}, fmt.Errorf("%s: %w", domain.EnvTimeout, err)
		}
		cfg.TimeoutSeconds = seconds
	}
	return cfg, nil
}

// ParseTimeout parses a whole number of seconds.
func ParseTimeout(value string) (int, error) {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeout, value)
	}
	return seconds, nil
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
