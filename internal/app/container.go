package app

import (
	"context"
	"io"
	"os"

	"github.com/doeshing/check-cdap/internal/application/check"
	"github.com/doeshing/check-cdap/internal/application/doctor"
	"github.com/doeshing/check-cdap/internal/domain"
	"github.com/doeshing/check-cdap/internal/infrastructure/cdap"
	"github.com/doeshing/check-cdap/internal/infrastructure/config"
	"github.com/doeshing/check-cdap/internal/pkg/logger"
	"github.com/doeshing/check-cdap/internal/ports"
)

// Settings are the inputs known once command-line flags are parsed.
type Settings struct {
	ConfigPath string
	EnvFile    string
	Overrides  domain.ConfigOverrides
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// LogOutput defaults to os.Stderr.
	LogOutput io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  ports.ConfigProvider
	CheckService  *check.Service
	DoctorService *doctor.Service
	Logger        ports.Logger
}

// BuildContainer resolves the effective configuration and constructs the
// dependency graph.
func BuildContainer(ctx context.Context, s Settings) (*Container, error) {
	lookup := s.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	opts := []config.Option{config.WithLookupEnv(lookup), config.WithOverrides(s.Overrides)}
	if s.EnvFile != "" {
		opts = append(opts, config.WithEnvFile(s.EnvFile))
	}

	var cfgLoader ports.ConfigProvider = config.NewFileLoader(s.ConfigPath, opts...)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	logOutput := s.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	log := logger.New(logOutput, cfg.Verbose)

	fetcher := cdap.NewClient(cdap.ClientConfig{Logger: log})
	checkService := &check.Service{
		Fetcher: fetcher,
		Logger:  log,
	}
	doctorService := &doctor.Service{
		Fetcher:    fetcher,
		ConfigPath: cfgLoader.Path(),
	}

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		CheckService:  checkService,
		DoctorService: doctorService,
		Logger:        log,
	}, nil
}
