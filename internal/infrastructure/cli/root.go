package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/doeshing/check-cdap/internal/app"
	"github.com/doeshing/check-cdap/internal/domain"
	"github.com/doeshing/check-cdap/internal/infrastructure/cli/commands"
)

// Options holds CLI-level collaborators.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	return o
}

type flagValues struct {
	uri        string
	timeout    int
	token      string
	insecure   bool
	verbose    bool
	configPath string
	envFile    string
}

func (f *flagValues) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.uri, "uri", "u", "", "CDAP router URI, e.g. http://cdap:11015 (env "+domain.EnvURI+")")
	flags.IntVarP(&f.timeout, "timeout", "t", domain.DefaultTimeoutSeconds, "Request timeout in seconds (env "+domain.EnvTimeout+")")
	flags.StringVarP(&f.token, "token", "T", "", "Bearer token (env "+domain.EnvToken+")")
	flags.BoolVarP(&f.insecure, "insecure", "k", false, "Skip TLS certificate verification")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log request details to stderr")
	flags.StringVarP(&f.configPath, "config", "c", "", "Config file (env "+domain.EnvConfig+")")
	flags.StringVar(&f.envFile, "env-file", "", "Load CHECK_CDAP_* variables from a .env file")
}

// overrides returns only the values set explicitly on the command line, so
// the environment and config file still apply to everything else.
func (f *flagValues) overrides(flags *pflag.FlagSet) domain.ConfigOverrides {
	var o domain.ConfigOverrides
	if flags.Changed("uri") {
		o.URI = &f.uri
	}
	if flags.Changed("timeout") {
		o.TimeoutSeconds = &f.timeout
	}
	if flags.Changed("token") {
		o.Token = &f.token
	}
	if flags.Changed("insecure") {
		o.Insecure = &f.insecure
	}
	if flags.Changed("verbose") {
		o.Verbose = &f.verbose
	}
	return o
}

// NewRootCmd wires the cobra root command. report receives the verdict of
// the status check; it is not called for help or subcommands.
func NewRootCmd(opts Options, report func(domain.Result)) *cobra.Command {
	opts = opts.withDefaults()
	fv := &flagValues{}

	build := func(cmd *cobra.Command) (*app.Container, error) {
		return app.BuildContainer(cmd.Context(), app.Settings{
			ConfigPath: fv.configPath,
			EnvFile:    fv.envFile,
			Overrides:  fv.overrides(cmd.Flags()),
			LookupEnv:  opts.LookupEnv,
			LogOutput:  opts.Stderr,
		})
	}

	root := &cobra.Command{
		Use:   "check_cdap",
		Short: "Nagios plugin for CDAP system service health",
		Long: "check_cdap queries <uri>" + domain.StatusPath + " and exits\n" +
			"0 (OK), 2 (CRITICAL) or 3 (UNKNOWN) with a one-line summary.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd)
			if err != nil {
				report(domain.Unknown("%v", err))
				return nil
			}
			report(container.CheckService.Run(cmd.Context(), container.Config))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	fv.register(root.PersistentFlags())

	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewConfigCommand(build))
	root.AddCommand(commands.NewDoctorCommand(build))
	return root
}

// Run executes the plugin and returns the process exit code.
func Run(ctx context.Context, args []string, opts Options) int {
	opts = opts.withDefaults()

	var (
		result    *domain.Result
		helpShown bool
	)
	root := NewRootCmd(opts, func(r domain.Result) { result = &r })

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(cmd, args)
	})
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		r := domain.Unknown("%v", err)
		RenderResult(opts.Stdout, r)
		return r.ExitCode()
	}

	switch {
	case result != nil:
		RenderResult(opts.Stdout, *result)
		return result.ExitCode()
	case helpShown:
		return domain.StatusUnknown.ExitCode()
	default:
		return domain.StatusOK.ExitCode()
	}
}
