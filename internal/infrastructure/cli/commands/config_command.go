package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/check-cdap/internal/app"
	configapp "github.com/doeshing/check-cdap/internal/application/config"
	configinfra "github.com/doeshing/check-cdap/internal/infrastructure/config"
)

// ContainerBuilder resolves configuration for the command being run, so
// that root persistent flags (-u, -c, --env-file, ...) are honoured.
type ContainerBuilder func(cmd *cobra.Command) (*app.Container, error)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(build ContainerBuilder) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective check_cdap configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, build)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective configuration (token redacted)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd, build)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := resolve(cmd, build)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := resolve(cmd, build)
				if err != nil {
					return err
				}
				if err := configapp.Validate(container.Config); err != nil {
					return fmt.Errorf("configuration validation failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
				return nil
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show diff versus default configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfigurationDiff(cmd, build)
			},
		},
	)

	return configCmd
}

func resolve(cmd *cobra.Command, build ContainerBuilder) (*app.Container, error) {
	if build == nil {
		return nil, errors.New(ErrContainerUnavailable)
	}
	return build(cmd)
}

// showConfiguration displays the effective configuration in YAML format
func showConfiguration(cmd *cobra.Command, build ContainerBuilder) error {
	container, err := resolve(cmd, build)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(container.Config.Redacted())
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// showConfigurationDiff compares the effective configuration with the built-in defaults
func showConfigurationDiff(cmd *cobra.Command, build ContainerBuilder) error {
	container, err := resolve(cmd, build)
	if err != nil {
		return err
	}
	defaults, err := configinfra.Defaults()
	if err != nil {
		return err
	}
	writeDiff(cmd.OutOrStdout(), cmp.Diff(defaults.Redacted(), container.Config.Redacted()))
	return nil
}

func writeDiff(out io.Writer, diff string) {
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return
	}
	fmt.Fprint(out, diff)
}
