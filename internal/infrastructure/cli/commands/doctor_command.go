package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/check-cdap/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(build ContainerBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose plugin setup against the configured endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, cmd.OutOrStdout(), build)
		},
	}
}

// runDoctorDiagnostics runs setup diagnostics
func runDoctorDiagnostics(cmd *cobra.Command, out io.Writer, build ContainerBuilder) error {
	container, err := resolve(cmd, build)
	if err != nil {
		return err
	}
	if container.DoctorService == nil {
		return errors.New(ErrDoctorServiceUnavailable)
	}

	report, err := container.DoctorService.Run(cmd.Context(), container.Config)

	// Display report even if there were errors
	displayDoctorReport(out, report)

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}

	return nil
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
