// Package version holds build metadata injected with -ldflags.
package version

import (
	"runtime"
	"strings"
)

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// String renders a single line in the plugin's output style, e.g.
// "check_cdap 1.2.0 (commit 3f2c1a9, built 2026-10-01, go1.25.3)".
func String() string {
	details := make([]string, 0, 3)
	if Commit != "" {
		details = append(details, "commit "+Commit)
	}
	if BuildDate != "" {
		details = append(details, "built "+BuildDate)
	}
	details = append(details, runtime.Version())
	return "check_cdap " + Version + " (" + strings.Join(details, ", ") + ")"
}
