package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/check-cdap/internal/domain"
)

// RenderResult prints the single plugin line Nagios reads from stdout.
func RenderResult(out io.Writer, r domain.Result) {
	fmt.Fprintln(out, r.Line())
}
