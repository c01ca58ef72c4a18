// Package cliutil holds the stderr helpers shared by the oasrewrite commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats to w. A failed write is reported on os.Stderr and otherwise
// ignored; diagnostics never fail a command.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
