// Package commands provides CLI command handlers for oasrewrite.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/oasrewrite"
	"github.com/erraggy/oasrewrite/internal/cliutil"
	"github.com/erraggy/oasrewrite/specdoc"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates a document output format. Empty means the
// format of the input.
func ValidateOutputFormat(format string) error {
	if format == "" {
		return nil
	}
	if _, err := specdoc.ParseFormat(format); err != nil {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// loadSpec reads the document from a file or, for "-", from stdin.
func loadSpec(specPath string) (*specdoc.Document, error) {
	if specPath == StdinFilePath {
		doc, err := specdoc.LoadReader(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return doc, nil
	}
	doc, err := specdoc.Load(specPath)
	if err != nil {
		return nil, fmt.Errorf("loading file: %w", err)
	}
	return doc, nil
}

// OutputSpecHeader outputs the common specification header to stderr.
func OutputSpecHeader(specPath string, doc *specdoc.Document) {
	stats := doc.Stats()
	cliutil.Writef(stderr, "oasrewrite version: %s\n", oasrewrite.Version())
	cliutil.Writef(stderr, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(stderr, "OAS Version: %s\n", doc.Version())
	cliutil.Writef(stderr, "Paths: %d\n", stats.PathCount)
	cliutil.Writef(stderr, "Operations: %d\n", stats.OperationCount)
	cliutil.Writef(stderr, "Schemas: %d\n", stats.SchemaCount)
}

// newLogger returns the diagnostic logger for a command. Quiet discards
// everything below error; verbose enables per-change debug lines.
func newLogger(quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
