package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Status writes one-line status messages prefixed with a coloured mark.
type Status struct {
	w       io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewStatus creates a Status writing to w. Colour is off when noColor is set
// or the NO_COLOR environment variable is present.
func NewStatus(w io.Writer, noColor bool) *Status {
	s := &Status{
		w:       w,
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		for _, c := range []*color.Color{s.success, s.warning, s.failure} {
			c.DisableColor()
		}
	}
	return s
}

// Success writes "✓ message".
func (s *Status) Success(format string, args ...any) {
	s.line(s.success, "✓", format, args...)
}

// Warning writes "! message".
func (s *Status) Warning(format string, args ...any) {
	s.line(s.warning, "!", format, args...)
}

// Failure writes "✗ message".
func (s *Status) Failure(format string, args ...any) {
	s.line(s.failure, "✗", format, args...)
}

func (s *Status) line(c *color.Color, mark, format string, args ...any) {
	Writef(s.w, "%s %s\n", c.Sprint(mark), fmt.Sprintf(format, args...))
}
