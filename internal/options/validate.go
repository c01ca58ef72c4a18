// Package options holds option checks shared by the rewriter and its front ends.
package options

import (
	"fmt"

	"github.com/erraggy/oasrewrite/oaserrors"
)

// SingleInput ensures exactly one input source is set. names describes the
// accepted sources in the error message, e.g. "file or content".
func SingleInput(names string, set ...bool) error {
	count := 0
	for _, s := range set {
		if s {
			count++
		}
	}

	switch {
	case count == 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: fmt.Sprintf("no input source specified: use %s (got 0)", names),
		}
	case count > 1:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: fmt.Sprintf("multiple input sources specified: use only one of %s (got %d)", names, count),
		}
	}
	return nil
}
