package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasrewrite/internal/cliutil"
	"github.com/erraggy/oasrewrite/rewriter"
)

// ErrCheckFailed is returned when the check command finds problems. The
// problems themselves have already been reported.
var ErrCheckFailed = errors.New("check failed")

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Names   bool
	Quiet   bool
	NoColor bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.BoolVar(&flags.Names, "names", false, "also report schema names and operationIds with a version prefix")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report problems")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report problems")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable coloured status output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasrewrite check [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Report $ref pointers into components.schemas or definitions whose entry is missing.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasrewrite check openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oasrewrite rewrite -q api.json | oasrewrite check --names -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    No problems found\n")
		cliutil.Writef(fs.Output(), "  1    Problems found, or the document could not be loaded\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)
	doc, err := loadSpec(specPath)
	if err != nil {
		return err
	}

	dangling, err := rewriter.CheckReferences(doc)
	if err != nil {
		return fmt.Errorf("checking references: %w", err)
	}
	var prefixed []string
	if flags.Names {
		if prefixed, err = rewriter.CheckNames(doc); err != nil {
			return fmt.Errorf("checking names: %w", err)
		}
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "OpenAPI Reference Check\n")
		cliutil.Writef(stderr, "=======================\n\n")
		OutputSpecHeader(specPath, doc)
		cliutil.Writef(stderr, "\n")
	}

	status := cliutil.NewStatus(stderr, flags.NoColor)
	for _, d := range dangling {
		status.Failure("%s: %s does not exist in %s", d.Path, d.Ref, d.Registry)
	}
	for _, p := range prefixed {
		status.Warning("%s: version-prefixed name", p)
	}

	if len(dangling) > 0 || len(prefixed) > 0 {
		return fmt.Errorf("%w: %d dangling reference(s), %d version-prefixed name(s)", ErrCheckFailed, len(dangling), len(prefixed))
	}
	if !flags.Quiet {
		status.Success("All references resolve")
	}
	return nil
}
