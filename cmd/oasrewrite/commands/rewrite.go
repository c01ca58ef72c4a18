package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/oasrewrite/internal/cliutil"
	"github.com/erraggy/oasrewrite/internal/fileutil"
	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/rewriter"
	"github.com/erraggy/oasrewrite/specdoc"
)

// RewriteFlags contains flags for the rewrite command
type RewriteFlags struct {
	Output          string
	Format          string
	Passes          string
	DuplicateSchema string
	Strict          bool
	Verify          bool
	Quiet           bool
	Verbose         bool
	NoColor         bool
}

// SetupRewriteFlags creates and configures a FlagSet for the rewrite command.
// Returns the FlagSet and a RewriteFlags struct with bound flag variables.
func SetupRewriteFlags() (*flag.FlagSet, *RewriteFlags) {
	fs := flag.NewFlagSet("rewrite", flag.ContinueOnError)
	flags := &RewriteFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: same as input)")
	fs.StringVar(&flags.Passes, "passes", "", "comma-separated passes to run (default: all)")
	fs.StringVar(&flags.DuplicateSchema, "duplicate-schema", rewriter.DefaultDuplicateSchema, "schema to remove and inline as a byte string")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when two schema names normalize to the same name")
	fs.BoolVar(&flags.Verify, "verify", false, "fail if any registry reference dangles after rewriting")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every change as it is applied")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable coloured status output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasrewrite rewrite [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Rewrite a generated OpenAPI document so client code generators accept it.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nPasses (applied in this order):\n")
		cliutil.Writef(fs.Output(), "  duplicate-schema       Remove the duplicate schema and inline references as\n")
		cliutil.Writef(fs.Output(), "                         type: string, format: byte\n")
		cliutil.Writef(fs.Output(), "  schema-names           Strip v1/V1 prefixes from schema names\n")
		cliutil.Writef(fs.Output(), "  operation-ids          Strip v1/V1 prefixes from operationIds (links follow)\n")
		cliutil.Writef(fs.Output(), "  references             Point $ref values at the renamed schemas\n")
		cliutil.Writef(fs.Output(), "  additional-properties  Drop object-valued additionalProperties\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasrewrite rewrite openapi.json > clean.json\n")
		cliutil.Writef(fs.Output(), "  oasrewrite rewrite -o clean.yaml --format yaml openapi.json\n")
		cliutil.Writef(fs.Output(), "  oasrewrite rewrite --passes schema-names,references openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oasrewrite rewrite -q - > clean.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document rewritten (or already clean)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to load, rewrite or verify the document\n")
	}

	return fs, flags
}

// HandleRewrite executes the rewrite command
func HandleRewrite(args []string) error {
	fs, flags := SetupRewriteFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("rewrite command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	opts, err := rewriteOptions(flags)
	if err != nil {
		return err
	}

	doc, err := loadSpec(specPath)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result, err := rewriter.RewriteWithOptions(append(opts, rewriter.WithDocument(doc))...)
	if err != nil {
		return fmt.Errorf("rewriting document: %w", err)
	}
	totalTime := time.Since(startTime)

	status := cliutil.NewStatus(stderr, flags.NoColor)
	if !flags.Quiet {
		cliutil.Writef(stderr, "OpenAPI Document Rewriter\n")
		cliutil.Writef(stderr, "=========================\n\n")
		OutputSpecHeader(specPath, result.Document)
		cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)

		if result.HasChanges() {
			cliutil.Writef(stderr, "Changes Applied (%d):\n", result.ChangeCount)
			for _, c := range result.Changes {
				cliutil.Writef(stderr, "  - [%s] %s: %s\n", c.Type, c.Path, c.Description)
			}
			cliutil.Writef(stderr, "\n")
		}
		for _, c := range result.Collisions {
			status.Warning("%s: %s produced by %v, last entry kept", c.Registry, c.Name, c.Sources)
		}
	}

	if flags.Verify {
		dangling, err := rewriter.CheckReferences(result.Document)
		if err != nil {
			return fmt.Errorf("verifying references: %w", err)
		}
		if len(dangling) > 0 {
			for _, d := range dangling {
				status.Failure("%s: %s", d.Path, d.Ref)
			}
			return fmt.Errorf("%d dangling reference(s) after rewrite: %w", len(dangling), dangling[0].AsError())
		}
	}

	if !flags.Quiet {
		if result.HasChanges() {
			status.Success("Applied %d change(s)", result.ChangeCount)
		} else {
			status.Success("No changes needed - document is already clean")
		}
	}

	format := result.SourceFormat
	if flags.Format != "" {
		format, _ = specdoc.ParseFormat(flags.Format)
	}
	data, err := result.Document.Marshal(format)
	if err != nil {
		return fmt.Errorf("marshaling rewritten document: %w", err)
	}

	if flags.Output != "" {
		var inputs []string
		if specPath != StdinFilePath {
			inputs = append(inputs, specPath)
		}
		path, err := pathutil.SanitizeOutputPath(flags.Output, inputs...)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, fileutil.DocumentMode); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(stderr, "\nOutput written to: %s\n", flags.Output)
		}
		return nil
	}

	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("writing rewritten document to stdout: %w", err)
	}
	return nil
}

// rewriteOptions translates the flags into rewriter options.
func rewriteOptions(flags *RewriteFlags) ([]rewriter.Option, error) {
	opts := []rewriter.Option{
		rewriter.WithDuplicateSchema(flags.DuplicateSchema),
		rewriter.WithStrictCollisions(flags.Strict),
		rewriter.WithLogger(rewriter.NewSlogAdapter(newLogger(flags.Quiet, flags.Verbose))),
	}

	if names := splitList(flags.Passes); len(names) > 0 {
		passes := make([]rewriter.PassType, 0, len(names))
		for _, name := range names {
			p, err := rewriter.ParsePassType(name)
			if err != nil {
				return nil, err
			}
			passes = append(passes, p)
		}
		opts = append(opts, rewriter.WithEnabledPasses(passes...))
	}

	return opts, nil
}
