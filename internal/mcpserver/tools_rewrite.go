package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasrewrite/internal/fileutil"
	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/rewriter"
	"github.com/erraggy/oasrewrite/specdoc"
)

type rewriteInput struct {
	Spec             specInput `json:"spec"                        jsonschema:"The OAS document to rewrite"`
	Passes           []string  `json:"passes,omitempty"            jsonschema:"Passes to run (default: all): duplicate-schema\\, schema-names\\, operation-ids\\, references\\, additional-properties"`
	DuplicateSchema  string    `json:"duplicate_schema,omitempty"  jsonschema:"Schema removed and inlined as a byte string (default: OASREWRITE_DUPLICATE_SCHEMA or urlEncodedBase64)"`
	StrictCollisions bool      `json:"strict_collisions,omitempty" jsonschema:"Fail when two schema names normalize to the same name"`
	DryRun           bool      `json:"dry_run,omitempty"           jsonschema:"List changes without writing or returning the document"`
	IncludeDocument  bool      `json:"include_document,omitempty"  jsonschema:"Include the rewritten document in output"`
	Format           string    `json:"format,omitempty"            jsonschema:"Output format json or yaml (default: same as input)"`
	Output           string    `json:"output,omitempty"            jsonschema:"File path to write the rewritten document to"`
	Offset           int       `json:"offset,omitempty"            jsonschema:"Skip the first N changes (for pagination)"`
	Limit            int       `json:"limit,omitempty"             jsonschema:"Maximum number of changes to return (default 100)"`
}

type changeApplied struct {
	Pass        string `json:"pass"`
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type collision struct {
	Registry string   `json:"registry"`
	Name     string   `json:"name"`
	Sources  []string `json:"sources"`
}

type rewriteOutput struct {
	ChangeCount int             `json:"change_count"`
	PassCounts  map[string]int  `json:"pass_counts"`
	Returned    int             `json:"returned"`
	Changes     []changeApplied `json:"changes,omitempty"`
	Collisions  []collision     `json:"collisions,omitempty"`
	Version     string          `json:"version"`
	Format      string          `json:"format"`
	WrittenTo   string          `json:"written_to,omitempty"`
	Document    string          `json:"document,omitempty"`
}

func handleRewrite(_ context.Context, _ *mcp.CallToolRequest, input rewriteInput) (*mcp.CallToolResult, rewriteOutput, error) {
	format, err := outputFormat(input.Format)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	doc, err := input.Spec.load()
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	opts, err := buildRewriterOptions(input, doc)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	result, err := rewriter.RewriteWithOptions(opts...)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}

	if format == specdoc.SourceFormatUnknown {
		format = result.SourceFormat
	}
	output := rewriteOutput{
		ChangeCount: result.ChangeCount,
		PassCounts:  make(map[string]int, len(result.PassCounts)),
		Version:     result.SourceVersion,
		Format:      string(format),
	}
	for pass, n := range result.PassCounts {
		output.PassCounts[string(pass)] = n
	}

	output.Changes = makeSlice[changeApplied](len(result.Changes))
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, changeApplied{
			Pass:        string(c.Pass),
			Type:        string(c.Type),
			Path:        c.Path,
			Description: c.Description,
		})
	}
	output.Changes = paginate(output.Changes, input.Offset, input.Limit)
	output.Returned = len(output.Changes)

	output.Collisions = makeSlice[collision](len(result.Collisions))
	for _, c := range result.Collisions {
		output.Collisions = append(output.Collisions, collision{Registry: c.Registry, Name: c.Name, Sources: c.Sources})
	}

	if input.DryRun || (input.Output == "" && !input.IncludeDocument) {
		return nil, output, nil
	}

	data, err := result.Document.Marshal(format)
	if err != nil {
		return errResult(err), rewriteOutput{}, nil
	}
	if input.Output != "" {
		var inputs []string
		if input.Spec.File != "" {
			inputs = append(inputs, input.Spec.File)
		}
		path, err := pathutil.SanitizeOutputPath(input.Output, inputs...)
		if err != nil {
			return errResult(err), rewriteOutput{}, nil
		}
		if err := os.WriteFile(path, data, fileutil.DocumentMode); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), rewriteOutput{}, nil
		}
		output.WrittenTo = input.Output
	}
	if input.IncludeDocument {
		output.Document = string(data)
	}

	return nil, output, nil
}

// buildRewriterOptions translates the MCP input into rewriter options,
// applying server defaults for anything the call leaves unset.
func buildRewriterOptions(input rewriteInput, doc *specdoc.Document) ([]rewriter.Option, error) {
	duplicate := input.DuplicateSchema
	if duplicate == "" {
		duplicate = cfg.DuplicateSchema
	}

	opts := []rewriter.Option{
		rewriter.WithDocument(doc),
		rewriter.WithDuplicateSchema(duplicate),
		rewriter.WithStrictCollisions(input.StrictCollisions || cfg.StrictCollisions),
		rewriter.WithMaxDepth(cfg.MaxDepth),
	}

	if len(input.Passes) > 0 {
		passes := make([]rewriter.PassType, 0, len(input.Passes))
		for _, name := range input.Passes {
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

// outputFormat parses the format argument; empty means "same as input".
func outputFormat(s string) (specdoc.SourceFormat, error) {
	if s == "" {
		return specdoc.SourceFormatUnknown, nil
	}
	return specdoc.ParseFormat(s)
}
