package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasrewrite/rewriter"
)

type checkInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to check"`
	Names  bool      `json:"names,omitempty"  jsonschema:"Also list schema names and operationIds that still carry a version prefix"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N dangling references (for pagination)"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of dangling references to return (default 100)"`
}

type danglingRef struct {
	Ref      string `json:"ref"`
	Path     string `json:"path"`
	Registry string `json:"registry"`
}

type checkOutput struct {
	Version         string        `json:"version"`
	Clean           bool          `json:"clean"`
	DanglingCount   int           `json:"dangling_count"`
	Returned        int           `json:"returned"`
	Dangling        []danglingRef `json:"dangling,omitempty"`
	VersionPrefixed []string      `json:"version_prefixed,omitempty"`
}

func handleCheckRefs(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	doc, err := input.Spec.load()
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	refs, err := rewriter.CheckReferences(doc)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{
		Version:       doc.Version(),
		DanglingCount: len(refs),
	}
	output.Dangling = makeSlice[danglingRef](len(refs))
	for _, r := range refs {
		output.Dangling = append(output.Dangling, danglingRef{Ref: r.Ref, Path: r.Path, Registry: r.Registry})
	}
	output.Dangling = paginate(output.Dangling, input.Offset, input.Limit)
	output.Returned = len(output.Dangling)

	if input.Names {
		names, err := rewriter.CheckNames(doc)
		if err != nil {
			return errResult(err), checkOutput{}, nil
		}
		output.VersionPrefixed = names
	}
	output.Clean = output.DanglingCount == 0 && len(output.VersionPrefixed) == 0

	return nil, output, nil
}
