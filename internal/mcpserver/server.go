// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasrewrite capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasrewrite"
)

const serverInstructions = `oasrewrite MCP server: rewrites machine-generated OpenAPI documents for client code generators and checks their registry references.

Configuration: defaults are configurable via OASREWRITE_* environment variables set in your MCP client config.

Key settings:
- OASREWRITE_DUPLICATE_SCHEMA (default: urlEncodedBase64): schema removed and inlined as a byte string
- OASREWRITE_STRICT_COLLISIONS (default: false): fail when two schema names normalize to the same name
- OASREWRITE_MAX_DEPTH (default: 1000): maximum nesting depth traversed
- OASREWRITE_CHANGE_LIMIT (default: 100): default number of changes or references returned
- OASREWRITE_MAX_LIMIT (default: 1000): upper bound for limit
- OASREWRITE_MAX_INLINE_SIZE (default: 10485760): maximum inline content size in bytes

Documents are loaded fresh for every call; nothing is cached between calls.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasrewrite", Version: oasrewrite.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite",
		Description: "Rewrite an OpenAPI document for client code generation. Passes, in order: duplicate-schema (remove urlEncodedBase64 and inline its references as type string / format byte), schema-names (strip ^[vV]1[A-Z] prefixes from components.schemas and definitions), operation-ids (same for operationId, links follow), references (rewrite $ref pointers to the new names), additional-properties (drop object-valued additionalProperties, keep booleans). Use dry_run=true to list changes only. Use output to write to a file or include_document=true to return the document inline.",
	}, handleRewrite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_refs",
		Description: "Check an OpenAPI document for $ref pointers into components.schemas or definitions whose target entry does not exist. Set names=true to also list schema names and operationIds still carrying a v1/V1 version prefix. Read-only.",
	}, handleCheckRefs)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ChangeLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ChangeLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths so they are not leaked to
// MCP clients in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
