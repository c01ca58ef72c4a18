// Package oaserrors provides structured error types for the oasrewrite library.
//
// Import path: github.com/erraggy/oasrewrite/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a malformed input apart from a document whose shape
// the rewriter cannot traverse, or from a configuration mistake.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures and a non-mapping document root
//   - [StructureError]: a registry, operation table or path item with the wrong node kind
//   - [ReferenceError]: dangling registry pointers and alias cycles
//   - [ResourceLimitError]: nesting depth exhaustion
//   - [CollisionError]: two schema names normalizing to the same name (strict mode)
//   - [ConfigError]: invalid options or input selection
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrStructure]: Matches any [StructureError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrDanglingReference]: Matches [ReferenceError] with IsDangling=true
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrCollision]: Matches any [CollisionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := rewriter.RewriteWithOptions(rewriter.WithFilePath("api.json"))
//	if errors.Is(err, oaserrors.ErrStructure) {
//	    // The document cannot be rewritten; do not hand it to the generator.
//	}
//
//	var collErr *oaserrors.CollisionError
//	if errors.As(err, &collErr) {
//	    fmt.Printf("%s would be produced by %v\n", collErr.Name, collErr.Sources)
//	}
//
// A rewrite error means the document may already be partially mutated.
package oaserrors
