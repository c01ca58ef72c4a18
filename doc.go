// Package oasrewrite rewrites machine-generated OpenAPI documents so that a
// client code generator can consume them.
//
// Generators such as the Kubernetes OpenAPI builder emit names carrying an API
// version prefix (v1Cluster, v1GetCluster), a duplicate byte-string schema
// named urlEncodedBase64, and schema-valued additionalProperties that many
// client generators turn into unusable map types. oasrewrite removes all three
// in one pass over the document and keeps every $ref pointing at an entry
// that exists.
//
// # Packages
//
//   - rewriter: the rewrite pipeline, its options and the reference checks
//   - specdoc: loading, inspecting and encoding documents with key order kept
//   - oaserrors: typed errors matchable with errors.Is and errors.As
//
// # Quick Start
//
//	result, err := rewriter.RewriteWithOptions(
//		rewriter.WithFilePath("openapi.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := result.Document.Marshal(result.SourceFormat)
//
// # Command Line
//
// The oasrewrite command wraps the same pipeline:
//
//	oasrewrite rewrite -o clean.json openapi.json
//	oasrewrite check --names openapi.json
//	oasrewrite mcp
//
// Input is JSON or YAML, read from a file or stdin ("-"); output keeps the
// input format unless --format says otherwise.
package oasrewrite
