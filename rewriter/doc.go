// Package rewriter cleans up machine-generated OpenAPI documents before they
// are handed to a client code generator.
//
// The rewrite is a fixed pipeline of passes over one in-memory document:
//
//  1. Duplicate schema: the urlEncodedBase64 schema is deleted from the
//     schema registries and every pointer to it becomes an inline
//     {type: string, format: byte} schema.
//  2. Schema names: names matching ^[vV]1[A-Z] lose the prefix
//     ("v1Cluster" becomes "Cluster") in components.schemas and definitions.
//  3. Operation identifiers: the same normalization is applied to the
//     operationId of every operation, and links naming a renamed operation
//     follow it.
//  4. References: pointers such as "#/components/schemas/v1Cluster" are
//     rewritten to the normalized names so that none of them dangle.
//  5. additionalProperties: object-valued additionalProperties are removed;
//     boolean values are kept.
//
// Every pass is idempotent, so rewriting an already rewritten document
// changes nothing.
//
// # Quick Start
//
//	result, err := rewriter.RewriteWithOptions(
//		rewriter.WithFilePath("openapi.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Applied %d changes\n", result.ChangeCount)
//	out, err := result.Document.Marshal(result.SourceFormat)
//
// Or use a reusable Rewriter instance:
//
//	rw := rewriter.New()
//	rw.StrictCollisions = true
//	rw.Logger = rewriter.NewSlogAdapter(slog.Default())
//	result, err := rw.Rewrite(doc)
//
// # Collisions
//
// When two registry entries normalize to the same name ("v1Pod" and "Pod"),
// the first keeps its position and the last one's value wins. Each collision
// is reported in Result.Collisions and logged as a warning. With
// WithStrictCollisions the rewrite fails with an oaserrors.CollisionError
// before the registry is touched.
//
// # Mutation
//
// Rewrite mutates the document it is given unless WithCopy (or
// Rewriter.CopyInput) is set. A failed pass leaves the passes that already
// ran applied; callers that need the original should use WithCopy.
//
// # Checks
//
// CheckReferences lists registry pointers with no matching entry and
// CheckNames lists names still carrying a version prefix. Both are read-only.
package rewriter
