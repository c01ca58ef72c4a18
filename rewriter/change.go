package rewriter

import (
	"fmt"
	"slices"

	"github.com/erraggy/oasrewrite/oaserrors"
)

// PassType identifies one pass of the rewrite pipeline.
type PassType string

const (
	// PassDuplicateSchema removes the duplicate schema and inlines its references.
	PassDuplicateSchema PassType = "duplicate-schema"
	// PassSchemaNames strips version prefixes from schema registry names.
	PassSchemaNames PassType = "schema-names"
	// PassOperationIDs strips version prefixes from operation identifiers.
	PassOperationIDs PassType = "operation-ids"
	// PassReferences rewrites registry pointers to the normalized names.
	PassReferences PassType = "references"
	// PassAdditionalProperties drops object-valued additionalProperties.
	PassAdditionalProperties PassType = "additional-properties"
)

// AllPasses lists every pass in pipeline order.
var AllPasses = []PassType{
	PassDuplicateSchema,
	PassSchemaNames,
	PassOperationIDs,
	PassReferences,
	PassAdditionalProperties,
}

// ParsePassType converts a pass name.
func ParsePassType(s string) (PassType, error) {
	p := PassType(s)
	if !slices.Contains(AllPasses, p) {
		return "", &oaserrors.ConfigError{
			Option:  "passes",
			Value:   s,
			Message: fmt.Sprintf("unknown pass (valid: %v)", AllPasses),
		}
	}
	return p, nil
}

// ChangeType identifies the kind of mutation a Change records.
type ChangeType string

const (
	// ChangeTypeRemovedDuplicateSchema indicates the duplicate schema entry was deleted
	ChangeTypeRemovedDuplicateSchema ChangeType = "removed-duplicate-schema"
	// ChangeTypeInlinedDuplicateRef indicates a pointer to the duplicate schema was inlined
	ChangeTypeInlinedDuplicateRef ChangeType = "inlined-duplicate-ref"
	// ChangeTypeRenamedSchema indicates a registry entry was renamed
	ChangeTypeRenamedSchema ChangeType = "renamed-schema"
	// ChangeTypeRenamedOperationID indicates an operationId was renamed
	ChangeTypeRenamedOperationID ChangeType = "renamed-operation-id"
	// ChangeTypeRelinkedOperationID indicates a link was pointed at a renamed operationId
	ChangeTypeRelinkedOperationID ChangeType = "relinked-operation-id"
	// ChangeTypeReconciledRef indicates a pointer was rewritten to a normalized name
	ChangeTypeReconciledRef ChangeType = "reconciled-ref"
	// ChangeTypePrunedAdditionalProperties indicates an object-valued additionalProperties was removed
	ChangeTypePrunedAdditionalProperties ChangeType = "pruned-additional-properties"
)

// Change represents a single mutation applied to the document.
type Change struct {
	// Pass is the pass that made the change
	Pass PassType
	// Type identifies the kind of change
	Type ChangeType
	// Path is the JSON Pointer of the changed location (e.g., "/components/schemas/v1Cluster")
	Path string
	// Description is a human-readable description of the change
	Description string
	// Before is the state before the change (nil if nothing was there)
	Before any
	// After is the state after the change (nil if removed)
	After any
}

// Collision records several registry entries normalizing to one name.
type Collision struct {
	// Registry is the JSON Pointer of the registry
	Registry string
	// Name is the normalized name
	Name string
	// Sources are the original names in document order; the last one wins.
	Sources []string
}

func (c Collision) asError() *oaserrors.CollisionError {
	return &oaserrors.CollisionError{Registry: c.Registry, Name: c.Name, Sources: c.Sources}
}
