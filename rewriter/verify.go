package rewriter

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/internal/naming"
	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/specdoc"
)

// DanglingRef is a local registry pointer whose target entry does not exist.
type DanglingRef struct {
	// Ref is the pointer as written
	Ref string
	// Path is the JSON Pointer of the $ref entry
	Path string
	// Registry is the JSON Pointer of the registry the pointer addresses
	Registry string
}

// AsError returns a ReferenceError describing the dangling pointer.
func (d DanglingRef) AsError() error {
	return &oaserrors.ReferenceError{
		Ref:        d.Ref,
		Path:       d.Path,
		IsDangling: true,
		Message:    fmt.Sprintf("no such entry in %s", d.Registry),
	}
}

// CheckReferences lists every local registry pointer in doc whose entry is
// missing from its registry, in document order. Pointers into other
// documents and into sections other than the schema registries are not
// checked.
func CheckReferences(doc *specdoc.Document) ([]DanglingRef, error) {
	registries, err := doc.SchemaRegistries()
	if err != nil {
		return nil, err
	}
	byPrefix := make(map[string]specdoc.Registry, len(registries))
	for _, reg := range registries {
		byPrefix[reg.Prefix] = reg
	}

	var dangling []DanglingRef
	err = nodewalk.Walk(doc.Root(), func(v *nodewalk.Visit) nodewalk.Action {
		if v.InNameMap {
			return nodewalk.Continue
		}
		ref, ok := specdoc.StringValue(specdoc.Get(v.Node, "$ref"))
		if !ok {
			return nodewalk.Continue
		}
		parsed, ok := pathutil.ParseRef(ref)
		if !ok {
			return nodewalk.Continue
		}
		reg, found := byPrefix[parsed.Prefix]
		if found && reg.Lookup(parsed.EntryName()) != nil {
			return nodewalk.Continue
		}
		dangling = append(dangling, DanglingRef{
			Ref:      ref,
			Path:     v.PathTo("$ref"),
			Registry: registryPath(parsed.Prefix),
		})
		return nodewalk.Continue
	})
	if err != nil {
		return nil, err
	}
	return dangling, nil
}

// CheckNames lists the JSON Pointers of schema names and operation
// identifiers that still carry a version prefix. Schema entries come first,
// then operations, each in document order.
func CheckNames(doc *specdoc.Document) ([]string, error) {
	registries, err := doc.SchemaRegistries()
	if err != nil {
		return nil, err
	}

	var found []string
	for _, reg := range registries {
		for name := range specdoc.All(reg.Node) {
			if naming.HasVersionPrefix(name) {
				found = append(found, entryPath(reg, name))
			}
		}
	}

	var ops []string
	err = eachOperation(doc.Root(), func(op *yaml.Node, segments []string) {
		if id, ok := specdoc.StringValue(specdoc.Get(op, "operationId")); ok && naming.HasVersionPrefix(id) {
			ops = append(ops, pathutil.Join(append(segments, "operationId")...))
		}
	})
	if err != nil {
		return nil, err
	}
	return append(found, ops...), nil
}

func registryPath(prefix string) string {
	return prefix[1 : len(prefix)-1]
}
