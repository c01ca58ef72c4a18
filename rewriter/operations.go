package rewriter

import (
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/specdoc"
)

// operationTables are the mappings of name to path item that hold operations.
var operationTables = [][]string{
	{"paths"},
	{"webhooks"},
	{"components", "pathItems"},
}

// operationVisitor receives an operation and the unescaped path segments
// leading to it.
type operationVisitor func(op *yaml.Node, segments []string)

// operationScanner finds every operation once, following operation level
// callbacks. Objects shared through aliases are visited the first time only.
type operationScanner struct {
	visit operationVisitor
	seen  map[*yaml.Node]bool
}

// eachOperation calls visit for every operation in the document's operation
// tables, components.callbacks and the callbacks declared on operations.
// A table or path item that is not an object is a StructureError.
func eachOperation(root *yaml.Node, visit operationVisitor) error {
	s := &operationScanner{visit: visit, seen: make(map[*yaml.Node]bool)}

	for _, table := range operationTables {
		m, err := lookupObject(root, table...)
		if err != nil {
			return err
		}
		for key, item := range specdoc.All(m) {
			if isExtension(key) {
				continue
			}
			segments := slices.Concat(table, []string{key})
			if !specdoc.IsMapping(item) {
				return &oaserrors.StructureError{
					Path:     pathutil.Join(segments...),
					Expected: "object",
					Actual:   specdoc.KindName(item),
					Message:  "path item",
				}
			}
			s.pathItem(specdoc.Resolve(item), segments)
		}
	}

	callbacks, err := lookupObject(root, "components", "callbacks")
	if err != nil {
		return err
	}
	for name, cb := range specdoc.All(callbacks) {
		s.callback(cb, []string{"components", "callbacks", name})
	}
	return nil
}

func (s *operationScanner) pathItem(item *yaml.Node, segments []string) {
	if s.seen[item] {
		return
	}
	s.seen[item] = true

	for method, op := range specdoc.All(item) {
		if !specdoc.IsHTTPMethod(method) {
			continue
		}
		op = specdoc.Resolve(op)
		if !specdoc.IsMapping(op) || s.seen[op] {
			continue
		}
		s.seen[op] = true
		opSegments := slices.Concat(segments, []string{method})
		s.visit(op, opSegments)

		callbacks, ok := specdoc.GetMapping(op, "callbacks")
		if !ok {
			continue
		}
		for name, cb := range specdoc.All(callbacks) {
			s.callback(cb, slices.Concat(opSegments, []string{"callbacks", name}))
		}
	}
}

// callback walks a callback object: runtime expressions mapped to path items.
// Entries that are not objects (such as a $ref) are skipped.
func (s *operationScanner) callback(cb *yaml.Node, segments []string) {
	for expr, item := range specdoc.All(cb) {
		if !specdoc.IsMapping(item) {
			continue
		}
		s.pathItem(specdoc.Resolve(item), slices.Concat(segments, []string{expr}))
	}
}

// lookupObject follows keys from m and returns the object found, or nil when
// a key is absent. A value on the way that is not an object is a StructureError.
func lookupObject(m *yaml.Node, keys ...string) (*yaml.Node, error) {
	for i, key := range keys {
		next, ok := specdoc.GetMapping(m, key)
		if !ok {
			return nil, &oaserrors.StructureError{
				Path:     pathutil.Join(keys[:i+1]...),
				Expected: "object",
				Actual:   specdoc.KindName(specdoc.Get(m, key)),
				Message:  "operation table",
			}
		}
		if next == nil {
			return nil, nil
		}
		m = next
	}
	return m, nil
}

func isExtension(key string) bool {
	return strings.HasPrefix(key, "x-")
}
