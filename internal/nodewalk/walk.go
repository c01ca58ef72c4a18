// Package nodewalk traverses an OpenAPI node tree and calls a visitor for
// every object it contains.
//
// Visitors may edit the entries of the object they are given; the walker
// descends into whatever children remain once the visitor returns. Aliases are
// followed, alias cycles are reported as circular reference errors, and the
// nesting depth is bounded.
package nodewalk

import (
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/specdoc"
)

// DefaultMaxDepth is the nesting depth at which Walk gives up.
const DefaultMaxDepth = 1000

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota
	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren
	// Stop stops the walk immediately.
	Stop
)

// nameMapKeys are keys whose object value maps user-chosen names to schemas.
// The entries of such an object are names, not schema keywords.
var nameMapKeys = []string{"properties", "patternProperties", "dependentSchemas", "$defs", "definitions", "schemas"}

// Visit describes the object being visited.
type Visit struct {
	// Node is the object (mapping) node. Aliases are already resolved.
	Node *yaml.Node
	// Key is the mapping key the object sits under; empty for the root and
	// for array items.
	Key string
	// InNameMap is true when the object's own keys are user-chosen names
	// (a properties map, a schema registry) rather than keywords.
	InNameMap bool
	// Depth is the number of path segments from the walk root.
	Depth int

	path *pathutil.PathBuilder
}

// Path returns the JSON Pointer of the object.
func (v *Visit) Path() string {
	return v.path.String()
}

// PathTo returns the JSON Pointer of one of the object's entries.
func (v *Visit) PathTo(key string) string {
	v.path.Push(key)
	defer v.path.Pop()
	return v.path.String()
}

// Visitor is called for every object in the tree, parents before children.
type Visitor func(v *Visit) Action

// Option configures a walk.
type Option func(*walker)

// WithMaxDepth sets the maximum nesting depth. Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(w *walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithBasePath sets the path segments of the walk root, for walks that
// start below the document root.
func WithBasePath(segments ...string) Option {
	return func(w *walker) {
		w.base = slices.Clone(segments)
	}
}

type walker struct {
	visit    Visitor
	maxDepth int
	base     []string
	path     *pathutil.PathBuilder
	active   map[*yaml.Node]bool
	stopped  bool
}

// Walk visits root and every object below it.
func Walk(root *yaml.Node, visit Visitor, opts ...Option) error {
	w := &walker{
		visit:    visit,
		maxDepth: DefaultMaxDepth,
		active:   make(map[*yaml.Node]bool),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.path = pathutil.Get()
	defer pathutil.Put(w.path)
	for _, seg := range w.base {
		w.path.Push(seg)
	}

	key := ""
	if len(w.base) > 0 {
		key = w.base[len(w.base)-1]
	}
	return w.walk(root, key, false)
}

func (w *walker) walk(n *yaml.Node, key string, parentIsNameMap bool) error {
	if w.stopped || n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode {
		target := specdoc.Resolve(n)
		if target == nil || w.active[target] {
			return &oaserrors.ReferenceError{
				Ref:        "*" + n.Value,
				Path:       w.path.String(),
				IsCircular: true,
				Message:    "alias refers to one of its own ancestors",
			}
		}
		n = target
	}
	if n.Kind != yaml.MappingNode && n.Kind != yaml.SequenceNode && n.Kind != yaml.DocumentNode {
		return nil
	}
	if w.path.Depth() > w.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(w.maxDepth),
			Actual:       int64(w.path.Depth()),
			Message:      "document nested too deeply at " + w.path.String(),
		}
	}

	w.active[n] = true
	defer delete(w.active, n)

	switch n.Kind {
	case yaml.DocumentNode:
		for _, child := range n.Content {
			if err := w.walk(child, key, parentIsNameMap); err != nil {
				return err
			}
		}

	case yaml.SequenceNode:
		for i, item := range n.Content {
			w.path.PushIndex(i)
			err := w.walk(item, "", false)
			w.path.Pop()
			if err != nil {
				return err
			}
		}

	case yaml.MappingNode:
		inNameMap := !parentIsNameMap && slices.Contains(nameMapKeys, key)
		action := w.visit(&Visit{
			Node:      n,
			Key:       key,
			InNameMap: inNameMap,
			Depth:     w.path.Depth(),
			path:      w.path,
		})
		switch action {
		case Stop:
			w.stopped = true
			return nil
		case SkipChildren:
			return nil
		}
		// Visitors may have edited n.Content; iterate what is left.
		for i := 0; i+1 < len(n.Content); i += 2 {
			childKey := n.Content[i].Value
			w.path.Push(childKey)
			err := w.walk(n.Content[i+1], childKey, inNameMap)
			w.path.Pop()
			if err != nil {
				return err
			}
			if w.stopped {
				return nil
			}
		}
	}
	return nil
}
