package specdoc

import (
	"iter"

	"go.yaml.in/yaml/v4"
)

// Scalar tags the rewriter distinguishes.
const (
	TagString = "!!str"
	TagBool   = "!!bool"
	TagInt    = "!!int"
	TagFloat  = "!!float"
	TagNull   = "!!null"
	TagMerge  = "!!merge"
)

// maxAliasChain bounds alias-to-alias resolution.
const maxAliasChain = 64

// Resolve follows alias nodes to the node they refer to.
// It returns nil for a nil node or an alias chain that never ends.
func Resolve(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode; i++ {
		if i == maxAliasChain {
			return nil
		}
		n = n.Alias
	}
	return n
}

// KindName describes a node as a JSON-like value type for diagnostics:
// "object", "array", "string", "number", "boolean", "null" or "document".
func KindName(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil {
		return "missing"
	}
	switch n.Kind {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "array"
	case yaml.DocumentNode:
		return "document"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case TagBool:
			return "boolean"
		case TagInt, TagFloat:
			return "number"
		case TagNull:
			return "null"
		default:
			return "string"
		}
	}
	return "unknown"
}

// IsMapping reports whether n (after alias resolution) is an object.
func IsMapping(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// IsBool reports whether n (after alias resolution) is a boolean scalar.
func IsBool(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == TagBool
}

// StringValue returns the value of a string scalar.
func StringValue(n *yaml.Node) (string, bool) {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() != TagString {
		return "", false
	}
	return n.Value, true
}

// NewString creates a string scalar node.
func NewString(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: TagString, Value: value}
}

// NewMapping creates an empty mapping node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// Index returns the position of key's key node inside m.Content, or -1.
func Index(m *yaml.Node, key string) int {
	if m == nil || m.Kind != yaml.MappingNode {
		return -1
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key, or nil. Aliases are not resolved.
func Get(m *yaml.Node, key string) *yaml.Node {
	i := Index(m, key)
	if i < 0 {
		return nil
	}
	return m.Content[i+1]
}

// GetMapping returns the resolved mapping stored under key, or nil when the
// key is absent. The second result is false when the key is present but the
// value is not a mapping.
func GetMapping(m *yaml.Node, key string) (*yaml.Node, bool) {
	v := Get(m, key)
	if v == nil {
		return nil, true
	}
	v = Resolve(v)
	if v == nil || v.Kind != yaml.MappingNode {
		return nil, false
	}
	return v, true
}

// Set stores value under key, replacing the existing value in place or
// appending a new entry at the end.
func Set(m *yaml.Node, key string, value *yaml.Node) {
	if i := Index(m, key); i >= 0 {
		m.Content[i+1] = value
		return
	}
	m.Content = append(m.Content, NewString(key), value)
}

// Delete removes key from m and reports whether it was present.
func Delete(m *yaml.Node, key string) bool {
	i := Index(m, key)
	if i < 0 {
		return false
	}
	m.Content = append(m.Content[:i], m.Content[i+2:]...)
	return true
}

// Len returns the number of entries in a mapping.
func Len(m *yaml.Node) int {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return 0
	}
	return len(m.Content) / 2
}

// All iterates over the key/value pairs of a mapping in document order.
// The mapping must not be modified during iteration.
func All(m *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		m = Resolve(m)
		if m == nil || m.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(m.Content); i += 2 {
			if !yield(m.Content[i].Value, m.Content[i+1]) {
				return
			}
		}
	}
}

// Keys returns the keys of a mapping in document order.
func Keys(m *yaml.Node) []string {
	keys := make([]string, 0, Len(m))
	for k := range All(m) {
		keys = append(keys, k)
	}
	return keys
}

// Copy deep-copies a node tree. Shared anchors stay shared in the copy.
func Copy(n *yaml.Node) *yaml.Node {
	return copyNode(n, make(map[*yaml.Node]*yaml.Node))
}

func copyNode(n *yaml.Node, seen map[*yaml.Node]*yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if cp, ok := seen[n]; ok {
		return cp
	}
	cp := &yaml.Node{}
	*cp = *n
	seen[n] = cp
	if n.Alias != nil {
		cp.Alias = copyNode(n.Alias, seen)
	}
	if n.Content != nil {
		cp.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			cp.Content[i] = copyNode(child, seen)
		}
	}
	return cp
}
