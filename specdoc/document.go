package specdoc

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/internal/pathutil"
)

// DefaultMaxSize is the largest document Load and LoadReader accept.
const DefaultMaxSize = 256 << 20

// Document is an OpenAPI document held as an ordered node tree.
//
// Mapping key order, comments and scalar styles from the source are kept, so a
// rewritten document diffs cleanly against its input. The Document is mutated
// in place by the rewriter and is not safe for concurrent use.
type Document struct {
	// SourcePath is the file the document was loaded from ("" for readers and bytes).
	SourcePath string
	// SourceFormat is the detected input format.
	SourceFormat SourceFormat

	node *yaml.Node // DocumentNode wrapping the root mapping
}

// New wraps an existing root mapping node.
func New(root *yaml.Node) (*Document, error) {
	root = Resolve(root)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{Message: fmt.Sprintf("document root must be an object, got %s", KindName(root))}
	}
	return &Document{
		SourceFormat: SourceFormatJSON,
		node:         &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}},
	}, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to open document", Cause: err}
	}
	defer func() { _ = f.Close() }()

	data, err := readLimited(f)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read document", Cause: err}
	}
	return LoadBytes(data, path)
}

// LoadReader reads and decodes a document from r.
func LoadReader(r io.Reader) (*Document, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "<reader>", Message: "failed to read document", Cause: err}
	}
	return LoadBytes(data, "")
}

// LoadBytes decodes a JSON or YAML document. sourcePath is only used for
// format detection and error messages and may be empty.
func LoadBytes(data []byte, sourcePath string) (*Document, error) {
	format := detectFormatFromPath(sourcePath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	if format == SourceFormatUnknown {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "failed to decode document", Cause: err}
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}
	root := Resolve(node.Content[0])
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    node.Content[0].Line,
			Column:  node.Content[0].Column,
			Message: fmt.Sprintf("document root must be an object, got %s", KindName(node.Content[0])),
		}
	}
	if mergeKey := findMergeKey(root, make(map[*yaml.Node]bool)); mergeKey != nil {
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    mergeKey.Line,
			Column:  mergeKey.Column,
			Message: "YAML merge keys are not supported",
		}
	}

	return &Document{
		SourcePath:   sourcePath,
		SourceFormat: format,
		node:         &node,
	}, nil
}

// Root returns the top-level mapping.
func (d *Document) Root() *yaml.Node {
	return Resolve(d.node.Content[0])
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{
		SourcePath:   d.SourcePath,
		SourceFormat: d.SourceFormat,
		node:         Copy(d.node),
	}
}

// Version returns the "openapi" or "swagger" version string, if any.
func (d *Document) Version() string {
	if v, ok := StringValue(Get(d.Root(), "openapi")); ok {
		return v
	}
	if v, ok := StringValue(Get(d.Root(), "swagger")); ok {
		return v
	}
	return ""
}

// Registry is one schema registry of a document.
type Registry struct {
	// Path is the JSON Pointer of the registry (e.g., "/components/schemas").
	Path string
	// Prefix is the pointer namespace that locates entries (e.g., "#/components/schemas/").
	Prefix string
	// Node is the registry mapping.
	Node *yaml.Node
}

// Lookup reports whether the registry has an entry with the given (unescaped) name.
func (r Registry) Lookup(name string) *yaml.Node {
	return Get(r.Node, name)
}

// SchemaRegistries returns the schema registries present in the document:
// components.schemas and definitions, in that order. A registry (or the
// components object) that exists but is not an object is a StructureError.
func (d *Document) SchemaRegistries() ([]Registry, error) {
	root := d.Root()
	var registries []Registry

	components, ok := GetMapping(root, "components")
	if !ok {
		return nil, structureError(pathutil.Join("components"), Get(root, "components"), "components")
	}
	if components != nil {
		schemas, ok := GetMapping(components, "schemas")
		if !ok {
			return nil, structureError(pathutil.Join("components", "schemas"), Get(components, "schemas"), "schema registry")
		}
		if schemas != nil {
			registries = append(registries, Registry{
				Path:   pathutil.Join("components", "schemas"),
				Prefix: pathutil.RefPrefixSchemas,
				Node:   schemas,
			})
		}
	}

	definitions, ok := GetMapping(root, "definitions")
	if !ok {
		return nil, structureError(pathutil.Join("definitions"), Get(root, "definitions"), "schema registry")
	}
	if definitions != nil {
		registries = append(registries, Registry{
			Path:   pathutil.Join("definitions"),
			Prefix: pathutil.RefPrefixDefinitions,
			Node:   definitions,
		})
	}

	return registries, nil
}

// RegistryFor returns the registry addressed by a pointer namespace.
func (d *Document) RegistryFor(prefix string) (Registry, bool, error) {
	registries, err := d.SchemaRegistries()
	if err != nil {
		return Registry{}, false, err
	}
	for _, r := range registries {
		if r.Prefix == prefix {
			return r, true, nil
		}
	}
	return Registry{}, false, nil
}

func structureError(path string, n *yaml.Node, what string) error {
	return &oaserrors.StructureError{
		Path:     path,
		Expected: "object",
		Actual:   KindName(n),
		Message:  what,
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, DefaultMaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > DefaultMaxSize {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        DefaultMaxSize,
			Message:      "document too large",
		}
	}
	return data, nil
}

// findMergeKey returns the first "<<" merge key in the tree, or nil.
func findMergeKey(n *yaml.Node, seen map[*yaml.Node]bool) *yaml.Node {
	n = Resolve(n)
	if n == nil || seen[n] {
		return nil
	}
	seen[n] = true
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].ShortTag() == TagMerge {
				return n.Content[i]
			}
		}
	}
	for _, child := range n.Content {
		if k := findMergeKey(child, seen); k != nil {
			return k
		}
	}
	return nil
}
