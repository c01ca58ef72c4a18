package rewriter

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/specdoc"
)

// removeDuplicateSchema deletes the duplicate schema from every registry and
// replaces each pointer to it with an inline byte string schema. Pointers are
// inlined even when the registry entry was already missing.
func (r *run) removeDuplicateSchema() error {
	name := r.rw.duplicateSchema()

	registries, err := r.doc.SchemaRegistries()
	if err != nil {
		return err
	}
	for _, reg := range registries {
		before := reg.Lookup(name)
		if !specdoc.Delete(reg.Node, name) {
			continue
		}
		r.record(PassDuplicateSchema, Change{
			Type:        ChangeTypeRemovedDuplicateSchema,
			Path:        entryPath(reg, name),
			Description: fmt.Sprintf("removed duplicate schema %q", name),
			Before:      specdoc.KindName(before),
		})
	}

	targets := []string{
		pathutil.SchemaRef(pathutil.EscapeToken(name)),
		pathutil.DefinitionRef(pathutil.EscapeToken(name)),
	}
	return nodewalk.Walk(r.doc.Root(), func(v *nodewalk.Visit) nodewalk.Action {
		if v.InNameMap {
			return nodewalk.Continue
		}
		ref, ok := specdoc.StringValue(specdoc.Get(v.Node, "$ref"))
		if !ok || !slices.Contains(targets, ref) {
			return nodewalk.Continue
		}
		inlineByteString(v.Node)
		r.record(PassDuplicateSchema, Change{
			Type:        ChangeTypeInlinedDuplicateRef,
			Path:        v.Path(),
			Description: fmt.Sprintf("inlined %s as a byte string", ref),
			Before:      ref,
			After:       "type: string, format: byte",
		})
		return nodewalk.Continue
	}, r.rw.walkOptions()...)
}

// inlineByteString replaces the $ref entry of m with type/format entries at
// the same position. Existing type or format entries are overwritten where
// they stand.
func inlineByteString(m *yaml.Node) {
	var added []*yaml.Node
	for _, kv := range [][2]string{{"type", "string"}, {"format", "byte"}} {
		if specdoc.Index(m, kv[0]) >= 0 {
			specdoc.Set(m, kv[0], specdoc.NewString(kv[1]))
			continue
		}
		added = append(added, specdoc.NewString(kv[0]), specdoc.NewString(kv[1]))
	}
	i := specdoc.Index(m, "$ref")
	m.Content = slices.Replace(m.Content, i, i+2, added...)
}

// entryPath returns the JSON Pointer of a registry entry.
func entryPath(reg specdoc.Registry, name string) string {
	return reg.Path + "/" + pathutil.EscapeToken(name)
}
