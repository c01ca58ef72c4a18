package rewriter

import (
	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/specdoc"
)

const additionalProperties = "additionalProperties"

// pruneAdditionalProperties removes additionalProperties wherever its value is
// a schema object, including the empty schema. Boolean values are kept. Inside
// a properties map the key names a property and is left alone.
func (r *run) pruneAdditionalProperties() error {
	return nodewalk.Walk(r.doc.Root(), func(v *nodewalk.Visit) nodewalk.Action {
		if v.InNameMap {
			return nodewalk.Continue
		}
		value := specdoc.Get(v.Node, additionalProperties)
		if !specdoc.IsMapping(value) {
			return nodewalk.Continue
		}
		path := v.PathTo(additionalProperties)
		specdoc.Delete(v.Node, additionalProperties)
		r.record(PassAdditionalProperties, Change{
			Type:        ChangeTypePrunedAdditionalProperties,
			Path:        path,
			Description: "removed schema-valued additionalProperties",
			Before:      "object",
		})
		return nodewalk.Continue
	}, r.rw.walkOptions()...)
}
