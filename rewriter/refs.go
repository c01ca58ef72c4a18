package rewriter

import (
	"fmt"

	"github.com/erraggy/oasrewrite/internal/naming"
	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/specdoc"
)

// reconcileReferences rewrites every local registry pointer so that the entry
// name it addresses is normalized the same way the registries were. The
// namespace and any trailing segments are kept.
func (r *run) reconcileReferences() error {
	return nodewalk.Walk(r.doc.Root(), func(v *nodewalk.Visit) nodewalk.Action {
		if v.InNameMap {
			return nodewalk.Continue
		}
		refNode := specdoc.Resolve(specdoc.Get(v.Node, "$ref"))
		ref, ok := specdoc.StringValue(refNode)
		if !ok {
			return nodewalk.Continue
		}
		parsed, ok := pathutil.ParseRef(ref)
		if !ok {
			return nodewalk.Continue
		}
		name, changed := naming.Normalize(parsed.Name)
		if !changed {
			return nodewalk.Continue
		}
		parsed.Name = name
		refNode.Value = parsed.String()
		r.record(PassReferences, Change{
			Type:        ChangeTypeReconciledRef,
			Path:        v.PathTo("$ref"),
			Description: fmt.Sprintf("rewrote reference %s to %s", ref, refNode.Value),
			Before:      ref,
			After:       refNode.Value,
		})
		return nodewalk.Continue
	}, r.rw.walkOptions()...)
}
