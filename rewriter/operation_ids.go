package rewriter

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/internal/naming"
	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/internal/pathutil"
	"github.com/erraggy/oasrewrite/specdoc"
)

// normalizeOperationIDs strips the version prefix from operation identifiers,
// then points links that named a renamed operation at its new identifier.
func (r *run) normalizeOperationIDs() error {
	renamed := make(map[string]string)
	err := eachOperation(r.doc.Root(), func(op *yaml.Node, segments []string) {
		idNode := specdoc.Resolve(specdoc.Get(op, "operationId"))
		id, ok := specdoc.StringValue(idNode)
		if !ok {
			return
		}
		newID, changed := naming.Normalize(id)
		if !changed {
			return
		}
		idNode.Value = newID
		renamed[id] = newID
		r.record(PassOperationIDs, Change{
			Type:        ChangeTypeRenamedOperationID,
			Path:        pathutil.Join(append(segments, "operationId")...),
			Description: fmt.Sprintf("renamed operationId %q to %q", id, newID),
			Before:      id,
			After:       newID,
		})
	})
	if err != nil {
		return err
	}
	if len(renamed) == 0 {
		return nil
	}
	return r.relinkOperationIDs(renamed)
}

// relinkOperationIDs updates link objects whose operationId was renamed.
func (r *run) relinkOperationIDs(renamed map[string]string) error {
	return nodewalk.Walk(r.doc.Root(), func(v *nodewalk.Visit) nodewalk.Action {
		if v.Key != "links" {
			return nodewalk.Continue
		}
		for name, link := range specdoc.All(v.Node) {
			link = specdoc.Resolve(link)
			if !specdoc.IsMapping(link) {
				continue
			}
			idNode := specdoc.Resolve(specdoc.Get(link, "operationId"))
			id, ok := specdoc.StringValue(idNode)
			if !ok {
				continue
			}
			newID, found := renamed[id]
			if !found {
				continue
			}
			idNode.Value = newID
			r.record(PassOperationIDs, Change{
				Type:        ChangeTypeRelinkedOperationID,
				Path:        v.PathTo(name) + "/operationId",
				Description: fmt.Sprintf("link %q now targets operationId %q", name, newID),
				Before:      id,
				After:       newID,
			})
		}
		return nodewalk.Continue
	}, r.rw.walkOptions()...)
}
