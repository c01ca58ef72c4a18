package rewriter

import (
	"fmt"

	"github.com/erraggy/oasrewrite/specdoc"
)

// run carries the state of one Rewrite call.
type run struct {
	rw     *Rewriter
	doc    *specdoc.Document
	result *Result
	log    Logger
}

// pass is one step of the pipeline.
type pass struct {
	typ   PassType
	apply func(*run) error
}

// pipeline lists the passes in the order they must run. Schema names are
// normalized before references so that the pointers and the registry keys
// agree; the duplicate schema is removed first so its pointers are inlined
// instead of reconciled.
var pipeline = []pass{
	{PassDuplicateSchema, (*run).removeDuplicateSchema},
	{PassSchemaNames, (*run).normalizeSchemaNames},
	{PassOperationIDs, (*run).normalizeOperationIDs},
	{PassReferences, (*run).reconcileReferences},
	{PassAdditionalProperties, (*run).pruneAdditionalProperties},
}

// apply runs the enabled passes in pipeline order.
func (r *run) apply() error {
	for _, p := range pipeline {
		if !r.rw.isPassEnabled(p.typ) {
			continue
		}
		before := len(r.result.Changes)
		if err := p.apply(r); err != nil {
			return fmt.Errorf("rewriter: %s: %w", p.typ, err)
		}
		n := len(r.result.Changes) - before
		r.result.PassCounts[p.typ] = n
		if n > 0 {
			r.log.Info("pass applied", "pass", p.typ, "changes", n)
		} else {
			r.log.Debug("pass made no changes", "pass", p.typ)
		}
	}
	return nil
}

// record appends a change to the result.
func (r *run) record(pass PassType, c Change) {
	c.Pass = pass
	r.result.Changes = append(r.result.Changes, c)
	r.log.Debug(c.Description, "type", c.Type, "path", c.Path)
}
