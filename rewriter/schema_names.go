package rewriter

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/internal/naming"
	"github.com/erraggy/oasrewrite/specdoc"
)

// renamePlan is the set of renames for one registry, computed before the
// registry is touched.
type renamePlan struct {
	reg        specdoc.Registry
	renames    [][2]string
	collisions []Collision
}

// planRenames computes the renames of a registry and the normalized names
// that more than one entry maps to.
func planRenames(reg specdoc.Registry) renamePlan {
	plan := renamePlan{reg: reg}
	sources := make(map[string][]string)
	var order []string
	for name := range specdoc.All(reg.Node) {
		target := naming.StripVersionPrefix(name)
		if target != name {
			plan.renames = append(plan.renames, [2]string{name, target})
		}
		if _, seen := sources[target]; !seen {
			order = append(order, target)
		}
		sources[target] = append(sources[target], name)
	}
	for _, target := range order {
		if len(sources[target]) > 1 {
			plan.collisions = append(plan.collisions, Collision{
				Registry: reg.Path,
				Name:     target,
				Sources:  sources[target],
			})
		}
	}
	return plan
}

// normalizeSchemaNames strips the version prefix from every schema registry
// name. Colliding names keep the position of the first entry and the value of
// the last. In strict mode any collision fails the pass before a registry is
// modified.
func (r *run) normalizeSchemaNames() error {
	registries, err := r.doc.SchemaRegistries()
	if err != nil {
		return err
	}

	plans := make([]renamePlan, 0, len(registries))
	for _, reg := range registries {
		plan := planRenames(reg)
		if r.rw.StrictCollisions && len(plan.collisions) > 0 {
			return plan.collisions[0].asError()
		}
		plans = append(plans, plan)
	}

	for _, plan := range plans {
		for _, c := range plan.collisions {
			r.result.Collisions = append(r.result.Collisions, c)
			r.log.Warn("schema name collision, last entry wins",
				"registry", c.Registry, "name", c.Name, "sources", c.Sources)
		}
		if len(plan.renames) == 0 {
			continue
		}
		rebuildRegistry(plan.reg.Node)
		for _, rn := range plan.renames {
			r.record(PassSchemaNames, Change{
				Type:        ChangeTypeRenamedSchema,
				Path:        entryPath(plan.reg, rn[0]),
				Description: fmt.Sprintf("renamed schema %q to %q", rn[0], rn[1]),
				Before:      rn[0],
				After:       rn[1],
			})
		}
	}
	return nil
}

// rebuildRegistry renames the keys of m in place. When two entries end up
// with the same name, the first keeps its position and takes the value of the
// later one.
func rebuildRegistry(m *yaml.Node) {
	content := make([]*yaml.Node, 0, len(m.Content))
	pos := make(map[string]int, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		key.Value = naming.StripVersionPrefix(key.Value)
		if j, ok := pos[key.Value]; ok {
			content[j+1] = value
			continue
		}
		pos[key.Value] = len(content)
		content = append(content, key, value)
	}
	m.Content = content
}
