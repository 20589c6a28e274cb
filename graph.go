package rolescalc

import "github.com/jcoreio/roles-calc/pkg/roleset"

// inheritanceGraph stores declared inheritance edges keyed by base role,
// so the closure calculator can look up direct specializers cheaply.
// Edges are never removed.
type inheritanceGraph struct {
	specializers map[string]roleset.Set
}

func newInheritanceGraph() *inheritanceGraph {
	return &inheritanceGraph{specializers: make(map[string]roleset.Set)}
}

// declareEdge records that specialized extends base and reports whether
// the edge was new. Re-declaring an existing edge is a no-op.
func (g *inheritanceGraph) declareEdge(base, specialized string) bool {
	set, ok := g.specializers[base]
	if !ok {
		set = roleset.NewSet()
		g.specializers[base] = set
	}
	if set.Has(specialized) {
		return false
	}
	set.Add(specialized)
	return true
}

// directSpecializers returns the roles declared to extend base directly.
// The result may be nil when base has no specializers; callers only range
// over it.
func (g *inheritanceGraph) directSpecializers(base string) roleset.Set {
	return g.specializers[base]
}

// roles returns every role appearing in a declared edge, sorted.
func (g *inheritanceGraph) roles() []string {
	all := roleset.NewSet()
	for base, specs := range g.specializers {
		all.Add(base)
		for spec := range specs {
			all.Add(spec)
		}
	}
	return all.Values()
}

// edgeCount returns the number of declared edges.
func (g *inheritanceGraph) edgeCount() int {
	n := 0
	for _, specs := range g.specializers {
		n += len(specs)
	}
	return n
}
