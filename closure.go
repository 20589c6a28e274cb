package rolescalc

import (
	"log/slog"

	"github.com/jcoreio/roles-calc/pkg/roleset"
)

// InheritanceDepthLimit caps the number of productive generations a single
// closure computation may run before failing with DepthLimitError.
const InheritanceDepthLimit = 20

// closureFor returns the set of roles whose holders satisfy a requirement
// of role, not counting role itself. Results are memoized until the next
// new edge declaration.
func (c *Calc) closureFor(role string) (roleset.Set, error) {
	if closure, ok := c.cache.get(role); ok {
		return closure, nil
	}

	closure, generations, err := c.computeClosure(role)
	if err != nil {
		return nil, err
	}
	c.cache.put(role, closure)

	c.logger.Debug("closure computed",
		slog.String("role", role),
		slog.Int("size", len(closure)),
		slog.Int("generations", generations))
	return closure, nil
}

// computeClosure runs the breadth-first fixed-point expansion for role.
// Each generation grows the result set from the previous generation's
// frontier using three candidate sources: the built-in generalization
// rules, the declared direct specializers, and the cross-inference rule
// (when the query is compound with action A, a plain role extending a
// plain closure member contributes its own compound form with action A).
// The expansion stops at the first unproductive generation; exceeding
// InheritanceDepthLimit productive generations is a hard failure.
func (c *Calc) computeClosure(role string) (roleset.Set, int, error) {
	result := roleset.NewSet(role)
	for member := range c.alwaysAllow {
		result.Add(member)
	}

	_, queryAction, queryCompound := c.resolver.decompose(role)

	frontier := result.Values()
	generations := 0
	for len(frontier) > 0 {
		var next []string
		add := func(candidate string) {
			if !result.Has(candidate) {
				result.Add(candidate)
				next = append(next, candidate)
			}
		}

		for _, r := range frontier {
			for _, g := range c.resolver.generalize(r) {
				add(g)
			}
			crossInfer := queryCompound && !c.resolver.isCompound(r)
			for p := range c.graph.directSpecializers(r) {
				add(p)
				if crossInfer && !c.resolver.isCompound(p) {
					add(c.resolver.compound(p, queryAction))
				}
			}
		}

		if len(next) == 0 {
			break
		}
		generations++
		if generations > InheritanceDepthLimit {
			return nil, 0, &DepthLimitError{Role: role}
		}
		frontier = next
	}

	// The evaluator handles exact matches itself; always-allow members
	// stay in regardless of which role is being closed.
	delete(result, role)
	return result, generations, nil
}
