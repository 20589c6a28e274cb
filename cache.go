package rolescalc

import "github.com/jcoreio/roles-calc/pkg/roleset"

// closureCache memoizes computed closures keyed by the queried role.
// Entries are valid only while the graph is unchanged since they were
// computed.
type closureCache struct {
	entries map[string]roleset.Set
}

func newClosureCache() *closureCache {
	return &closureCache{entries: make(map[string]roleset.Set)}
}

func (c *closureCache) get(role string) (roleset.Set, bool) {
	closure, ok := c.entries[role]
	return closure, ok
}

func (c *closureCache) put(role string, closure roleset.Set) {
	c.entries[role] = closure
}

// invalidate drops every entry. A new edge can change the closure of
// roles far from either endpoint, so invalidation is never per-entry.
func (c *closureCache) invalidate() {
	clear(c.entries)
}

func (c *closureCache) size() int {
	return len(c.entries)
}
