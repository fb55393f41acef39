package layout

import "svlang/internal/types"

type cacheEntry struct {
	Layout TypeLayout
	Err    *LayoutError
}

type cache struct {
	entries map[types.TypeID]*cacheEntry
}

func newCache() *cache {
	return &cache{entries: make(map[types.TypeID]*cacheEntry, 64)}
}

func (c *cache) get(id types.TypeID) (*cacheEntry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

func (c *cache) put(id types.TypeID, e *cacheEntry) {
	c.entries[id] = e
}
