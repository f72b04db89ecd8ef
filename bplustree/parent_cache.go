package bplus

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/ristretto/v2"
)

// parentCache remembers child id -> parent node answers of the parent lookup.
// Entries are only trusted while the tree shape is unchanged, so every
// structural edit drops the whole cache. A nil cache field disables caching.
type parentCache struct {
	cache  *ristretto.Cache[int64, *Node]
	hits   uint64
	misses uint64
}

func newParentCache(size int64) (*parentCache, error) {
	pc := &parentCache{}
	if size == 0 {
		return pc, nil
	}
	cache, err := ristretto.NewCache(&ristretto.Config[int64, *Node]{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create parent cache")
	}
	pc.cache = cache
	return pc, nil
}

// get returns the cached parent of child if it still holds child in one of its slots.
func (pc *parentCache) get(child *Node) (*Node, bool) {
	if pc.cache == nil {
		return nil, false
	}
	parent, ok := pc.cache.Get(child.id)
	if !ok || parent == nil || parent.childIndex(child) < 0 {
		pc.misses++
		return nil, false
	}
	pc.hits++
	return parent, true
}

func (pc *parentCache) put(child, parent *Node) {
	if pc.cache == nil {
		return
	}
	pc.cache.Set(child.id, parent, 1)
}

// invalidate drops every entry. Called whenever a node changes slots or leaves the tree.
func (pc *parentCache) invalidate() {
	if pc.cache == nil {
		return
	}
	pc.cache.Clear()
}

func (pc *parentCache) close() {
	if pc.cache == nil {
		return
	}
	pc.cache.Close()
	pc.cache = nil
}
