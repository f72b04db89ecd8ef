package bplus

import (
	"github.com/cockroachdb/errors"
)

// CheckInvariants walks the whole tree and returns the first structural problem found,
// wrapped around ErrCorruptTree. A nil result means the tree is well formed.
func (t *BPlusTree) CheckInvariants() error {
	c := &checker{
		t:        t,
		seen:     make(map[*Node]struct{}),
		leafKeys: make(map[int]struct{}),
		leafDep:  -1,
	}
	if err := c.walk(t.root, 0, nil, nil); err != nil {
		return err
	}

	for _, sep := range c.separators {
		if _, ok := c.leafKeys[sep.key]; !ok {
			return corruptf(sep.node, "separator %d is not a leaf key", sep.key)
		}
	}

	leaves := t.leaves()
	for i, leaf := range leaves {
		var want *Node
		if i+1 < len(leaves) {
			want = leaves[i+1]
		}
		if leaf.next != want {
			return corruptf(leaf, "leaf chain skips or points outside the tree")
		}
	}

	if live := t.nodes.liveCount(); live != len(c.seen) {
		return errors.Wrapf(ErrCorruptTree, "%d live nodes but %d reachable", live, len(c.seen))
	}
	return nil
}

type separatorRef struct {
	node *Node
	key  int
}

type checker struct {
	t          *BPlusTree
	seen       map[*Node]struct{}
	leafKeys   map[int]struct{}
	separators []separatorRef
	leafDep    int
}

// walk checks n and its subtree; every key must lie in [lo, hi) where nil means unbounded.
func (c *checker) walk(n *Node, depth int, lo, hi *int) error {
	if n == nil {
		return errors.Wrapf(ErrCorruptTree, "nil node at depth %d", depth)
	}
	if _, dup := c.seen[n]; dup {
		return corruptf(n, "reachable twice")
	}
	c.seen[n] = struct{}{}
	if !c.t.nodes.isLive(n.id) {
		return corruptf(n, "reachable but released")
	}

	order := c.t.order
	isRoot := n == c.t.root
	if len(n.key) > order-1 {
		return corruptf(n, "%d keys, max %d", len(n.key), order-1)
	}
	for i, k := range n.key {
		if i > 0 && n.key[i-1] >= k {
			return corruptf(n, "keys not strictly ascending: %v", n.key)
		}
		if lo != nil && k < *lo {
			return corruptf(n, "key %d below lower bound %d", k, *lo)
		}
		if hi != nil && k >= *hi {
			return corruptf(n, "key %d not below upper bound %d", k, *hi)
		}
	}

	if n.isLeaf() {
		if len(n.children) != 0 {
			return corruptf(n, "leaf with %d children", len(n.children))
		}
		if !isRoot && len(n.key) < minLeafKeys(order) {
			return corruptf(n, "%d keys, leaf min %d", len(n.key), minLeafKeys(order))
		}
		if c.leafDep < 0 {
			c.leafDep = depth
		} else if c.leafDep != depth {
			return corruptf(n, "leaf at depth %d, expected %d", depth, c.leafDep)
		}
		for _, k := range n.key {
			c.leafKeys[k] = struct{}{}
		}
		return nil
	}

	if n.next != nil {
		return corruptf(n, "internal node with a sibling link")
	}
	if len(n.children) != len(n.key)+1 {
		return corruptf(n, "%d keys but %d children", len(n.key), len(n.children))
	}
	minKeys := minInternalKeys(order)
	if isRoot {
		minKeys = 1
	}
	if len(n.key) < minKeys {
		return corruptf(n, "%d keys, internal min %d", len(n.key), minKeys)
	}

	for _, k := range n.key {
		c.separators = append(c.separators, separatorRef{node: n, key: k})
	}
	for i, child := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.key[i-1]
		}
		if i < len(n.key) {
			childHi = &n.key[i]
		}
		if err := c.walk(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
