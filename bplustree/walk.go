package bplus

// Keys returns every key in ascending order, collected through the child slots.
func (t *BPlusTree) Keys() []int {
	keys := make([]int, 0)
	for _, leaf := range t.leaves() {
		keys = append(keys, leaf.key...)
	}
	return keys
}

// Len returns the number of keys stored.
func (t *BPlusTree) Len() int {
	count := 0
	for _, leaf := range t.leaves() {
		count += len(leaf.key)
	}
	return count
}

// Height counts the levels from the root down to the leaves; a lone root leaf has height 1.
func (t *BPlusTree) Height() int {
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// leaves returns the leaves left to right as reached through the child slots.
func (t *BPlusTree) leaves() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.isLeaf() {
			out = append(out, n)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

func (t *BPlusTree) Stats() Stats {
	s := Stats{
		Order:             t.order,
		Height:            t.Height(),
		LiveNodes:         t.nodes.liveCount(),
		Allocated:         t.nodes.totalAllocated(),
		Splits:            t.stats.splits,
		Merges:            t.stats.merges,
		Borrows:           t.stats.borrows,
		RootCollapses:     t.stats.collapses,
		SeparatorRepairs:  t.stats.separators,
		ParentCacheHits:   t.parents.hits,
		ParentCacheMisses: t.parents.misses,
	}
	queue := []*Node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.isLeaf() {
			s.Leaves++
			s.Keys += len(n.key)
			continue
		}
		s.InternalNodes++
		queue = append(queue, n.children...)
	}
	return s
}
