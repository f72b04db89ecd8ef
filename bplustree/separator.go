package bplus

import "go.uber.org/zap"

// deleteFromInternal replaces every separator equal to the deleted key with the
// smallest key of the subtree on its right, so no internal node keeps a copy of a
// key that is gone from the leaves.
func (t *BPlusTree) deleteFromInternal(key int) {
	queue := []*Node{t.root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr.isLeaf() {
			continue
		}
		for i, k := range curr.key {
			if k != key {
				continue
			}
			succ := leftmostLeaf(curr.children[i+1])
			curr.key[i] = succ.key[0]
			t.stats.separators++
			t.logger.Debug("refresh separator",
				zap.Int64("node", curr.id),
				zap.Int("old", key),
				zap.Int("new", curr.key[i]))
		}
		for _, child := range curr.children {
			if !child.isLeaf() {
				queue = append(queue, child)
			}
		}
	}
}
