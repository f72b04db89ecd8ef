package bplus

import (
	"slices"

	"go.uber.org/zap"
)

// mergeInternal restores the occupancy of an internal node that lost a key to a merge
// below it. The root only needs one key; an empty root is replaced by its only child.
func (t *BPlusTree) mergeInternal(node *Node) {
	if node == t.root {
		if !node.isEmpty() {
			return
		}
		t.root = node.children[0]
		t.nodes.release(node)
		t.stats.collapses++
		t.parents.invalidate()
		t.logger.Debug("collapse root",
			zap.Int64("old", node.id),
			zap.Int64("root", t.root.id),
			zap.Int("height", t.Height()))
		return
	}

	minKeys := minInternalKeys(t.order)
	if len(node.key) >= minKeys {
		return
	}

	parent := t.getParentNode(node)
	idx := parent.childIndex(node)
	var left, right *Node
	if idx > 0 {
		left = parent.children[idx-1]
	}
	if idx < len(parent.children)-1 {
		right = parent.children[idx+1]
	}

	switch {
	case left != nil && len(left.key) > minKeys:
		// rotate right: separator comes down, left's last key goes up
		last := len(left.key) - 1
		moved := left.children[last+1]
		node.key = slices.Insert(node.key, 0, parent.key[idx-1])
		node.children = slices.Insert(node.children, 0, moved)
		parent.key[idx-1] = left.key[last]
		left.key = left.key[:last]
		left.children = left.children[:last+1]

		t.stats.borrows++
		t.parents.invalidate()
		t.logger.Debug("internal borrow from left",
			zap.Int64("node", node.id),
			zap.Int64("left", left.id),
			zap.Int("separator", parent.key[idx-1]))

	case right != nil && len(right.key) > minKeys:
		// rotate left: separator comes down, right's first key goes up
		moved := right.children[0]
		node.key = append(node.key, parent.key[idx])
		node.children = append(node.children, moved)
		parent.key[idx] = right.key[0]
		right.key = slices.Delete(right.key, 0, 1)
		right.children = slices.Delete(right.children, 0, 1)

		t.stats.borrows++
		t.parents.invalidate()
		t.logger.Debug("internal borrow from right",
			zap.Int64("node", node.id),
			zap.Int64("right", right.id),
			zap.Int("separator", parent.key[idx]))

	case left != nil:
		t.mergeInternalNodes(parent, idx-1, left, node)

	default:
		t.mergeInternalNodes(parent, idx, node, right)
	}
}

// mergeInternalNodes folds the internal nodes at parent slots slot and slot+1 and the
// separator between them into one new node, then rebalances the parent.
func (t *BPlusTree) mergeInternalNodes(parent *Node, slot int, left, right *Node) {
	merged := t.newNode(NodeInternal)
	merged.key = append(merged.key, left.key...)
	merged.key = append(merged.key, parent.key[slot])
	merged.key = append(merged.key, right.key...)
	merged.children = append(merged.children, left.children...)
	merged.children = append(merged.children, right.children...)

	parent.children[slot] = merged
	parent.key = slices.Delete(parent.key, slot, slot+1)
	parent.children = slices.Delete(parent.children, slot+1, slot+2)

	t.nodes.release(left)
	t.nodes.release(right)

	t.stats.merges++
	t.parents.invalidate()
	t.logger.Debug("merge internal",
		zap.Int64("left", left.id),
		zap.Int64("right", right.id),
		zap.Int64("merged", merged.id),
		zap.Int("keys", len(merged.key)))

	t.mergeInternal(parent)
}
