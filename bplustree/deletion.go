package bplus

import (
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Delete removes key from the tree, rebalancing leaves and internal nodes that fall
// below their minimum occupancy. A missing key is reported with ErrKeyNotFound and
// the tree is left untouched.
func (t *BPlusTree) Delete(key int) error {
	parent, leaf := t.Search(key)
	if leaf == nil {
		return errors.Wrapf(ErrKeyNotFound, "delete %d", key)
	}

	// a root leaf has no minimum occupancy
	if parent == nil {
		leaf.removeKey(key)
		return nil
	}

	leaf.removeKey(key)
	if len(leaf.key) < minLeafKeys(t.order) {
		t.rebalanceLeaf(parent, leaf, key)
	}

	t.deleteFromInternal(key)
	return nil
}

// rebalanceLeaf fixes an underflowing leaf by borrowing from a sibling that can spare a key,
// or else by merging with a sibling. key is the deleted key, which still routes to leaf.
func (t *BPlusTree) rebalanceLeaf(parent, leaf *Node, key int) {
	idx := descendIndex(parent, key)
	if parent.children[idx] != leaf {
		idx = parent.childIndex(leaf)
	}

	minKeys := minLeafKeys(t.order)
	var left, right *Node
	if idx > 0 {
		left = parent.children[idx-1]
	}
	if idx < len(parent.children)-1 {
		right = parent.children[idx+1]
	}

	// Try borrow from left sibling
	if left != nil && len(left.key) > minKeys {
		borrowed := left.key[len(left.key)-1]
		left.key = left.key[:len(left.key)-1]
		leaf.key = slices.Insert(leaf.key, 0, borrowed)
		parent.key[idx-1] = borrowed

		t.stats.borrows++
		t.logger.Debug("leaf borrow from left",
			zap.Int64("leaf", leaf.id),
			zap.Int64("left", left.id),
			zap.Int("key", borrowed))
		return
	}

	// Try borrow from right sibling
	if right != nil && len(right.key) > minKeys {
		borrowed := right.key[0]
		right.key = slices.Delete(right.key, 0, 1)
		leaf.key = append(leaf.key, borrowed)
		// parent separator becomes right's new first key
		parent.key[idx] = right.key[0]

		t.stats.borrows++
		t.logger.Debug("leaf borrow from right",
			zap.Int64("leaf", leaf.id),
			zap.Int64("right", right.id),
			zap.Int("key", borrowed))
		return
	}

	if left != nil {
		t.mergeLeaves(parent, idx-1, left, leaf, left.key[0])
		return
	}
	t.mergeLeaves(parent, idx, leaf, right, key)
}

// mergeLeaves replaces the adjacent leaves at parent slots slot and slot+1 with one new
// leaf holding both key sets, drops their separator from the parent and rebalances the
// parent. probe is any key routed to the left leaf; it locates the leaf before the pair.
func (t *BPlusTree) mergeLeaves(parent *Node, slot int, left, right *Node, probe int) {
	merged := t.newNode(NodeLeaf)
	merged.key = append(merged.key, left.key...)
	merged.key = append(merged.key, right.key...)

	// fix leaf linking before the parent changes
	if pred := t.predecessorLeaf(probe); pred != nil {
		pred.next = merged
	}
	merged.next = right.next

	parent.children[slot] = merged
	parent.key = slices.Delete(parent.key, slot, slot+1)
	parent.children = slices.Delete(parent.children, slot+1, slot+2)

	t.nodes.release(left)
	t.nodes.release(right)
	left.next, right.next = nil, nil

	t.stats.merges++
	t.parents.invalidate()
	t.logger.Debug("merge leaves",
		zap.Int64("left", left.id),
		zap.Int64("right", right.id),
		zap.Int64("merged", merged.id),
		zap.Int("keys", len(merged.key)))

	t.mergeInternal(parent)
}

// predecessorLeaf returns the leaf just before the one key routes to, or nil when that
// leaf is the leftmost one.
func (t *BPlusTree) predecessorLeaf(key int) *Node {
	var before *Node
	for n := t.root; !n.isLeaf(); {
		i := descendIndex(n, key)
		if i > 0 {
			before = n.children[i-1]
		}
		n = n.children[i]
	}
	if before == nil {
		return nil
	}
	return rightmostLeaf(before)
}
