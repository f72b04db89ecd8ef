package bplus

import (
	"sort"

	"go.uber.org/zap"
)

// splitLeaf makes room for key in a full leaf. The leaf keeps the first ceil((m-1)/2)
// keys of the combined set, a new right sibling takes the rest, and a copy of the
// sibling's first key is pushed into the parent.
func (t *BPlusTree) splitLeaf(parent, leaf *Node, key int) {
	keys := append(leaf.Keys(), key)
	sort.Ints(keys)

	mid := minLeafKeys(t.order)

	right := t.newNode(NodeLeaf)
	right.key = append(right.key, keys[mid:]...)
	leaf.key = append(leaf.key[:0], keys[:mid]...)

	// keep the leaf chain in key order
	right.next = leaf.next
	leaf.next = right

	promote := right.key[0]
	t.stats.splits++
	t.parents.invalidate()
	t.logger.Debug("split leaf",
		zap.Int64("left", leaf.id),
		zap.Int64("right", right.id),
		zap.Int("promote", promote))

	if parent == nil {
		t.growRoot(leaf, promote, right)
		return
	}
	t.insertIntoParent(parent, right, promote)
}

// growRoot puts a new internal root above the two halves of a split root.
func (t *BPlusTree) growRoot(left *Node, key int, right *Node) {
	newRoot := t.newNode(NodeInternal)
	newRoot.key = append(newRoot.key, key)
	newRoot.children = append(newRoot.children, left, right)
	t.root = newRoot
	t.logger.Debug("new root",
		zap.Int64("root", newRoot.id),
		zap.Int("key", key),
		zap.Int("height", t.Height()))
}
