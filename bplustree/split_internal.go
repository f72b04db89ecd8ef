package bplus

import (
	"slices"

	"go.uber.org/zap"
)

// splitInternal splits a full internal node while adding (key, child) at slot pos.
// The node keeps ceil(m/2)-1 keys and ceil(m/2) children, the next key is promoted
// and the remainder moves to a new right sibling.
func (t *BPlusTree) splitInternal(node *Node, child *Node, key int, pos int) {
	keys := slices.Insert(slices.Clone(node.key), pos, key)
	children := slices.Insert(slices.Clone(node.children), pos+1, child)

	// keys: left keeps [0:mid), promote key[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	mid := minInternalKeys(t.order)
	promote := keys[mid]

	right := t.newNode(NodeInternal)
	right.key = append(right.key, keys[mid+1:]...)
	right.children = append(right.children, children[mid+1:]...)

	// shrink left node
	node.key = append(make([]int, 0, t.order), keys[:mid]...)
	node.children = append(make([]*Node, 0, t.order+1), children[:mid+1]...)

	t.stats.splits++
	t.parents.invalidate()
	t.logger.Debug("split internal",
		zap.Int64("left", node.id),
		zap.Int64("right", right.id),
		zap.Int("promote", promote))

	if node == t.root {
		t.growRoot(node, promote, right)
		return
	}

	// insert promote into parent
	t.insertIntoParent(t.getParentNode(node), right, promote)
}
