package bplus

import "slices"

// insertIntoParent places separator key and the new right-hand child into parent.
// child lands in the slot right after key. If the parent is already full, it splits
// and the promotion continues upward.
func (t *BPlusTree) insertIntoParent(parent *Node, child *Node, key int) {
	pos := descendIndex(parent, key)

	if !parent.isFull() {
		parent.key = slices.Insert(parent.key, pos, key)
		parent.children = slices.Insert(parent.children, pos+1, child)
		return
	}

	t.splitInternal(parent, child, key, pos)
}
