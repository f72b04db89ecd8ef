package bplus

// descendIndex picks the child slot to follow for key: the first i with key < keys[i],
// or the last slot when key is >= every separator.
func descendIndex(n *Node, key int) int {
	for i, k := range n.key {
		if key < k {
			return i
		}
	}
	return len(n.key)
}

// findLeaf walks from the root to the leaf that owns key and returns it with its parent.
// parent is nil when the root is a leaf.
func (t *BPlusTree) findLeaf(key int) (parent, leaf *Node) {
	leaf = t.root
	for !leaf.isLeaf() {
		parent = leaf
		leaf = leaf.children[descendIndex(leaf, key)]
	}
	return parent, leaf
}

// Search returns the leaf holding key and that leaf's parent.
// Both are nil when the key is absent; parent alone is nil when the key sits in a root leaf.
func (t *BPlusTree) Search(key int) (parent, leaf *Node) {
	parent, leaf = t.findLeaf(key)
	if !leaf.hasKey(key) {
		return nil, nil
	}
	return parent, leaf
}

func (t *BPlusTree) Contains(key int) bool {
	_, leaf := t.Search(key)
	return leaf != nil
}

// leftmostLeaf follows the first child down from n.
func leftmostLeaf(n *Node) *Node {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n
}

// rightmostLeaf follows the last child down from n.
func rightmostLeaf(n *Node) *Node {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n
}
