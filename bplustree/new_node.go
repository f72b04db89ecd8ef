package bplus

import "sort"

// newNode allocates an empty node of the given type for this tree.

func (t *BPlusTree) newNode(nodeType NodeType) *Node {
	n := &Node{
		id:       t.nodes.allocate(nodeType),
		nodeType: nodeType,
		order:    t.order,
		key:      make([]int, 0, t.order),
	}
	if nodeType == NodeInternal {
		n.children = make([]*Node, 0, t.order+1)
	}
	return n
}

func (n *Node) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// isFull reports whether the node holds the maximum of order-1 keys.
func (n *Node) isFull() bool {
	return len(n.key) == n.order-1
}

func (n *Node) isEmpty() bool {
	return len(n.key) == 0
}

// insertKey puts key at its sorted position. The caller guarantees the key is absent.
func (n *Node) insertKey(key int) {
	i := sort.SearchInts(n.key, key)
	n.key = append(n.key, 0)
	copy(n.key[i+1:], n.key[i:])
	n.key[i] = key
}

// removeKey deletes key from the node and reports whether it was there.
func (n *Node) removeKey(key int) bool {
	i := sort.SearchInts(n.key, key)
	if i == len(n.key) || n.key[i] != key {
		return false
	}
	n.key = append(n.key[:i], n.key[i+1:]...)
	return true
}

func (n *Node) hasKey(key int) bool {
	i := sort.SearchInts(n.key, key)
	return i < len(n.key) && n.key[i] == key
}

// childIndex returns the slot holding node c, or -1.
func (n *Node) childIndex(c *Node) int {
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}

// ID returns the allocator id of the node.
func (n *Node) ID() int64 {
	return n.id
}

func (n *Node) IsLeaf() bool {
	return n.isLeaf()
}

// Keys returns a copy of the node's keys.
func (n *Node) Keys() []int {
	keys := make([]int, len(n.key))
	copy(keys, n.key)
	return keys
}

// minLeafKeys is ceil((m-1)/2).
func minLeafKeys(order int) int {
	return order / 2
}

// minInternalKeys is ceil(m/2)-1.
func minInternalKeys(order int) int {
	return (order+1)/2 - 1
}
