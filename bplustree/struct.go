// Structure of B+ Tree
/*
Tree (order m)
 ├── Internal Node (up to m-1 separator keys + m child pointers)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (up to m-1 keys + next pointer)


- keys: sorted ascending order, unique
- internal nodes: len(children) == len(keys)+1
- child i holds keys in [keys[i-1], keys[i])
- separators are copies of real leaf keys
- leaf nodes linked with `next` in key order
- all leaf nodes at same depth

*/
package bplus

import (
	"go.uber.org/zap"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (t NodeType) String() string {
	if t == NodeLeaf {
		return "leaf"
	}
	return "internal"
}

const (
	MinOrder     = 3
	DefaultOrder = 4

	// DefaultParentCacheSize is the number of child->parent entries kept by the parent cache.
	DefaultParentCacheSize = 1024
)

type Node struct {
	id       int64
	nodeType NodeType
	order    int
	key      []int   // keys in the node (sorted keys)
	children []*Node // only for internal node
	next     *Node   // only for leaf node, never owns the target
}

type BPlusTree struct {
	order   int
	root    *Node
	nodes   *nodeAllocator
	parents *parentCache
	logger  *zap.Logger
	stats   opStats
}

// opStats counts structural events since the tree was created.
type opStats struct {
	splits     int
	merges     int
	borrows    int
	collapses  int
	separators int
}

// Stats is a snapshot of the tree shape and of the structural work done so far.
type Stats struct {
	Order         int
	Keys          int
	Height        int
	LiveNodes     int
	Allocated     int64
	Leaves        int
	InternalNodes int

	Splits           int
	Merges           int
	Borrows          int
	RootCollapses    int
	SeparatorRepairs int

	ParentCacheHits   uint64
	ParentCacheMisses uint64
}
