package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *BPlusTree {
	tree := newTestTree(t, 4)
	insertAll(t, tree, 10, 20, 5, 6, 12, 30, 7, 17)
	return tree
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *BPlusTree)
	}{
		{"unsorted leaf", func(tree *BPlusTree) {
			leaf := tree.root.children[0]
			leaf.key[0], leaf.key[1] = leaf.key[1], leaf.key[0]
		}},
		{"key outside separator range", func(tree *BPlusTree) {
			tree.root.children[2].key[1] = 3
		}},
		{"child count mismatch", func(tree *BPlusTree) {
			tree.root.children = tree.root.children[:2]
		}},
		{"leaf below minimum", func(tree *BPlusTree) {
			leaf := tree.root.children[2]
			leaf.key = leaf.key[:1]
		}},
		{"separator missing from leaves", func(tree *BPlusTree) {
			tree.root.key[0] = 9
		}},
		{"broken leaf chain", func(tree *BPlusTree) {
			tree.root.children[0].next = nil
		}},
		{"released node still reachable", func(tree *BPlusTree) {
			tree.nodes.release(tree.root.children[1])
		}},
		{"orphan live node", func(tree *BPlusTree) {
			tree.newNode(NodeLeaf)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := sampleTree(t)
			require.NoError(t, tree.CheckInvariants())
			tt.corrupt(tree)
			require.ErrorIs(t, tree.CheckInvariants(), ErrCorruptTree)
		})
	}
}

func TestGetParentNode(t *testing.T) {
	for _, size := range []int64{0, DefaultParentCacheSize} {
		cfg := DefaultConfig()
		cfg.Order = 3
		cfg.ParentCacheSize = size
		tree, err := NewBPlusTree(cfg)
		require.NoError(t, err)

		for k := 0; k < 50; k++ {
			require.NoError(t, tree.Insert(k))
		}
		require.Nil(t, tree.getParentNode(tree.root))

		// ask twice so the second round can be served from the cache
		for round := 0; round < 2; round++ {
			queue := []*Node{tree.root}
			for len(queue) > 0 {
				n := queue[0]
				queue = queue[1:]
				if n.isLeaf() {
					continue
				}
				for _, c := range n.children {
					require.Same(t, n, tree.getParentNode(c))
					queue = append(queue, c)
				}
			}
			if tree.parents.cache != nil {
				tree.parents.cache.Wait()
			}
		}
		tree.Close()
	}
}
