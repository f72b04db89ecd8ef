package bplus

import (
	"go.uber.org/zap"
)

// NewBPlusTree builds an empty tree whose root is an empty leaf.
func NewBPlusTree(cfg Config) (*BPlusTree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	parents, err := newParentCache(cfg.ParentCacheSize)
	if err != nil {
		return nil, err
	}

	t := &BPlusTree{
		order:   cfg.Order,
		nodes:   newNodeAllocator(),
		parents: parents,
		logger:  logger.With(zap.Int("order", cfg.Order)),
	}
	t.root = t.newNode(NodeLeaf)
	return t, nil
}

// New builds a tree of the given order with the default cache and no logging.
func New(order int) (*BPlusTree, error) {
	cfg := DefaultConfig()
	cfg.Order = order
	return NewBPlusTree(cfg)
}

func (t *BPlusTree) Order() int {
	return t.order
}

// Close stops the parent cache. The tree stays usable; lookups fall back to a full scan.
func (t *BPlusTree) Close() {
	t.parents.close()
}
