package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Config holds the construction parameters of a BPlusTree.
type Config struct {
	// Order is the maximum number of children of an internal node. Nodes hold at most Order-1 keys.
	Order int
	// ParentCacheSize bounds the child->parent cache used by upward propagation. 0 disables it.
	ParentCacheSize int64
	// Logger receives debug events for splits, borrows, merges and root changes. Nil means no logging.
	Logger *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		Order:           DefaultOrder,
		ParentCacheSize: DefaultParentCacheSize,
		Logger:          zap.NewNop(),
	}
}

func (c Config) Validate() error {
	if c.Order < MinOrder {
		return errors.Wrapf(ErrInvalidOrder, "order must be at least %d, got %d", MinOrder, c.Order)
	}
	if c.ParentCacheSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "parent cache size must not be negative, got %d", c.ParentCacheSize)
	}
	return nil
}
