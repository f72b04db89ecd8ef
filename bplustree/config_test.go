package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Order = 2
	require.ErrorIs(t, cfg.Validate(), ErrInvalidOrder)

	_, err := New(1)
	require.ErrorIs(t, err, ErrInvalidOrder)

	cfg = DefaultConfig()
	cfg.ParentCacheSize = -1
	_, err = NewBPlusTree(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewWithoutLoggerOrCache(t *testing.T) {
	tree, err := NewBPlusTree(Config{Order: MinOrder})
	require.NoError(t, err)
	defer tree.Close()

	for k := 0; k < 20; k++ {
		require.NoError(t, tree.Insert(k))
	}
	require.NoError(t, tree.CheckInvariants())
	require.Equal(t, MinOrder, tree.Order())
}

// TestCachedAndUncachedTreesAgree builds the same tree with and without the parent cache.
func TestCachedAndUncachedTreesAgree(t *testing.T) {
	build := func(size int64) *BPlusTree {
		cfg := DefaultConfig()
		cfg.Order = 3
		cfg.ParentCacheSize = size
		tree, err := NewBPlusTree(cfg)
		require.NoError(t, err)
		t.Cleanup(tree.Close)
		for k := 0; k < 200; k++ {
			require.NoError(t, tree.Insert((k*71)%211))
		}
		for k := 0; k < 200; k += 2 {
			require.NoError(t, tree.Delete((k*71)%211))
		}
		return tree
	}
	require.Equal(t, build(0).Levels(), build(DefaultParentCacheSize).Levels())
}
