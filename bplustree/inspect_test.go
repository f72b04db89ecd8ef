package bplus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayFormat(t *testing.T) {
	tree := newTestTree(t, 4)
	insertAll(t, tree, 10, 20, 5, 6, 12, 30, 7, 17)

	var buf bytes.Buffer
	require.NoError(t, tree.DisplayTo(&buf))
	require.Equal(t, "[ 10 20 ]\n[ 5 6 7 ]    [ 10 12 17 ]    [ 20 30 ]\n", buf.String())
	require.Equal(t, buf.String(), tree.String())
}

func TestDisplayEmptyTree(t *testing.T) {
	tree := newTestTree(t, 3)
	require.Equal(t, "[ ]\n", tree.String())
}

// TestLevelsLastLevelIsKeySet reads the leaf level left to right and expects the sorted key set.
func TestLevelsLastLevelIsKeySet(t *testing.T) {
	tree := newTestTree(t, 5)
	keys := []int{50, 3, 77, 12, 9, 64, 31, 8, 99, 1, 45, 23, 70, 18, 36}
	insertAll(t, tree, keys...)
	require.NoError(t, tree.Delete(31))
	require.NoError(t, tree.Delete(99))

	levels := tree.Levels()
	require.Len(t, levels, tree.Height())

	var flat []int
	for _, node := range levels[len(levels)-1] {
		flat = append(flat, node...)
	}
	require.Equal(t, []int{1, 3, 8, 9, 12, 18, 23, 36, 45, 50, 64, 70, 77}, flat)
}

func TestStatsCountsNodes(t *testing.T) {
	tree := newTestTree(t, 3)
	for k := 0; k < 30; k++ {
		insertAll(t, tree, k)
	}
	s := tree.Stats()
	require.Equal(t, 3, s.Order)
	require.Equal(t, 30, s.Keys)
	require.Equal(t, tree.Height(), s.Height)
	require.Equal(t, s.Leaves+s.InternalNodes, s.LiveNodes)
	require.Positive(t, s.Splits)
	require.GreaterOrEqual(t, s.Allocated, int64(s.LiveNodes))
}
