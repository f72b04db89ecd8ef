package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	bplus "BPlusIndex/bplustree"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func runSession(t *testing.T, order int, input string) (*bplus.BPlusTree, string) {
	t.Helper()
	color.NoColor = true

	tree, err := bplus.New(order)
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader(input)), &out, tree, zaptest.NewLogger(t))
	c.Start()
	return tree, out.String()
}

func TestSessionInsertSearchDisplay(t *testing.T) {
	input := strings.Join([]string{
		"insert 10", "insert 20", "INSERT 5", "1 6", "insert 12", "insert 30", "insert 7", "insert 17",
		"search 12", "search 99", "display", "exit",
	}, "\n")
	tree, out := runSession(t, 4, input)

	require.Equal(t, []int{5, 6, 7, 10, 12, 17, 20, 30}, tree.Keys())
	require.Contains(t, out, "Inserted 17")
	require.Contains(t, out, "Found 12 in leaf [ 10 12 17 ] under [ 10 20 ]")
	require.Contains(t, out, "Key not found.")
	require.Contains(t, out, "L0  [ 10 20 ]")
	require.Contains(t, out, "L1  [ 5 6 7 ]    [ 10 12 17 ]    [ 20 30 ]")
}

func TestSessionReportsRecoverableErrors(t *testing.T) {
	input := strings.Join([]string{
		"insert 1", "insert 1", "delete 2", "insert x", "delete", "frobnicate", "2 1", "3",
	}, "\n")
	tree, out := runSession(t, 3, input)

	require.Contains(t, out, "Key already exists!")
	require.Contains(t, out, "Key not present!")
	require.Contains(t, out, `Invalid key "x": not an integer`)
	require.Contains(t, out, "Usage: DELETE <key>")
	require.Contains(t, out, `Unknown command "frobnicate"`)
	require.Contains(t, out, "Deleted 1")
	require.Empty(t, tree.Keys())
}

func TestSessionStopsOnExit(t *testing.T) {
	tree, _ := runSession(t, 3, "insert 1\n4\ninsert 2\n")
	require.Equal(t, []int{1}, tree.Keys())
}

func TestSessionSeedStatsCheck(t *testing.T) {
	tree, out := runSession(t, 5, "seed 300 10000\nstats\ncheck\n")

	require.Equal(t, 300, tree.Len())
	require.Contains(t, out, "Seeded 300 keys (300 requested)")
	require.Contains(t, out, "keys:           300")
	require.Contains(t, out, "Tree OK")
}

func TestSeedSkipsDuplicates(t *testing.T) {
	tree, err := bplus.New(4)
	require.NoError(t, err)
	defer tree.Close()

	inserted, err := Seed(tree, 50, 49)
	require.NoError(t, err)
	require.Equal(t, 50, inserted)

	// the whole range is already present
	inserted, err = Seed(tree, 50, 49)
	require.NoError(t, err)
	require.Zero(t, inserted)
	require.NoError(t, tree.CheckInvariants())
}
