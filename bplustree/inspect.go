// Package bplus: level-order dump of the tree for debugging and the REPL.

package bplus

import (
	"fmt"
	"io"
	"strings"
)

// Levels lists the keys of every node, level by level from the root, left to right.
func (t *BPlusTree) Levels() [][][]int {
	var levels [][][]int
	queue := []*Node{t.root}
	for len(queue) > 0 {
		size := len(queue)
		level := make([][]int, 0, size)
		for i := 0; i < size; i++ {
			n := queue[i]
			level = append(level, n.Keys())
			if !n.isLeaf() {
				queue = append(queue, n.children...)
			}
		}
		levels = append(levels, level)
		queue = queue[size:]
	}
	return levels
}

// DisplayTo writes one line per level; each node is printed as "[ k1 k2 ]" and nodes on
// the same level are separated by four spaces.
func (t *BPlusTree) DisplayTo(w io.Writer) error {
	for _, level := range t.Levels() {
		if _, err := fmt.Fprintln(w, FormatLevel(level)); err != nil {
			return err
		}
	}
	return nil
}

func (t *BPlusTree) String() string {
	var sb strings.Builder
	_ = t.DisplayTo(&sb)
	return sb.String()
}

// FormatLevel renders the nodes of one level the way DisplayTo prints them.
func FormatLevel(level [][]int) string {
	nodes := make([]string, len(level))
	for i, keys := range level {
		nodes[i] = FormatNode(keys)
	}
	return strings.Join(nodes, "    ")
}

func FormatNode(keys []int) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, k := range keys {
		fmt.Fprintf(&sb, "%d ", k)
	}
	sb.WriteString("]")
	return sb.String()
}
