package bplus

import "go.uber.org/zap"

// getParentNode finds the internal node whose child slots hold node.
// Nodes keep no back reference, so a miss in the parent cache costs a breadth-first
// scan of the internal levels. Returns nil for the root.
func (t *BPlusTree) getParentNode(node *Node) *Node {
	if node == t.root {
		return nil
	}
	if parent, ok := t.parents.get(node); ok {
		return parent
	}

	queue := []*Node{t.root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr.isLeaf() {
			continue
		}
		for _, child := range curr.children {
			if child == node {
				t.parents.put(node, curr)
				return curr
			}
			if !child.isLeaf() {
				queue = append(queue, child)
			}
		}
	}
	t.logger.Warn("parent lookup found no parent", zap.Int64("node", node.id))
	return nil
}
