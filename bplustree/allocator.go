package bplus

// nodeAllocator hands out node ids and remembers which nodes are still part of the tree.
type nodeAllocator struct {
	live   map[int64]NodeType
	nextID int64
}

func newNodeAllocator() *nodeAllocator {
	return &nodeAllocator{
		live:   make(map[int64]NodeType),
		nextID: 1,
	}
}

func (a *nodeAllocator) allocate(nodeType NodeType) int64 {
	id := a.nextID
	a.nextID++
	a.live[id] = nodeType
	return id
}

// release forgets a node that is no longer reachable from the root.
func (a *nodeAllocator) release(n *Node) {
	delete(a.live, n.id)
}

func (a *nodeAllocator) liveCount() int {
	return len(a.live)
}

func (a *nodeAllocator) isLive(id int64) bool {
	_, ok := a.live[id]
	return ok
}

// totalAllocated returns how many node ids were ever handed out.
func (a *nodeAllocator) totalAllocated() int64 {
	return a.nextID - 1
}
