package dlist

// marks an absent link
const none = -1

type node struct {
	value int32
	prev  int
	next  int
}

func newNode(value int32, prev int) node {
	return node{
		value: value,
		prev:  prev,
		next:  none,
	}
}

// link makes b follow a. Both directions change together.
func (l *List) link(a, b int) {
	l.nodes[a].next = b
	l.nodes[b].prev = a
}

// step follows one link out of the node at i. Callers only step where the
// size guarantees a neighbour exists, so a missing link means the arena
// is corrupt.
func (l *List) step(i int, forward bool) int {
	n := &l.nodes[i]
	next := n.prev
	if forward {
		next = n.next
	}
	if next == none {
		panic("dlist: broken link")
	}
	return next
}
