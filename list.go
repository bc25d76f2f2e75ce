// A doubly linked list of int32 values whose nodes live in a single
// arena owned by the list
package dlist

type List struct {
	size  int
	head  int
	tail  int
	nodes []node
}

// Create an empty list with the default configuration
func New() *List {
	return Build(Configure())
}

// Create an empty list with the specified configuration
// See dlist.Configure() for creating a configuration
func Build(config *Configuration) *List {
	return &List{
		head:  none,
		tail:  none,
		nodes: make([]node, 0, config.capacity),
	}
}

func (l *List) Len() int {
	return l.size
}

// Append value to the back of the list
func (l *List) PushBack(value int32) {
	tail := l.tail
	index := len(l.nodes)
	l.nodes = append(l.nodes, newNode(value, tail))

	if tail == none {
		l.head = index
	} else {
		l.link(tail, index)
	}
	l.tail = index
	l.size++
}

// Get the value at the zero-based index. The second return value is false
// when the index is out of range.
// This is O(n): the walk starts from whichever end is closer.
func (l *List) Get(index int) (int32, bool) {
	i := l.nodeAt(index)
	if i == none {
		return 0, false
	}
	return l.nodes[i].value, true
}

func (l *List) nodeAt(index int) int {
	if index < 0 || index >= l.size {
		return none
	}

	forward := index <= l.size/2
	steps, current := index, l.head
	if !forward {
		steps, current = l.size-index-1, l.tail
	}

	for ; steps > 0; steps-- {
		current = l.step(current, forward)
	}
	return current
}
