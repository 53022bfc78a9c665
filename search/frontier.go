package search

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// frontier is the pending-work list. Pops always come from the head; pushes go
// to the tail (FIFO) or the head (LIFO) depending on order.
type frontier struct {
	order Order
	list  *doublylinkedlist.List
}

func newFrontier(order Order) *frontier {
	return &frontier{order: order, list: doublylinkedlist.New()}
}

// push inserts c at the end dictated by the search order.
func (f *frontier) push(c gridgraph.Cell) {
	if f.order == DepthFirst {
		f.list.Prepend(c)
		return
	}
	f.list.Add(c)
}

// pop removes and returns the head cell. ok is false when empty.
func (f *frontier) pop() (c gridgraph.Cell, ok bool) {
	v, ok := f.list.Get(0)
	if !ok {
		return gridgraph.Cell{}, false
	}
	f.list.Remove(0)

	return v.(gridgraph.Cell), true
}

func (f *frontier) len() int {
	return f.list.Size()
}
