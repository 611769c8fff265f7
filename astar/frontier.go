package astar

import (
	"github.com/rogpeppe/bestfirst/heap"
)

// entry is a frontier entry. It refers to its state by table index
// and remembers the g-score it was pushed with so that superseded
// entries can be recognised when they are popped.
type entry[C Cost] struct {
	index int
	g     C
	f     C
	seq   uint64
}

// before orders entries by f-score, then deepest first, then
// in insertion order.
func (e entry[C]) before(e1 entry[C]) bool {
	if e.f != e1.f {
		return e.f < e1.f
	}
	if e.g != e1.g {
		return e.g > e1.g
	}
	return e.seq < e1.seq
}

// frontier holds the discovered but not yet expanded states.
// There is no decrease-key: an improved path to a state pushes
// another entry and the old one goes stale.
type frontier[C Cost] struct {
	heap *heap.Heap[entry[C]]
	seq  uint64
}

func newFrontier[C Cost]() frontier[C] {
	return frontier[C]{
		heap: heap.New[entry[C]](nil, entry[C].before),
	}
}

func (q *frontier[C]) push(index int, g, f C) {
	q.heap.Push(entry[C]{
		index: index,
		g:     g,
		f:     f,
		seq:   q.seq,
	})
	q.seq++
}

func (q *frontier[C]) pop() entry[C] {
	return q.heap.Pop()
}

func (q *frontier[C]) len() int {
	return q.heap.Len()
}

func (q *frontier[C]) reset() {
	q.heap.Reset()
	q.seq = 0
}

func (q *frontier[C]) grow(n int) {
	q.heap.Grow(n)
}
