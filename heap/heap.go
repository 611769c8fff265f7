// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over a slice of values.
//
// The minimum element according to the less function is always at
// index 0. The heap has no decrease-key operation: callers that need
// to lower the priority of an element push a new copy and discard the
// superseded one when it is popped.
package heap

// New returns a binary heap on the items slice, using less to compare.
// The heap takes ownership of items.
func New[E any](items []E, less func(E, E) bool) *Heap[E] {
	h := &Heap[E]{
		items: items,
		less:  less,
	}
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
	return h
}

// Heap implements a binary min-heap.
type Heap[E any] struct {
	items []E
	less  func(E, E) bool
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.items)
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the minimum element (according to the less
// function) from the heap. Pop panics if the heap is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Pop() E {
	n := len(h.items) - 1
	h.items[0], h.items[n] = h.items[n], h.items[0]
	h.down(0, n)
	x := h.items[n]
	var zero E
	h.items[n] = zero
	h.items = h.items[:n]
	return x
}

// Peek returns the minimum element without removing it.
// It reports false if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}
	return h.items[0], true
}

// Reset removes all elements, retaining the underlying storage.
func (h *Heap[E]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

// Grow ensures there is room for at least n more elements
// without reallocation.
func (h *Heap[E]) Grow(n int) {
	if n <= cap(h.items)-len(h.items) {
		return
	}
	items := make([]E, len(h.items), len(h.items)+n)
	copy(items, h.items)
	h.items = items
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.items[j2], h.items[j1]) {
			j = j2 // right child
		}
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
	return i > i0
}
