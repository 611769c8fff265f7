// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astar

import (
	"slices"

	"github.com/rogpeppe/bestfirst/anyhash"
)

// stateIndex maps a state to its dense index in a table.
type stateIndex[S any] interface {
	lookup(s S) (int, bool)
	insert(s S, i int)
	clear()
}

// mapIndex is the stateIndex for comparable states.
type mapIndex[S comparable] map[S]int

func (m mapIndex[S]) lookup(s S) (int, bool) {
	i, ok := m[s]
	return i, ok
}

func (m mapIndex[S]) insert(s S, i int) { m[s] = i }
func (m mapIndex[S]) clear()             { clear(m) }

// hashIndex is the stateIndex for states hashed by a caller-supplied
// anyhash.Hasher.
type hashIndex[S any] struct {
	m *anyhash.Map[S, int]
}

func (h hashIndex[S]) lookup(s S) (int, bool) { return h.m.Get(s) }
func (h hashIndex[S]) insert(s S, i int)      { h.m.Set(s, i) }
func (h hashIndex[S]) clear()                 { h.m.Clear() }

// table records, for every state discovered by a search, the best
// known cost from the start and the predecessor that achieved it.
//
// Indices into states, g and prev are mapped through indexOf. The
// start state always has index 0 and a prev of -1.
type table[S any, C Cost] struct {
	indexOf stateIndex[S]
	states  []S
	g       []C
	prev    []int
}

// add records a newly discovered state and returns its index.
// It does not check whether s is already present.
func (t *table[S, C]) add(s S, g C, prev int) int {
	i := len(t.states)
	t.indexOf.insert(s, i)
	t.states = append(t.states, s)
	t.g = append(t.g, g)
	t.prev = append(t.prev, prev)
	return i
}

// relax records a path of cost g to the state at index i via prev
// if it improves on the best known one, and reports whether it did.
func (t *table[S, C]) relax(i int, g C, prev int) bool {
	if g >= t.g[i] {
		return false
	}
	t.g[i] = g
	t.prev[i] = prev
	return true
}

func (t *table[S, C]) len() int {
	return len(t.states)
}

// path returns the path from the start state to the state at index i.
func (t *table[S, C]) path(i int) Path[S, C] {
	var p Path[S, C]
	for ; i >= 0; i = t.prev[i] {
		p = append(p, Step[S, C]{
			State: t.states[i],
			Cost:  t.g[i],
		})
		if len(p) > len(t.states) {
			panic("astar: cycle in predecessor table")
		}
	}
	slices.Reverse(p)
	return p
}

func (t *table[S, C]) reset() {
	t.indexOf.clear()
	clear(t.states)
	t.states = t.states[:0]
	t.g = t.g[:0]
	t.prev = t.prev[:0]
}

func (t *table[S, C]) grow(n int) {
	t.states = slices.Grow(t.states, n)
	t.g = slices.Grow(t.g, n)
	t.prev = slices.Grow(t.prev, n)
}
