// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astar implements A* search over implicit state graphs.
//
// The caller describes the graph with a [Problem]: a successor
// function, a heuristic and a goal predicate. [Engine.Solve] returns
// a minimum-cost [Path] from the start state to the first goal state
// it reaches, provided the heuristic is admissible (it never
// overestimates the remaining cost). With the [Zero] heuristic the
// search is uniform-cost search, also known as Dijkstra's algorithm.
//
// The engine keeps one table entry per distinct state it discovers,
// so the memory used by a search is proportional to the number of
// states reached. Keeping states compact and the successor fan-out
// small is the caller's responsibility, as is bounding the search of
// a state space in which no goal is reachable: the engine itself has
// no limit on expansions.
package astar

import (
	"iter"
	"log/slog"

	"github.com/rogpeppe/bestfirst/anyhash"
)

// Engine runs A* searches. The structures it uses are retained
// between searches to reduce allocation, so an Engine must not be
// used by more than one goroutine at a time.
//
// The zero Engine is not usable; call [New] or [NewHashed].
type Engine[S any, C Cost] struct {
	frontier frontier[C]
	table    table[S, C]
	logger   *slog.Logger
	stats    Stats
}

// Stats holds counters describing the most recent search.
// They may help with heuristic tuning.
type Stats struct {
	// Expanded holds the number of states whose successors
	// were generated.
	Expanded int
	// Discovered holds the number of distinct states seen.
	Discovered int
	// Pushed holds the number of frontier insertions.
	Pushed int
	// Stale holds the number of frontier entries that were
	// discarded because a cheaper path had been found since
	// they were pushed.
	Stale int
}

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures an Engine.
type Option func(*options)

// WithLogger sets the logger used to report a summary of each search
// at debug level. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCapacity preallocates room for n states in the
// frontier and the cost table.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// New returns an Engine for comparable states.
// States are keyed by Go equality.
func New[S comparable, C Cost](opts ...Option) *Engine[S, C] {
	return newEngine[S, C](make(mapIndex[S]), opts)
}

// NewHashed returns an Engine for states that are not comparable,
// such as slices. States are keyed by h, which must hash equal
// states identically.
func NewHashed[S any, C Cost](h anyhash.Hasher[S], opts ...Option) *Engine[S, C] {
	return newEngine[S, C](hashIndex[S]{anyhash.NewMap[S, int](h)}, opts)
}

func newEngine[S any, C Cost](index stateIndex[S], opts []Option) *Engine[S, C] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine[S, C]{
		frontier: newFrontier[C](),
		table:    table[S, C]{indexOf: index},
		logger:   o.logger,
	}
	if o.capacity > 0 {
		e.frontier.grow(o.capacity)
		e.table.grow(o.capacity)
	}
	return e
}

// Reset discards all state left over from a previous search.
// Solve calls it on entry, so callers only need it to release
// references to states early.
func (e *Engine[S, C]) Reset() {
	e.frontier.reset()
	e.table.reset()
	e.stats = Stats{}
}

// Stats returns the counters from the most recent call to Solve.
func (e *Engine[S, C]) Stats() Stats {
	return e.stats
}

// Solve searches for a minimum-cost path from start to a state
// satisfying p.IsGoal. It reports false if the reachable state
// space is exhausted without finding a goal.
//
// The returned path is owned by the caller. When several paths
// have the same minimum cost, the one returned depends only on
// the problem, not on the history of the Engine.
func (e *Engine[S, C]) Solve(start S, p Problem[S, C]) (Path[S, C], bool) {
	e.Reset()
	t := &e.table
	t.add(start, 0, -1)
	e.push(0, 0, p.Heuristic(start))
	for e.frontier.len() > 0 {
		cur := e.frontier.pop()
		if cur.g > t.g[cur.index] {
			e.stats.Stale++
			continue
		}
		s := t.states[cur.index]
		if p.IsGoal(s) {
			e.stats.Discovered = t.len()
			e.logSummary(true, cur.g)
			return t.path(cur.index), true
		}
		e.stats.Expanded++
		for next, cost := range p.Successors(s) {
			g := cur.g + cost
			j, ok := t.indexOf.lookup(next)
			if !ok {
				j = t.add(next, g, cur.index)
			} else if !t.relax(j, g, cur.index) {
				continue
			}
			e.push(j, g, g+p.Heuristic(next))
		}
	}
	e.stats.Discovered = t.len()
	e.logSummary(false, 0)
	return nil, false
}

func (e *Engine[S, C]) push(index int, g, f C) {
	e.frontier.push(index, g, f)
	e.stats.Pushed++
}

func (e *Engine[S, C]) logSummary(found bool, cost C) {
	e.logger.Debug("search finished",
		slog.Bool("found", found),
		slog.Any("cost", cost),
		slog.Int("expanded", e.stats.Expanded),
		slog.Int("discovered", e.stats.Discovered),
		slog.Int("pushed", e.stats.Pushed),
		slog.Int("stale", e.stats.Stale),
	)
}

// Solve is a convenience function that runs a single search on a
// fresh Engine using the given successor, heuristic and goal
// functions. A nil heuristic is treated as [Zero].
func Solve[S comparable, C Cost](
	start S,
	successors func(S) iter.Seq2[S, C],
	heuristic func(S) C,
	goal func(S) bool,
) (Path[S, C], bool) {
	return New[S, C]().Solve(start, Funcs[S, C]{
		SuccessorsFunc: successors,
		HeuristicFunc:  heuristic,
		GoalFunc:       goal,
	})
}
