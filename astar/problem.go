package astar

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Cost is the type of edge costs, g-scores and heuristic estimates.
// Costs must never be negative.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Problem describes an implicit state graph to be searched.
//
// All three methods must be pure: the engine may call them any
// number of times, in any order, and assumes the results depend only
// on the state passed in.
type Problem[S any, C Cost] interface {
	// Successors returns the states reachable from s in one
	// transition, each with the non-negative cost of that transition.
	// Dead-end or losing transitions are simply omitted.
	Successors(s S) iter.Seq2[S, C]

	// Heuristic returns an estimate of the remaining cost from s to
	// the nearest goal. If it never overestimates, the path returned
	// by Solve is optimal.
	Heuristic(s S) C

	// IsGoal reports whether s is a goal state.
	IsGoal(s S) bool
}

// Funcs implements Problem with plain functions.
// A nil HeuristicFunc is treated as [Zero], which turns the search
// into uniform-cost search.
type Funcs[S any, C Cost] struct {
	SuccessorsFunc func(S) iter.Seq2[S, C]
	HeuristicFunc  func(S) C
	GoalFunc       func(S) bool
}

// Successors implements Problem.Successors.
func (f Funcs[S, C]) Successors(s S) iter.Seq2[S, C] {
	return f.SuccessorsFunc(s)
}

// Heuristic implements Problem.Heuristic.
func (f Funcs[S, C]) Heuristic(s S) C {
	if f.HeuristicFunc == nil {
		return 0
	}
	return f.HeuristicFunc(s)
}

// IsGoal implements Problem.IsGoal.
func (f Funcs[S, C]) IsGoal(s S) bool {
	return f.GoalFunc(s)
}

// Zero is the heuristic that always returns zero. It is admissible for
// every problem and makes A* behave exactly like Dijkstra's algorithm.
func Zero[S any, C Cost](S) C {
	return 0
}
