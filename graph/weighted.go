// Package graph provides an explicit weighted graph that can be
// searched with package astar.
package graph

import (
	"iter"

	"github.com/rogpeppe/bestfirst/astar"
)

// Edge is a directed edge with a weight.
type Edge[Node comparable, W astar.Cost] struct {
	From, To Node
	Weight   W
}

// Weighted implements a directed graph over a concrete set of
// comparable nodes. The zero value is an empty graph.
type Weighted[Node comparable, W astar.Cost] struct {
	edges    map[Node][]Edge[Node, W]
	allNodes []Node
}

// AddNode adds a node. Typically this is only used to add
// nodes with no incoming or outgoing edges.
func (g *Weighted[Node, W]) AddNode(n Node) {
	g.addNode(n)
}

// AddEdge adds nodes from and to, and adds an edge from -> to with
// the given weight. You don't need to call AddNode first; the nodes
// will be implicitly added if they don't already exist. Parallel
// edges and cycles are allowed.
func (g *Weighted[Node, W]) AddEdge(from, to Node, w W) {
	g.addNode(from, Edge[Node, W]{From: from, To: to, Weight: w})
	g.addNode(to)
}

// AddUndirected adds edges in both directions between a and b.
func (g *Weighted[Node, W]) AddUndirected(a, b Node, w W) {
	g.AddEdge(a, b, w)
	g.AddEdge(b, a, w)
}

func (g *Weighted[Node, W]) addNode(n Node, edges ...Edge[Node, W]) {
	if g.edges == nil {
		g.edges = make(map[Node][]Edge[Node, W])
	}
	n0 := len(g.edges)
	g.edges[n] = append(g.edges[n], edges...)
	if len(g.edges) > n0 {
		g.allNodes = append(g.allNodes, n)
	}
}

// AllNodes returns all the nodes in the order they were added.
// Note: the caller should not mutate the returned slice.
func (g *Weighted[Node, W]) AllNodes() []Node {
	return g.allNodes
}

// EdgesFrom returns the edges leading out of n, and reports
// whether n is in the graph.
// Note: the caller should not mutate the returned slice.
func (g *Weighted[Node, W]) EdgesFrom(n Node) ([]Edge[Node, W], bool) {
	edges, ok := g.edges[n]
	return edges, ok
}

// Successors returns the neighbours of n along with the weights
// of the edges leading to them. It has the shape required by
// astar.Solve.
func (g *Weighted[Node, W]) Successors(n Node) iter.Seq2[Node, W] {
	return func(yield func(Node, W) bool) {
		for _, e := range g.edges[n] {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// Problem returns a Problem that searches g for the given goal node
// using the heuristic h. A nil h is treated as astar.Zero.
func (g *Weighted[Node, W]) Problem(goal Node, h func(Node) W) astar.Problem[Node, W] {
	if h == nil {
		h = astar.Zero[Node, W]
	}
	return astar.Funcs[Node, W]{
		SuccessorsFunc: g.Successors,
		HeuristicFunc:  h,
		GoalFunc:       func(n Node) bool { return n == goal },
	}
}
