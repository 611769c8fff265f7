// Package mermaid provides functionality for marshaling weighted graphs
// and search paths to Mermaid diagram format. Mermaid is a text-based
// diagramming tool that generates diagrams from markdown-like syntax.
package mermaid

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rogpeppe/bestfirst/astar"
	"github.com/rogpeppe/bestfirst/graph"
)

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	// It returns an error if the marshaling fails.
	MarshalMermaid() ([]byte, error)
}

// GraphInterface defines the interface required for a weighted graph
// to be marshaled to Mermaid format. *graph.Weighted provides all
// but NodeInfo.
type GraphInterface[Node comparable, W astar.Cost] interface {
	// AllNodes returns all nodes in the graph.
	AllNodes() []Node
	// EdgesFrom returns the edges leading out of a node.
	EdgesFrom(Node) ([]graph.Edge[Node, W], bool)
	// NodeInfo returns metadata about a node, including its ID, display text, and style.
	NodeInfo(Node) NodeInfo
}

// NodeInfo contains metadata about a node for Mermaid rendering.
type NodeInfo struct {
	// ID is the unique identifier for the node in the Mermaid diagram.
	ID string
	// Text is the display text for the node. If empty, ID is used instead.
	Text string
	// Style contains Mermaid style declarations for the node (e.g., "fill:#f9f,stroke:#333").
	Style string
}

// NewGraph creates a Marshaler from a GraphInterface. Each edge is
// labeled with its weight.
func NewGraph[Node comparable, W astar.Cost](g GraphInterface[Node, W]) Marshaler {
	return &graphImpl[Node, W]{g}
}

type graphImpl[Node comparable, W astar.Cost] struct {
	g GraphInterface[Node, W]
}

func (g *graphImpl[Node, W]) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for _, n := range g.g.AllNodes() {
		info := g.g.NodeInfo(n)
		writeNode(&buf, info)
		edges, _ := g.g.EdgesFrom(n)
		for _, e := range edges {
			writeEdge(&buf, info.ID, g.g.NodeInfo(e.To).ID, fmt.Sprint(e.Weight))
		}
	}
	return buf.Bytes(), nil
}

// PathOptions holds optional rendering hooks for NewPath.
type PathOptions[S any, C astar.Cost] struct {
	// NodeInfo returns the rendering of the i'th state in the path.
	// If it is nil, nodes are given IDs s0, s1, ... and their text
	// is the state formatted with %v.
	NodeInfo func(i int, s S) NodeInfo

	// EdgeLabel returns the label of the edge leading into a state
	// reached with the given step cost. If it is nil, the cost is
	// formatted with %v.
	EdgeLabel func(cost C) string
}

// NewPath creates a Marshaler that renders the path as a chain of
// nodes, each edge labeled with the cost of that step rather than
// the running total.
func NewPath[S any, C astar.Cost](p astar.Path[S, C], opts PathOptions[S, C]) Marshaler {
	return &pathImpl[S, C]{
		path: p,
		opts: opts,
	}
}

type pathImpl[S any, C astar.Cost] struct {
	path astar.Path[S, C]
	opts PathOptions[S, C]
}

func (p *pathImpl[S, C]) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	var prevID string
	var prevCost C
	for i, step := range p.path {
		info := p.nodeInfo(i, step.State)
		if info.ID == "" {
			return nil, fmt.Errorf("empty ID for path node %d", i)
		}
		writeNode(&buf, info)
		if i > 0 {
			writeEdge(&buf, prevID, info.ID, p.edgeLabel(step.Cost-prevCost))
		}
		prevID, prevCost = info.ID, step.Cost
	}
	return buf.Bytes(), nil
}

func (p *pathImpl[S, C]) nodeInfo(i int, s S) NodeInfo {
	if p.opts.NodeInfo != nil {
		return p.opts.NodeInfo(i, s)
	}
	return NodeInfo{
		ID:   fmt.Sprintf("s%d", i),
		Text: fmt.Sprint(s),
	}
}

func (p *pathImpl[S, C]) edgeLabel(cost C) string {
	if p.opts.EdgeLabel != nil {
		return p.opts.EdgeLabel(cost)
	}
	return fmt.Sprint(cost)
}

func writeNode(buf *bytes.Buffer, info NodeInfo) {
	if info.ID != info.Text && info.Text != "" {
		fmt.Fprintf(buf, "  %s[%s]\n", info.ID, quote(info.Text))
	}
	if info.Style != "" {
		fmt.Fprintf(buf, "  style %s %s\n", info.ID, info.Style)
	}
}

func writeEdge(buf *bytes.Buffer, from, to, label string) {
	if label == "" {
		fmt.Fprintf(buf, "  %s-->%s\n", from, to)
		return
	}
	fmt.Fprintf(buf, "  %s-->|%s|%s\n", from, quote(label), to)
}

// textEscaper replaces characters that Mermaid would otherwise
// interpret inside node text or edge labels.
var textEscaper = strings.NewReplacer(`"`, "#quot;", "|", "#124;")

// quote returns s as Mermaid text, quoting it if it contains
// anything but letters, digits and spaces.
func quote(s string) string {
	plain := strings.IndexFunc(s, func(r rune) bool {
		return !(r == ' ' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) < 0
	if plain {
		return s
	}
	return `"` + textEscaper.Replace(s) + `"`
}
