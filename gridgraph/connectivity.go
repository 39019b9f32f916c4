package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Graph is an undirected simple graph over the vertex ids [0, Order).
// Edges are never removed. Each adjacency list keeps insertion order, which
// is the order BFS expands neighbors in.
type Graph struct {
	adj   [][]int
	edges int
}

// NewGraph returns an edgeless graph with order vertices.
// Returns ErrEmptyGrid if order is not positive.
func NewGraph(order int) (*Graph, error) {
	if order <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Graph{adj: make([][]int, order)}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

func (g *Graph) valid(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// AddEdge links a and b in both directions. Self-loops and edges that
// already exist are skipped and report false. Returns ErrOutOfBounds if
// either id is not a vertex.
// Complexity: O(deg(a)).
func (g *Graph) AddEdge(a, b int) (bool, error) {
	if !g.valid(a) || !g.valid(b) {
		return false, fmt.Errorf("%w: edge %d-%d on graph of order %d", ErrOutOfBounds, a, b, len(g.adj))
	}
	if a == b || g.contains(a, b) {
		return false, nil
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.edges++
	return true, nil
}

func (g *Graph) contains(a, b int) bool {
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// HasEdge reports whether a and b are adjacent. Invalid ids report false.
func (g *Graph) HasEdge(a, b int) bool {
	return g.valid(a) && g.valid(b) && g.contains(a, b)
}

// Neighbors returns a copy of v's adjacency list in insertion order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.valid(v) {
		return nil, fmt.Errorf("%w: vertex %d on graph of order %d", ErrOutOfBounds, v, len(g.adj))
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// Degree returns the number of neighbors of v, or 0 for an invalid id.
func (g *Graph) Degree(v int) int {
	if !g.valid(v) {
		return 0
	}
	return len(g.adj[v])
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// String lists every vertex that has neighbors, one per line:
// "Node 12: 13, 22, 23".
func (g *Graph) String() string {
	var sb strings.Builder
	for v, nbrs := range g.adj {
		if len(nbrs) == 0 {
			continue
		}
		sb.WriteString("Node ")
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(":")
		for i, n := range nbrs {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
