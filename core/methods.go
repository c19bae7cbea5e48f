// File: methods.go
// Role: Graph construction, edge insertion and read-only queries.
// Determinism:
//   - EdgesFrom yields edges in insertion order.
// Concurrency:
//   - No locks. Reads are safe once mutation has stopped.

package core

import (
	"fmt"
	"iter"
)

// NewGraph creates a Graph with vertexCount vertices and no edges.
//
// Returns ErrInvalidVertexCount if vertexCount <= 0.
// Complexity: O(V).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, vertexCount)
	}

	return &Graph{
		adjacency: make([][]Edge, vertexCount),
	}, nil
}

// AddEdge appends a directed edge from→to with the given weight.
//
// Both endpoints must lie in [0, V). An out-of-range endpoint returns an error
// wrapping ErrInvalidEndpoint and the edge is not stored, so later traversals
// never see an index outside the graph.
//
// Parallel edges and self-loops are accepted as-is.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge %d→%d with V=%d", ErrInvalidEndpoint, from, to, len(g.adjacency))
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// EdgesFrom returns a restartable sequence over the outgoing edges of v,
// each edge exactly once, in insertion order. An out-of-range v yields nothing.
//
// The sequence reads the live adjacency slice; do not add edges to v while ranging.
// Complexity: O(deg(v)) per full iteration, no allocations.
func (g *Graph) EdgesFrom(v int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !g.HasVertex(v) {
			return
		}
		for _, e := range g.adjacency[v] {
			if !yield(e) {
				return
			}
		}
	}
}

// VertexCount returns V.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of stored edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// OutDegree returns the number of edges leaving v, or 0 if v is out of range.
func (g *Graph) OutDegree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adjacency[v])
}

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}
