// Package core defines the central Graph and Edge types, the distance
// sentinels shared by the shortest-path engines, and the sentinel errors
// for graph construction and mutation.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates NewGraph was asked for a graph with no vertices.
	ErrInvalidVertexCount = errors.New("core: vertex count must be positive")

	// ErrInvalidEndpoint indicates an edge endpoint outside [0, V).
	ErrInvalidEndpoint = errors.New("core: edge endpoint out of range")
)

// Infinity is the distance used for "no known path".
// It is far above any achievable path cost yet Infinity+Infinity cannot overflow int64.
const Infinity int64 = math.MaxInt64 / 2

// NoVertex marks an absent predecessor or next hop.
const NoVertex = -1

// Edge is a directed, weighted connection stored under its source vertex.
type Edge struct {
	// To is the destination vertex index.
	To int

	// Weight is the signed cost of traversing the edge.
	Weight int64
}

// Graph is an append-only directed multigraph over the vertices 0..V-1.
//
// adjacency[v] holds the outgoing edges of v in insertion order.
// edgeCount tracks the total number of stored edges.
type Graph struct {
	adjacency [][]Edge
	edgeCount int
}
