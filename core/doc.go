// Package core provides the append-only, dense-index directed Graph that every
// shortest-path engine in this module operates on.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are the integers 0..V-1; V is fixed by NewGraph.
//   - Edges are directed and carry a signed int64 weight.
//   - Parallel edges are kept as-is (no deduplication); self-loops are allowed.
//   - Adjacency is index-based: one growable []Edge per vertex, so there is no
//     node allocation or freeing and iteration is cache friendly.
//
// Core Methods:
//
//	NewGraph(vertexCount int) (*Graph, error)        // O(V)
//	AddEdge(from, to int, weight int64) error        // O(1) amortized
//	EdgesFrom(v int) iter.Seq[Edge]                  // O(deg(v)) per full iteration
//	VertexCount() int, EdgeCount() int               // O(1)
//	OutDegree(v int) int, HasVertex(v int) bool      // O(1)
//
// Errors:
//
//	ErrInvalidVertexCount - NewGraph called with vertexCount <= 0.
//	ErrInvalidEndpoint    - AddEdge called with from/to outside [0, V).
//	                        The edge is rejected; the graph stays fully queryable.
//
// Sentinels:
//
//	Infinity - int64 distance meaning "no known path". It is MaxInt64/2 so that
//	           Infinity+Infinity still fits in an int64.
//	NoVertex - -1, used as "none" for predecessors and next hops.
//
// Concurrency:
//
//	Graph performs no locking. Any number of goroutines may read a Graph that is
//	no longer being mutated; mutation concurrent with anything else is a data race.
//	Build one Graph per computation when running engines in parallel.
package core
