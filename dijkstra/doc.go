// Package dijkstra provides a label-setting implementation of Dijkstra's
// single-source shortest-path algorithm on core.Graph.
//
// Overview:
//
//   - Dijkstra settles one vertex per round: the unvisited vertex with the
//     smallest known distance, ties broken by the smallest vertex index.
//   - Each settled vertex relaxes its outgoing edges towards unvisited vertices.
//   - After V rounds Dist and Prev are final; Result.PathTo rebuilds any path.
//
// Frontiers:
//
//   - FrontierLinear (default): a linear scan over unvisited vertices each round.
//     O(V²) overall, an explicit simplicity-over-asymptotics choice for grids
//     of a few thousand cells.
//   - FrontierHeap: container/heap with lazy decrease-key, O((V + E) log V).
//     Ordered by (distance, index) so that Dist and Prev match the linear scan
//     exactly.
//
// Distances:
//
//   - Unreached vertices keep core.Infinity (MaxInt64/2), never MaxInt64, so
//     dist[u] + weight cannot overflow for any reached u.
//   - PathTo on an unreached vertex returns an error wrapping route.ErrUnreachable,
//     never a truncated path.
//
// Negative weights:
//
//   - Label-setting is only correct for non-negative weights. Terrain cost
//     functions such as cost.ClimbDescend make downhill moves negative.
//   - By default such graphs are accepted and processed with the same rules;
//     the answer is deterministic but may be suboptimal. This is a known
//     limitation, pinned by tests.
//   - WithNonNegativeWeights() rejects them up front with ErrNegativeWeight.
//   - Use the floydwarshall package for exact answers with negative weights.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source (or target in ShortestPath) outside [0, V).
//   - ErrNegativeWeight: strict mode found a negative edge.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent runs on a graph that is no
//     longer mutated are safe. Each run owns its Result.
package dijkstra
