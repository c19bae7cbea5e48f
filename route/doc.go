// Package route turns the scratch tables of the shortest-path engines into
// ordered vertex paths.
//
// Two reconstruction modes are supported:
//
//   - FromPredecessors: Dijkstra-style prev[] chain, walked target→source and
//     then reversed.
//   - FromNextHop: Floyd–Warshall-style next[i][j] matrix, walked source→target
//     in forward order.
//
// Both modes share one error contract:
//
//	ErrVertexOutOfRange - source or target is not a vertex of the table.
//	ErrUnreachable      - no path exists; never reported as an empty or zero-cost Path.
//	ErrCycleDetected    - the walk needed more than V steps. This means the table is
//	                      corrupt (an internal invariant violation), not a user error.
//
// A Path always contains at least one vertex: source == target yields the
// single-vertex path with cost 0.
//
// Cost re-computes the weight of a vertex sequence directly from a core.Graph,
// using the cheapest parallel edge for every hop. It is the independent check
// that a reconstructed path really costs what the engine reported.
package route
