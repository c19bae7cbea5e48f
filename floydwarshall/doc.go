// Package floydwarshall computes all-pairs shortest paths on core.Graph with
// the Floyd–Warshall dynamic program and a next-hop matrix for reconstruction.
//
// Layout:
//
//   - Dist and Next are V×V, stored flat in row-major order (index i*V + j).
//   - Dist(i, j) is core.Infinity when j is unreachable from i.
//   - Next(i, j) is the first vertex after i on a shortest i→j path, or
//     core.NoVertex when no such path exists (including i == j).
//
// Semantics:
//
//   - Parallel edges collapse to their minimum weight.
//   - Non-negative self-loops never lower the diagonal; Dist(i, i) starts at 0.
//     A negative self-loop is a negative cycle.
//   - The closure runs k → i → j with strict improvement only and skips any
//     term still at core.Infinity, so sums never overflow.
//   - Negative edge weights are supported. A negative cycle is detected as soon
//     as a diagonal entry drops below zero and reported as ErrNegativeCycle.
//
// Complexity: Time O(V³), Space O(V²). A 33×33 grid (V = 1089) needs two
// matrices of about 1.2M entries each. Graphs above MaxVertices are refused
// with ErrTooLarge before anything is allocated.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNegativeCycle, ErrTooLarge; reconstruction
// errors come from the route package (route.ErrUnreachable and friends).
package floydwarshall
