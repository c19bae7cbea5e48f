// Package gridgraph treats a rectangular height grid as a directed graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid indexed [row][col].
//   - ToGraph builds a *core.Graph with one vertex per cell (index row*Cols + col)
//     and one edge per in-bounds neighbor, weighted by a cost.Func of the
//     height difference destination - origin.
//   - Index and Coordinate convert between cells and vertex indices.
//
// Connectivity:
//
//   - Conn4: south, west, east, north, in that order.
//   - Conn8: the four orthogonal moves followed by SW, SE, NW, NE.
//
// Edge order matters: both shortest-path engines break ties by vertex index and
// insertion order, so a fixed neighbor order keeps routes reproducible.
//
// Complexity:
//
//   - NewGridGraph: O(R×C), Memory: O(R×C).
//   - ToGraph:      O(R×C×d), Memory: O(R×C×d)    (d = number of neighbors, 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNilCost: ToGraph was given a nil cost function.
package gridgraph
