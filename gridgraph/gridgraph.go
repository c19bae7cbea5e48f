// Package gridgraph turns a rectangular grid of heights into a directed
// core.Graph whose edge weights come from a cost.Func.
//
// Cell (row, col) becomes vertex row*Cols + col. Every cell gets one outgoing
// edge per in-bounds neighbor, weighted by fn(height[neighbor] - height[cell]).
package gridgraph

import (
	"fmt"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/cost"
)

var (
	conn4Offsets = [][2]int{{1, 0}, {0, -1}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{1, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &GridGraph{
		Rows:            rows,
		Cols:            cols,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets in move order.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// VertexCount returns Rows×Cols.
func (gg *GridGraph) VertexCount() int { return gg.Rows * gg.Cols }

// Value returns the height at (row, col). The caller must check InBounds.
func (gg *GridGraph) Value(row, col int) int { return gg.cells[row][col] }

// Index maps (row, col) to a row-major vertex index: row*Cols + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}

// ToGraph converts the grid into a directed *core.Graph with Rows×Cols vertices.
// For each cell, in row-major order, one edge per in-bounds neighbor is added
// in NeighborOffsets order with weight fn(neighbor height - cell height).
// Complexity: O(R×C×d) time and memory, d = 4 or 8.
func (gg *GridGraph) ToGraph(fn cost.Func) (*core.Graph, error) {
	if fn == nil {
		return nil, ErrNilCost
	}
	g, err := core.NewGraph(gg.VertexCount())
	if err != nil {
		return nil, err
	}
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			from := gg.Index(r, c)
			for _, d := range gg.neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !gg.InBounds(nr, nc) {
					continue
				}
				w := fn(gg.cells[nr][nc] - gg.cells[r][c])
				if err = g.AddEdge(from, gg.Index(nr, nc), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
