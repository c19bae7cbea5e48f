// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/sheabunge/terrainpath.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNilCost indicates ToGraph was called without a cost function.
	ErrNilCost = errors.New("gridgraph: cost function is nil")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in the order S, W, E, N.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after the orthogonal moves: SW, SE, NW, NE.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// MarshalText encodes c by its String name.
func (c Connectivity) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats a 2D height grid as a graph. It is immutable once built.
// Rows and Cols define dimensions; cells[row][col] holds the input height.
// neighborOffsets is precomputed as (dRow, dCol) pairs for adjacency lookups.
type GridGraph struct {
	Rows, Cols      int
	Conn            Connectivity
	cells           [][]int
	neighborOffsets [][2]int
}
