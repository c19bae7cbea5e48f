// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"errors"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/route"
)

// Sentinel errors returned by the Floyd–Warshall implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrVertexNotFound indicates a source or target outside [0, V).
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found in graph")

	// ErrNegativeCycle indicates the graph contains a cycle of negative total weight.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")

	// ErrTooLarge indicates the graph has more than MaxVertices vertices.
	ErrTooLarge = errors.New("floydwarshall: graph too large")
)

// MaxVertices bounds V so that the two V×V matrices stay near 1 GiB.
const MaxVertices = 1 << 13

// Table is the all-pairs result. It satisfies route.NextHopTable.
type Table struct {
	n    int
	dist []int64
	next []int
}

var _ route.NextHopTable = (*Table)(nil)

// Size returns V.
func (t *Table) Size() int { return t.n }

// Dist returns the shortest distance from i to j, core.Infinity if unreachable
// or if either index is out of range.
func (t *Table) Dist(i, j int) int64 {
	if !t.inRange(i, j) {
		return core.Infinity
	}

	return t.dist[i*t.n+j]
}

// Next returns the vertex following i on a shortest path to j, or core.NoVertex.
func (t *Table) Next(i, j int) int {
	if !t.inRange(i, j) {
		return core.NoVertex
	}

	return t.next[i*t.n+j]
}

// Reachable reports whether j can be reached from i.
func (t *Table) Reachable(i, j int) bool {
	return t.Dist(i, j) < core.Infinity
}

// Path reconstructs the shortest path from source to target.
func (t *Table) Path(source, target int) (route.Path, error) {
	return route.FromNextHop(t, source, target)
}

// Row returns a copy of the distances from i to every vertex, or nil if i is out of range.
func (t *Table) Row(i int) []int64 {
	if i < 0 || i >= t.n {
		return nil
	}
	row := make([]int64, t.n)
	copy(row, t.dist[i*t.n:(i+1)*t.n])

	return row
}

func (t *Table) inRange(i, j int) bool {
	return i >= 0 && i < t.n && j >= 0 && j < t.n
}
