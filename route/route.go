package route

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sheabunge/terrainpath/core"
)

// Sentinel errors for path reconstruction.
var (
	// ErrVertexOutOfRange indicates a source or target outside the table.
	ErrVertexOutOfRange = errors.New("route: vertex out of range")

	// ErrUnreachable indicates the target cannot be reached from the source.
	ErrUnreachable = errors.New("route: target unreachable")

	// ErrCycleDetected indicates reconstruction exceeded V steps (corrupt table).
	ErrCycleDetected = errors.New("route: cycle detected during reconstruction")

	// ErrMissingEdge indicates two consecutive path vertices are not joined by an edge.
	ErrMissingEdge = errors.New("route: no edge between consecutive vertices")
)

// arrow separates vertices in Path.String.
const arrow = " → "

// Path is an ordered vertex sequence from source to target (inclusive)
// together with its total accumulated weight.
type Path struct {
	Vertices []int `json:"vertices" yaml:"vertices"`
	Cost     int64 `json:"cost" yaml:"cost"`
}

// NextHopTable is the read-only view of an all-pairs result needed to
// reconstruct a path one hop at a time.
type NextHopTable interface {
	// Size returns V.
	Size() int
	// Next returns the first vertex after i on a shortest path to j, or core.NoVertex.
	Next(i, j int) int
	// Dist returns the shortest distance from i to j, or core.Infinity.
	Dist(i, j int) int64
}

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p.Vertices) }

// Source returns the first vertex, or core.NoVertex for a zero Path.
func (p Path) Source() int {
	if len(p.Vertices) == 0 {
		return core.NoVertex
	}

	return p.Vertices[0]
}

// Target returns the last vertex, or core.NoVertex for a zero Path.
func (p Path) Target() int {
	if len(p.Vertices) == 0 {
		return core.NoVertex
	}

	return p.Vertices[len(p.Vertices)-1]
}

// String renders the path as "0 → 1 → 2".
func (p Path) String() string {
	var sb strings.Builder
	for i, v := range p.Vertices {
		if i > 0 {
			sb.WriteString(arrow)
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// FromPredecessors rebuilds the path source→target from a predecessor array.
//
// prev[v] is the vertex before v on a shortest path from source (core.NoVertex
// for the source itself and for unreached vertices); dist[v] is the matching
// distance. The returned Path carries dist[target] as its cost.
//
// Steps:
//  1. Validate source/target against len(prev) and len(dist).
//  2. dist[target] at or above core.Infinity ⇒ ErrUnreachable.
//  3. Walk prev from target; hitting NoVertex before source ⇒ ErrUnreachable,
//     more than V hops ⇒ ErrCycleDetected.
//  4. Reverse into forward order.
//
// Complexity: O(path length), bounded by O(V).
func FromPredecessors(prev []int, dist []int64, source, target int) (Path, error) {
	n := len(prev)
	if len(dist) != n {
		return Path{}, fmt.Errorf("%w: prev has %d entries, dist has %d", ErrVertexOutOfRange, n, len(dist))
	}
	if err := checkVertices(n, source, target); err != nil {
		return Path{}, err
	}
	if dist[target] >= core.Infinity {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, target)
	}

	vertices := []int{target}
	for v := target; v != source; {
		v = prev[v]
		if v == core.NoVertex {
			return Path{}, fmt.Errorf("%w: predecessor chain of %d ends before %d", ErrUnreachable, target, source)
		}
		if v < 0 || v >= n {
			return Path{}, fmt.Errorf("%w: predecessor %d", ErrVertexOutOfRange, v)
		}
		// a simple path has at most n vertices
		if len(vertices) == n {
			return Path{}, fmt.Errorf("%w: %d→%d exceeds %d steps", ErrCycleDetected, source, target, n)
		}
		vertices = append(vertices, v)
	}
	slices.Reverse(vertices)

	return Path{Vertices: vertices, Cost: dist[target]}, nil
}

// FromNextHop rebuilds the path source→target by following t.Next hop by hop.
//
// The walk is bounded by V hops; exceeding it returns ErrCycleDetected.
// A NoVertex hop (including next[source][target] itself) returns ErrUnreachable.
//
// Complexity: O(path length), bounded by O(V).
func FromNextHop(t NextHopTable, source, target int) (Path, error) {
	n := t.Size()
	if err := checkVertices(n, source, target); err != nil {
		return Path{}, err
	}
	if source == target {
		return Path{Vertices: []int{source}, Cost: 0}, nil
	}
	if t.Next(source, target) == core.NoVertex || t.Dist(source, target) >= core.Infinity {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, target)
	}

	vertices := []int{source}
	for v := source; v != target; {
		v = t.Next(v, target)
		if v == core.NoVertex {
			return Path{}, fmt.Errorf("%w: next hop toward %d missing at %d", ErrUnreachable, target, vertices[len(vertices)-1])
		}
		if v < 0 || v >= n {
			return Path{}, fmt.Errorf("%w: next hop %d", ErrVertexOutOfRange, v)
		}
		if len(vertices) == n {
			return Path{}, fmt.Errorf("%w: %d→%d exceeds %d steps", ErrCycleDetected, source, target, n)
		}
		vertices = append(vertices, v)
	}

	return Path{Vertices: vertices, Cost: t.Dist(source, target)}, nil
}

// Cost sums the weights along vertices using, for each hop, the cheapest
// edge among any parallel edges. A single vertex costs 0.
//
// Returns ErrVertexOutOfRange for an invalid vertex and ErrMissingEdge when
// two consecutive vertices are not joined by an edge.
// Complexity: O(Σ deg(v)) over the path.
func Cost(g *core.Graph, vertices []int) (int64, error) {
	if len(vertices) == 0 {
		return 0, nil
	}
	if !g.HasVertex(vertices[0]) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, vertices[0])
	}

	var total int64
	for i := 1; i < len(vertices); i++ {
		from, to := vertices[i-1], vertices[i]
		if !g.HasVertex(to) {
			return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, to)
		}
		best, found := int64(0), false
		for e := range g.EdgesFrom(from) {
			if e.To == to && (!found || e.Weight < best) {
				best, found = e.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %d→%d", ErrMissingEdge, from, to)
		}
		total += best
	}

	return total, nil
}

// checkVertices validates source and target against a table of n vertices.
func checkVertices(n, source, target int) error {
	if source < 0 || source >= n {
		return fmt.Errorf("%w: source %d with V=%d", ErrVertexOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return fmt.Errorf("%w: target %d with V=%d", ErrVertexOutOfRange, target, n)
	}

	return nil
}
