// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"fmt"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/route"
)

// FloydWarshall computes shortest distances and next hops between every pair
// of vertices of g.
//
// Steps:
//  1. Initialize: diagonal 0, everything else Infinity / NoVertex.
//  2. Load edges: keep the cheapest of any parallel edges. Non-negative
//     self-loops are ignored; a negative one is a negative cycle.
//  3. Closure over every intermediate k in increasing order.
//
// Returns ErrTooLarge before allocating when V exceeds MaxVertices, and
// ErrNegativeCycle as soon as some dist[i][i] drops below zero.
// Complexity: Time O(V³ + E), Space O(V²).
func FloydWarshall(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.VertexCount(); n > MaxVertices {
		return nil, fmt.Errorf("%w: V=%d exceeds %d", ErrTooLarge, n, MaxVertices)
	}

	t := newTable(g.VertexCount())
	if err := t.load(g); err != nil {
		return nil, err
	}
	if err := t.close(); err != nil {
		return nil, err
	}

	return t, nil
}

// ShortestPath runs FloydWarshall and reconstructs the source→target path.
// Prefer FloydWarshall plus Table.Path when querying more than one pair.
func ShortestPath(g *core.Graph, source, target int) (route.Path, error) {
	if g == nil {
		return route.Path{}, ErrNilGraph
	}
	n := g.VertexCount()
	if !g.HasVertex(source) {
		return route.Path{}, fmt.Errorf("%w: source %d with V=%d", ErrVertexNotFound, source, n)
	}
	if !g.HasVertex(target) {
		return route.Path{}, fmt.Errorf("%w: target %d with V=%d", ErrVertexNotFound, target, n)
	}

	t, err := FloydWarshall(g)
	if err != nil {
		return route.Path{}, err
	}

	return t.Path(source, target)
}

// newTable allocates both matrices with the diagonal at 0.
func newTable(n int) *Table {
	t := &Table{
		n:    n,
		dist: make([]int64, n*n),
		next: make([]int, n*n),
	}
	for i := range t.dist {
		t.dist[i] = core.Infinity
		t.next[i] = core.NoVertex
	}
	for i := 0; i < n; i++ {
		t.dist[i*n+i] = 0
	}

	return t
}

// load copies the edges of g into the table.
func (t *Table) load(g *core.Graph) error {
	for i := 0; i < t.n; i++ {
		base := i * t.n
		for e := range g.EdgesFrom(i) {
			if e.To == i {
				if e.Weight < 0 {
					return fmt.Errorf("%w: self-loop at %d with weight %d", ErrNegativeCycle, i, e.Weight)
				}
				continue
			}
			if e.Weight < t.dist[base+e.To] {
				t.dist[base+e.To] = e.Weight
				t.next[base+e.To] = e.To
			}
		}
	}

	return nil
}

// close runs the k → i → j relaxation in place.
func (t *Table) close() error {
	n := t.n
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	dist, next := t.dist, t.next

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = dist[baseI+k]
			if ik >= core.Infinity {
				continue
			}
			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if kj >= core.Infinity {
					continue
				}
				cand = ik + kj
				if cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
			// Stop before negative sums compound further.
			if dist[baseI+i] < 0 {
				return fmt.Errorf("%w: vertex %d reaches itself at cost %d", ErrNegativeCycle, i, dist[baseI+i])
			}
		}
	}

	return nil
}
