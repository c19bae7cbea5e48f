// Package dijkstra implements Dijkstra's label-setting shortest-path algorithm
// on core.Graph.
//
// Notes on implementation choices:
//
//   - The reference frontier is a linear scan over unvisited vertices (O(V²)),
//     which is simple and fast enough for a few thousand vertices.
//   - FrontierHeap swaps in a "lazy" decrease-key heap; stale entries are
//     skipped when popped. Output is identical to the linear scan.
//   - Relaxation skips already-visited targets, the standard label-setting rule.
//   - A vertex still at core.Infinity when settled relaxes nothing, so an
//     unreached vertex can never make its neighbors look reachable.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/route"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a vertex of g (ErrVertexNotFound).
//  3. In strict mode no edge may be negative (ErrNegativeWeight).
//
// Without strict mode negative weights are accepted and the label-setting rule
// is applied as-is; the result may then be suboptimal.
//
// Complexity:
//
//   - FrontierLinear: Time O(V² + E), Space O(V)
//   - FrontierHeap:   Time O((V + E) log V), Space O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d with V=%d", ErrVertexNotFound, source, g.VertexCount())
	}

	// 3) Strict mode: fail fast on the first negative edge.
	if cfg.NonNegativeWeights {
		if err := checkNonNegative(g); err != nil {
			return nil, err
		}
	}

	// 4) Run
	r := newRunner(g, source)
	switch cfg.Frontier {
	case FrontierHeap:
		r.runHeap()
	default:
		r.runLinear()
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// ShortestPath runs Dijkstra from source and reconstructs the path to target.
//
// Returns ErrVertexNotFound for an invalid target and an error wrapping
// route.ErrUnreachable if no path exists.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (route.Path, error) {
	res, err := Dijkstra(g, source, opts...)
	if err != nil {
		return route.Path{}, err
	}
	if !g.HasVertex(target) {
		return route.Path{}, fmt.Errorf("%w: target %d with V=%d", ErrVertexNotFound, target, g.VertexCount())
	}

	return res.PathTo(target)
}

// checkNonNegative scans every edge once. O(E).
func checkNonNegative(g *core.Graph) error {
	for u := 0; u < g.VertexCount(); u++ {
		for e := range g.EdgesFrom(u) {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	n       int         // vertex count
	dist    []int64     // vertex → current best distance from source
	prev    []int       // vertex → predecessor on the best path
	visited *bit.Set    // settled vertices
}

// newRunner sets dist[v] = Infinity, prev[v] = NoVertex for all v and dist[source] = 0.
func newRunner(g *core.Graph, source int) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		n:       n,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: new(bit.Set),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Infinity
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = 0

	return r
}

// runLinear settles exactly V vertices, each round scanning for the unvisited
// vertex with minimum distance. The strict "<" keeps the first (smallest)
// index on ties.
func (r *runner) runLinear() {
	for round := 0; round < r.n; round++ {
		u := core.NoVertex
		for v := 0; v < r.n; v++ {
			if r.visited.Contains(v) {
				continue
			}
			if u == core.NoVertex || r.dist[v] < r.dist[u] {
				u = v
			}
		}

		r.visited.Add(u)
		r.relax(u, nil)
	}
}

// runHeap settles vertices in (distance, index) order using a lazy heap.
// Vertices never pushed stay at Infinity, exactly as the linear scan leaves them.
func (r *runner) runHeap() {
	pq := make(nodePQ, 0, r.n)
	heap.Init(&pq)
	for v := 0; v < r.n; v++ {
		if r.dist[v] < core.Infinity {
			heap.Push(&pq, &nodeItem{id: v, dist: r.dist[v]})
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		// Skip stale heap entries.
		if r.visited.Contains(item.id) {
			continue
		}
		r.visited.Add(item.id)
		r.relax(item.id, &pq)
	}
}

// relax examines each edge leaving u and improves unvisited neighbors.
// When pq is non-nil every improvement is also pushed onto the heap.
func (r *runner) relax(u int, pq *nodePQ) {
	if r.dist[u] >= core.Infinity {
		return
	}

	for e := range r.g.EdgesFrom(u) {
		if r.visited.Contains(e.To) {
			continue
		}
		alt := r.dist[u] + e.Weight
		if alt >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = alt
		r.prev[e.To] = u
		if pq != nil {
			heap.Push(pq, &nodeItem{id: e.To, dist: alt})
		}
	}
}

// nodeItem represents a vertex and its distance at the time it was pushed.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by vertex index.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance and breaks ties by the smaller vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
