// Package dijkstra defines the result type, configuration options and
// sentinel errors for the single-source label-setting engine.
//
// Options:
//
//	– WithFrontier:          how the next vertex to settle is selected
//	                         (FrontierLinear, the default, or FrontierHeap).
//	– WithNonNegativeWeights: reject graphs containing any negative edge.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target is not a vertex of the graph.
//	– ErrNegativeWeight  if strict mode is on and a negative edge exists.
//	– ErrBadFrontier     if WithFrontier receives an unknown value.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := res.PathTo(8)
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/route"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight under WithNonNegativeWeights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadFrontier indicates WithFrontier was given an unknown Frontier.
	ErrBadFrontier = errors.New("dijkstra: unknown frontier")
)

// Frontier selects how the unvisited vertex with minimum distance is found.
//
// FrontierLinear – scan all unvisited vertices each round, O(V²) overall.
// FrontierHeap   – binary heap with lazy decrease-key, O((V + E) log V).
//
// Both break ties by the smallest vertex index and produce identical Results.
type Frontier int

const (
	// FrontierLinear is the reference linear scan.
	FrontierLinear Frontier = iota

	// FrontierHeap uses container/heap ordered by (distance, index).
	FrontierHeap
)

// String returns the frontier name.
func (f Frontier) String() string {
	switch f {
	case FrontierLinear:
		return "linear"
	case FrontierHeap:
		return "heap"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Frontier           – vertex selection strategy. Default FrontierLinear.
// NonNegativeWeights – if true, fail with ErrNegativeWeight on any negative edge.
type Options struct {
	Frontier           Frontier
	NonNegativeWeights bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithFrontier sets the vertex selection strategy.
// Panics on an unknown value to signal invalid configuration early.
func WithFrontier(f Frontier) Option {
	if f != FrontierLinear && f != FrontierHeap {
		panic(fmt.Sprintf("%s: %d", ErrBadFrontier, int(f)))
	}

	return func(o *Options) {
		o.Frontier = f
	}
}

// WithNonNegativeWeights turns on strict mode: an O(E) pre-scan rejects any
// negative edge with ErrNegativeWeight instead of running a label-setting
// search whose answer could be suboptimal.
func WithNonNegativeWeights() Option {
	return func(o *Options) {
		o.NonNegativeWeights = true
	}
}

// DefaultOptions returns the linear frontier in permissive mode.
func DefaultOptions() Options {
	return Options{
		Frontier:           FrontierLinear,
		NonNegativeWeights: false,
	}
}

// Result is the distance table produced by one Dijkstra run.
//
// Dist[v] is the shortest known distance from Source, core.Infinity if unreached.
// Prev[v] is the predecessor of v on that path, core.NoVertex for Source and unreached v.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] < core.Infinity
}

// Distance returns the shortest distance to v and whether v is reachable.
func (r *Result) Distance(v int) (int64, bool) {
	if !r.Reachable(v) {
		return core.Infinity, false
	}

	return r.Dist[v], true
}

// PathTo reconstructs the path from Source to target.
// Unreachable targets return an error wrapping route.ErrUnreachable.
func (r *Result) PathTo(target int) (route.Path, error) {
	return route.FromPredecessors(r.Prev, r.Dist, r.Source, target)
}
