package mission

import (
	"errors"
	"fmt"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/dijkstra"
	"github.com/sheabunge/terrainpath/floydwarshall"
	"github.com/sheabunge/terrainpath/route"
)

// ErrUnknownStrategy indicates an unsupported strategy name.
var ErrUnknownStrategy = errors.New("mission: unknown strategy")

// Strategy names a shortest-path engine.
type Strategy string

const (
	Dijkstra      Strategy = "dijkstra"
	FloydWarshall Strategy = "floyd-warshall"
)

// Finder returns the cheapest path from source to target in g.
type Finder func(g *core.Graph, source, target int) (route.Path, error)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case Dijkstra, FloydWarshall:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Finder returns the engine behind s.
func (s Strategy) Finder() (Finder, error) {
	switch s {
	case Dijkstra:
		return func(g *core.Graph, source, target int) (route.Path, error) {
			return dijkstra.ShortestPath(g, source, target)
		}, nil
	case FloydWarshall:
		return floydwarshall.ShortestPath, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}
