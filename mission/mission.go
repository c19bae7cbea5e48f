package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheabunge/terrainpath/cost"
	"github.com/sheabunge/terrainpath/gridgraph"
	"github.com/sheabunge/terrainpath/metrics"
	"github.com/sheabunge/terrainpath/route"
	"github.com/sheabunge/terrainpath/terrain"
)

// ErrNilHeightField indicates Run was given no terrain.
var ErrNilHeightField = errors.New("mission: height field is nil")

// LastCell as a Plan target selects the bottom-right cell.
const LastCell = -1

// Plan describes one mission.
type Plan struct {
	Strategy Strategy               `yaml:"strategy"`
	Cost     string                 `yaml:"cost"`
	Conn     gridgraph.Connectivity `yaml:"connectivity"`
	Source   int                    `yaml:"source"`
	Target   int                    `yaml:"target"`
}

// NewPlan returns a plan from the top-left to the bottom-right cell with Conn4 moves.
func NewPlan(strategy Strategy, costName string) Plan {
	return Plan{Strategy: strategy, Cost: costName, Conn: gridgraph.Conn4, Source: 0, Target: LastCell}
}

// Run executes p over hf.
//
// Steps:
//  1. Resolve the cost function and the finder.
//  2. Build the grid graph from hf.
//  3. Search source → target (ctx is checked right before).
//  4. Summarize hf and plot the route on a clone of it.
//
// Every attempt that reaches step 3 is recorded in the metrics package.
func Run(ctx context.Context, hf *terrain.HeightField, p Plan, log *zap.Logger) (*Report, error) {
	if hf == nil {
		return nil, ErrNilHeightField
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("strategy", string(p.Strategy)), zap.String("cost", p.Cost))

	// 1) Resolve cost and engine.
	fn, err := cost.Lookup(p.Cost)
	if err != nil {
		return nil, err
	}
	find, err := p.Strategy.Finder()
	if err != nil {
		return nil, err
	}
	if p.Strategy == Dijkstra && !cost.NonNegative(p.Cost) {
		log.Warn("cost function can produce negative weights; dijkstra may return a costlier route")
	}

	// 2) Build the graph. Duration covers build and search.
	start := time.Now()
	gg, err := gridgraph.NewGridGraph(hf.Values(), gridgraph.GridOptions{Conn: p.Conn})
	if err != nil {
		return nil, err
	}
	g, err := gg.ToGraph(fn)
	if err != nil {
		return nil, err
	}
	if p.Target == LastCell {
		p.Target = g.VertexCount() - 1
	}
	log.Debug("graph built",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("source", p.Source),
		zap.Int("target", p.Target),
	)

	// 3) Search.
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	path, err := find(g, p.Source, p.Target)
	elapsed := time.Since(start)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, route.ErrUnreachable) {
			outcome = metrics.OutcomeUnreachable
		}
		metrics.ObserveMission(string(p.Strategy), outcome, elapsed.Seconds(), 0)
		log.Error("mission failed", zap.Error(err), zap.Duration("elapsed", elapsed))

		return nil, fmt.Errorf("mission %s/%s: %w", p.Strategy, p.Cost, err)
	}
	metrics.ObserveMission(string(p.Strategy), metrics.OutcomeOK, elapsed.Seconds(), path.Cost)

	// 4) Plot.
	summary := hf.Summarize()
	plotted := hf.Clone()
	if err = plotted.Traverse(path); err != nil {
		return nil, err
	}
	log.Info("mission complete",
		zap.Int64("energy", path.Cost),
		zap.Int("steps", path.Len()-1),
		zap.Duration("elapsed", elapsed),
	)

	return &Report{
		Plan:     p,
		Path:     path,
		Energy:   path.Cost,
		Duration: elapsed,
		Terrain:  summary,
		Map:      plotted,
	}, nil
}

// RunAll runs every plan concurrently over the shared, read-only hf and
// returns the reports in plan order. The first failure cancels the rest.
func RunAll(ctx context.Context, hf *terrain.HeightField, plans []Plan, log *zap.Logger) ([]*Report, error) {
	reports := make([]*Report, len(plans))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range plans {
		eg.Go(func() error {
			r, err := Run(ctx, hf, p, log)
			if err != nil {
				return err
			}
			reports[i] = r

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
