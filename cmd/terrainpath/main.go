package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheabunge/terrainpath/config"
	"github.com/sheabunge/terrainpath/gridgraph"
	"github.com/sheabunge/terrainpath/logger"
	"github.com/sheabunge/terrainpath/metrics"
	"github.com/sheabunge/terrainpath/mission"
	"github.com/sheabunge/terrainpath/terrain"
)

var (
	configDir = flag.String("config", ".", "directory searched for terrainpath.{yaml,json,toml}")
	seed      = flag.Int64("seed", 0, "terrain seed, 0 keeps the configured value (or the clock)")
	size      = flag.Int("size", 0, "terrain size (2^n + 1), 0 keeps the configured value")
	sample    = flag.Bool("sample", false, "use the built-in 5x5 sample terrain")
	wait      = flag.Bool("wait", false, "wait for Enter before exiting")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = serve(ctx, cfg, os.Stdin, os.Stdout, log); err != nil {
		log.Error("terrainpath failed", zap.Error(err))
		_ = log.Sync()
		stop()
		os.Exit(1)
	}
	_ = log.Sync()
}

// serve runs the missions and then either waits for Enter (wait) or, when a
// metrics endpoint is configured, keeps serving it until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.MetricsAddr != "" {
		eg.Go(func() error { return metrics.Serve(ctx, cfg.MetricsAddr, log) })
	}
	eg.Go(func() error {
		defer cancel()
		if err := run(ctx, cfg, out, log); err != nil {
			return err
		}
		switch {
		case cfg.Wait:
			waitForExit(ctx, in, out)
		case cfg.MetricsAddr != "":
			log.Info("missions done, serving metrics until interrupted", zap.String("addr", cfg.MetricsAddr))
			<-ctx.Done()
		}

		return nil
	})

	return eg.Wait()
}

// loadConfig reads the config and applies explicitly set flags on top.
// A zero -seed or -size leaves the configured value alone.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			if *seed != 0 {
				cfg.Seed = *seed
			}
		case "size":
			if *size != 0 {
				cfg.Size = *size
			}
		case "sample":
			cfg.Sample = *sample
		case "wait":
			cfg.Wait = *wait
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run generates the terrain, prints it, runs every mission concurrently and
// prints the reports in configured order.
func run(ctx context.Context, cfg *config.Config, out io.Writer, log *zap.Logger) error {
	style, err := terrain.ParseStyle(cfg.Render)
	if err != nil {
		return err
	}
	plans, err := buildPlans(cfg)
	if err != nil {
		return err
	}
	hf, err := buildTerrain(cfg, log)
	if err != nil {
		return err
	}

	if err = hf.Render(out, style); err != nil {
		return err
	}
	fmt.Fprint(out, "\n\n")

	reports, err := mission.RunAll(ctx, hf, plans, log)
	if err != nil {
		return err
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprint(out, "\n\n")
		}
		if err = r.Write(out, cfg.Report, style); err != nil {
			return err
		}
	}

	return nil
}

// buildTerrain returns the sample field or a freshly generated one.
// A zero seed takes the wall clock.
func buildTerrain(cfg *config.Config, log *zap.Logger) (*terrain.HeightField, error) {
	if cfg.Sample {
		return terrain.Sample(), nil
	}
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	hf, err := terrain.Generate(cfg.Size, cfg.EffectiveRoughness(), rand.New(rand.NewSource(s)))
	if err != nil {
		return nil, err
	}
	sum := hf.Summarize()
	log.Info("terrain generated",
		zap.Int64("seed", s),
		zap.Int("size", cfg.Size),
		zap.Int("roughness", cfg.EffectiveRoughness()),
		zap.Float64("min", sum.Min),
		zap.Float64("max", sum.Max),
		zap.Float64("mean", sum.Mean),
		zap.Float64("stddev", sum.StdDev),
	)

	return hf, nil
}

// buildPlans converts configured missions into plans.
func buildPlans(cfg *config.Config) ([]mission.Plan, error) {
	conn := gridgraph.Conn4
	if cfg.Connectivity == gridgraph.Conn8.String() {
		conn = gridgraph.Conn8
	}

	plans := make([]mission.Plan, 0, len(cfg.Missions))
	for _, m := range cfg.Missions {
		st, err := mission.ParseStrategy(m.Strategy)
		if err != nil {
			return nil, err
		}
		p := mission.NewPlan(st, m.Cost)
		p.Conn = conn
		if m.Source != nil {
			p.Source = *m.Source
		}
		if m.Target != nil {
			p.Target = *m.Target
		}
		plans = append(plans, p)
	}

	return plans, nil
}

// waitForExit blocks until a line is read from in or ctx is done.
func waitForExit(ctx context.Context, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "\npress enter to exit")
	done := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(in).ReadString('\n')
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
