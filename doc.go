// Package terrainpath finds least-energy routes across square height fields
// ("digital elevation maps") with two interchangeable shortest-path engines.
//
// 🚀 What is terrainpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Graph store: fixed vertex count, signed int64 weights, parallel edges
//		• Dijkstra: single source, linear-scan or heap frontier
//		• Floyd–Warshall: all pairs, exact with negative weights
//		• Route reconstruction from predecessor or next-hop tables
//		• Terrain: midpoint-displacement generation, ASCII and numeric rendering
//		• Missions: terrain → graph → route → plotted map + total energy
//
// Under the hood, everything is organized into subpackages:
//
//	core/          — Graph, Edge and the Infinity / NoVertex sentinels
//	dijkstra/      — label-setting single-source engine
//	floydwarshall/ — all-pairs engine with a next-hop matrix
//	route/         — Path type, reconstruction and re-costing
//	gridgraph/     — height grid → core.Graph via a cost function
//	cost/          — named elevation-delta → weight functions
//	terrain/       — height field generation, plotting and statistics
//	mission/       — one or many route searches over a height field
//	config/, logger/, metrics/ — viper configuration, zap logging, prometheus
//	cmd/terrainpath — the command-line driver
//
// Quick start:
//
//	hf, _ := terrain.Generate(33, 132, rand.New(rand.NewSource(1)))
//	r, _ := mission.Run(ctx, hf, mission.NewPlan(mission.Dijkstra, "climb"), log)
//	_ = r.WriteText(os.Stdout, terrain.StyleASCII)
//
// Vertices are dense indices; cell (row, col) of a size×size field is vertex
// row*size + col. Unreachable distances are core.Infinity (MaxInt64/2) so that
// adding two of them never overflows.
package terrainpath
