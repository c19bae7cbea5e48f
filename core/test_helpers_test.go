// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheabunge/terrainpath/core"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
)

// Common weights used across core tests.
const (
	WeightNeg3 = -3
	Weight1    = 1
	Weight3    = 3
	Weight5    = 5
)

// MustGraph builds a graph with n vertices or fails the test.
func MustGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err, "NewGraph(%d)", n)

	return g
}

// MustEdge adds from→to or fails the test.
func MustEdge(t testing.TB, g *core.Graph, from, to int, w int64) {
	t.Helper()
	require.NoError(t, g.AddEdge(from, to, w), "AddEdge(%d,%d,%d)", from, to, w)
}

// CollectEdges materializes EdgesFrom(v) into a slice.
func CollectEdges(g *core.Graph, v int) []core.Edge {
	return slices.Collect(g.EdgesFrom(v))
}
