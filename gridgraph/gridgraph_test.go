package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheabunge/terrainpath/core"
	"github.com/sheabunge/terrainpath/cost"
	"github.com/sheabunge/terrainpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, gg.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, gg.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

func TestIndexCoordinate(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2, 3}, {4, 5, 6}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, 6, gg.VertexCount())

	for idx := 0; idx < gg.VertexCount(); idx++ {
		r, c := gg.Coordinate(idx)
		assert.Equal(t, idx, gg.Index(r, c))
		assert.Equal(t, idx+1, gg.Value(r, c))
	}
	assert.Equal(t, 5, gg.Index(1, 2))
}

func TestNewGridGraph_DeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.NewGridGraph(src, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	src[0][0] = 99
	assert.Equal(t, 1, gg.Value(0, 0))
}

//----------------------------------------------------------------------------//
// ToGraph Tests
//----------------------------------------------------------------------------//

func edgesOf(g *core.Graph, v int) []core.Edge {
	var out []core.Edge
	for e := range g.EdgesFrom(v) {
		out = append(out, e)
	}

	return out
}

// TestToGraph_Conn4 verifies neighbor order (S, W, E, N) and delta-based weights.
func TestToGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{10, 12, 11},
		{13, 10, 10},
		{10, 10, 10},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g, err := gg.ToGraph(cost.ClimbDescend)
	require.NoError(t, err)
	require.Equal(t, 9, g.VertexCount())
	// 2·(R·(C-1) + C·(R-1)) directed moves
	assert.Equal(t, 24, g.EdgeCount())

	// Centre cell (1,1) = vertex 4 at height 10.
	assert.Equal(t, []core.Edge{
		{To: 7, Weight: 1},  // south: 10→10
		{To: 3, Weight: 10}, // west: 10→13, 1+3²
		{To: 5, Weight: 1},  // east: 10→10
		{To: 1, Weight: 5},  // north: 10→12, 1+2²
	}, edgesOf(g, 4))

	// Corner (0,0) only moves south then east.
	assert.Equal(t, []core.Edge{
		{To: 3, Weight: 10},
		{To: 1, Weight: 5},
	}, edgesOf(g, 0))

	// Downhill from (0,1)=12 to (1,1)=10 earns energy back: 1 + (-2).
	assert.Equal(t, core.Edge{To: 4, Weight: -1}, edgesOf(g, 1)[0])
}

// TestToGraph_Conn8 verifies diagonal connectivity.
func TestToGraph_Conn8(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {0, 1}}, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)
	assert.Equal(t, "conn8", gg.Conn.String())

	g, err := gg.ToGraph(cost.Flat)
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	targets := make([]int, 0, 3)
	for _, e := range edgesOf(g, 0) {
		targets = append(targets, e.To)
	}
	assert.Equal(t, []int{2, 1, 3}, targets)
}

func TestToGraph_SingleCell(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{42}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToGraph(cost.Climb)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestToGraph_NilCost(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	_, err = gg.ToGraph(nil)
	require.ErrorIs(t, err, gridgraph.ErrNilCost)
}

func TestConnectivity_MarshalText(t *testing.T) {
	for c, want := range map[gridgraph.Connectivity]string{gridgraph.Conn4: "conn4", gridgraph.Conn8: "conn8"} {
		b, err := c.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
}
