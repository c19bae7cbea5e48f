package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheabunge/terrainpath/cost"
)

func TestClimb(t *testing.T) {
	cases := []struct {
		delta int
		want  int64
	}{
		{0, 1}, {1, 2}, {3, 10}, {-5, 1}, {99, 9802},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cost.Climb(tc.delta), "delta %d", tc.delta)
	}
}

func TestClimbDescend(t *testing.T) {
	cases := []struct {
		delta int
		want  int64
	}{
		{0, 1}, {2, 5}, {-1, 0}, {-4, -3}, {-99, -98},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cost.ClimbDescend(tc.delta), "delta %d", tc.delta)
	}
}

func TestClimbDescend_NoNegativeRoundTrip(t *testing.T) {
	// Going up and straight back down must never be profitable.
	for d := 0; d <= 99; d++ {
		assert.Positive(t, cost.ClimbDescend(d)+cost.ClimbDescend(-d), "delta %d", d)
	}
}

func TestFlat(t *testing.T) {
	assert.Equal(t, int64(1), cost.Flat(-40))
	assert.Equal(t, int64(1), cost.Flat(40))
}

func TestLookup(t *testing.T) {
	for _, name := range cost.Names() {
		fn, err := cost.Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, fn, name)
	}

	fn, err := cost.Lookup("climb-descend")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), fn(-4))

	_, err = cost.Lookup("teleport")
	require.ErrorIs(t, err, cost.ErrUnknownCost)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"climb", "climb-descend", "flat"}, cost.Names())
	assert.True(t, cost.NonNegative("climb"))
	assert.False(t, cost.NonNegative("climb-descend"))
}
