package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
)

// splitRoom has a full-height wall at x=25, a walled-in tile at (10,10) and
// a border tile (0,10) cut off from the interior.
func splitRoom() *cost.Grid {
	g := cost.NewFilled(1)
	for y := 0; y < grid.RoomSize; y++ {
		g.Set(grid.MustCoord(25, y), cost.Impassable)
	}
	for _, d := range grid.Directions {
		n, _ := grid.MustCoord(10, 10).Step(d)
		g.Set(n, cost.Impassable)
	}
	for y := 9; y <= 11; y++ {
		g.Set(grid.MustCoord(1, y), cost.Impassable)
	}

	return g
}

func TestComponents_Labels(t *testing.T) {
	r, err := bfs.Components(splitRoom())
	require.NoError(t, err)

	require.Equal(t, 4, r.Count())
	assert.Equal(t, 1, r.Label(grid.MustCoord(0, 0)))
	assert.Equal(t, 2, r.Label(grid.MustCoord(26, 0)))
	assert.Equal(t, 3, r.Label(grid.MustCoord(0, 10)))
	assert.Equal(t, 4, r.Label(grid.MustCoord(10, 10)))
	assert.Zero(t, r.Label(grid.MustCoord(25, 30)))

	sizes := []int{1237, 1200, 1, 1}
	for i, want := range sizes {
		got, err := r.Size(i + 1)
		require.NoError(t, err)
		assert.Equal(t, want, got, "region %d", i+1)
	}

	tiles, err := r.Tiles(4)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{grid.MustCoord(10, 10)}, tiles)
}

func TestComponents_Connected(t *testing.T) {
	r, err := bfs.Components(splitRoom())
	require.NoError(t, err)

	assert.True(t, r.Connected(grid.MustCoord(0, 0), grid.MustCoord(24, 49)))
	assert.False(t, r.Connected(grid.MustCoord(0, 0), grid.MustCoord(26, 0)))
	assert.False(t, r.Connected(grid.MustCoord(0, 10), grid.MustCoord(0, 20)))
	assert.False(t, r.Connected(grid.MustCoord(25, 0), grid.MustCoord(25, 1)))
}

// a region is exactly what a flood from one of its tiles reaches
func TestComponents_MatchesDistanceMap(t *testing.T) {
	g := splitRoom()
	r, err := bfs.Components(g)
	require.NoError(t, err)

	dm, err := bfs.DistanceMap(g, []grid.Coord{grid.MustCoord(40, 40)})
	require.NoError(t, err)
	dm.Each(func(c grid.Coord, _ uint32) {
		assert.Equal(t, 2, r.Label(c), "tile (%d,%d)", c.X, c.Y)
	})
	size, err := r.Size(2)
	require.NoError(t, err)
	assert.Equal(t, size, dm.Reachable())
}

func TestComponents_Errors(t *testing.T) {
	_, err := bfs.Components(nil)
	assert.ErrorIs(t, err, cost.ErrInvalidCostGrid)

	r, err := bfs.Components(cost.NewFilled(cost.Impassable))
	require.NoError(t, err)
	assert.Zero(t, r.Count())
	_, err = r.Size(1)
	assert.ErrorIs(t, err, bfs.ErrRegionIndex)
	_, err = r.Tiles(0)
	assert.ErrorIs(t, err, bfs.ErrRegionIndex)
}
