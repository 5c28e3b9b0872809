package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/scenario"
	"github.com/katalvlaran/tilepath/search"
)

func load(t *testing.T) *scenario.Scenario {
	t.Helper()
	s, err := scenario.Load(filepath.Join("testdata", "two_rooms.yaml"))
	require.NoError(t, err)

	return s
}

func TestLoad_Rooms(t *testing.T) {
	s := load(t)
	assert.Equal(t, []string{"flood", "north", "jump", "swamp"}, s.Names())

	provider := s.Provider()
	g, ok, err := provider(grid.MustRoom("W1N1"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint8(1), g.At(10, 10))

	for _, name := range []string{"W2N1", "E5S5"} {
		_, ok, err = provider(grid.MustRoom(name))
		require.NoError(t, err)
		assert.False(t, ok, name)
	}

	sim, ok, err := provider(grid.SimRoom)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint8(1), sim.At(0, 1))
	assert.Equal(t, uint8(4), sim.At(1, 1))
	assert.Equal(t, cost.Impassable, sim.At(1, 2))
	// rows past the terrain are plain
	assert.Equal(t, uint8(1), sim.At(30, 30))
}

func TestLoad_Missing(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_BFSFlood(t *testing.T) {
	out, err := load(t).Run("flood")
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []grid.RoomID{grid.MustRoom("W1N1")}, out.Rooms)
	assert.Equal(t, grid.RoomArea, out.Ops)
	assert.Equal(t, "frontier exhausted", out.Stop)
	assert.Nil(t, out.Path)
	assert.Equal(t, uint32(25), out.Distances.Get(grid.MustPosition("W1N1:0:0")))
}

func TestRun_AStarWithPath(t *testing.T) {
	out, err := load(t).Run("north")
	require.NoError(t, err)
	defer out.Release()

	dest := grid.MustPosition("W1N2:25:25")
	assert.Equal(t, []grid.Position{dest}, out.Found)
	assert.Equal(t, "any-of reached", out.Stop)
	require.NotNil(t, out.Path)
	assert.Equal(t, 51, out.Path.Len())
	first, _ := out.Path.At(0)
	last, _ := out.Path.At(out.Path.Len() - 1)
	assert.Equal(t, dest, first)
	assert.Equal(t, grid.MustPosition("W1N1:25:25"), last)
}

func TestRun_JPS(t *testing.T) {
	out, err := load(t).Run("jump")
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []grid.Position{grid.MustPosition("W1N2:25:27")}, out.Found)
	assert.Equal(t, "any-of reached", out.Stop)
	assert.Equal(t, 49, out.Path.Len())
	assert.ElementsMatch(t, []grid.RoomID{grid.MustRoom("W1N1"), grid.MustRoom("W1N2")}, out.Rooms)
}

func TestRun_DijkstraAvoidsSwamp(t *testing.T) {
	out, err := load(t).Run("swamp")
	require.NoError(t, err)
	defer out.Release()

	dest := grid.MustPosition("sim:9:1")
	assert.Equal(t, []grid.Position{dest}, out.Found)
	assert.Equal(t, uint32(9), out.Distances.Get(dest))
	assert.Equal(t, []grid.RoomID{grid.SimRoom}, out.Rooms)
}

func TestRun_UnknownQuery(t *testing.T) {
	_, err := load(t).Run("nope")
	assert.ErrorIs(t, err, scenario.ErrUnknownQuery)
}

func TestRun_SearchErrors(t *testing.T) {
	s, err := scenario.Parse([]byte(`
rooms:
  W1N1: {}
queries:
  - name: unbounded
    algorithm: bfs
    seeds: ["W1N1:1:1"]
  - name: negative
    algorithm: dijkstra
    seeds: ["W1N1:1:1"]
    budget: {max_ops: -1}
  - name: no-target
    algorithm: astar
    seeds: ["W1N1:1:1"]
    budget: {max_rooms: 1}
`))
	require.NoError(t, err)

	_, err = s.Run("unbounded")
	assert.ErrorIs(t, err, search.ErrUnbounded)
	_, err = s.Run("negative")
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = s.Run("no-target")
	assert.ErrorIs(t, err, astar.ErrNoDestinations)
}

func TestQuery_Options(t *testing.T) {
	s, err := scenario.Parse([]byte(`
queries:
  - name: q
    algorithm: dijkstra
    seeds: ["E0S0:1:1"]
    all_of: [{pos: "E0S0:5:5"}, {pos: "E1S0:5:5", range: 3}]
    budget: {max_rooms: 3, max_ops: 100, max_room_distance: 0, max_cost: 40}
`))
	require.NoError(t, err)
	q, err := s.Query("q")
	require.NoError(t, err)

	o, err := search.NewOptions(q.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 3, o.MaxRooms)
	assert.Equal(t, 100, o.MaxOps)
	assert.Equal(t, 0, o.MaxRoomDistance)
	assert.Equal(t, uint32(40), o.MaxCost)
	assert.Equal(t, search.GoalAllOf, o.Goal)
	assert.Equal(t, []search.Destination{
		{Pos: grid.MustPosition("E0S0:5:5")},
		{Pos: grid.MustPosition("E1S0:5:5"), Range: 3},
	}, o.Destinations)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"bad room", "rooms: {X1Y1: {default: 1}}", scenario.ErrUnknownRoom},
		{"bad terrain", "rooms: {W1N1: {terrain: ['..x']}}", cost.ErrBadTerrain},
		{"bad algorithm", "queries: [{name: q, algorithm: greedy, seeds: ['W1N1:1:1']}]", scenario.ErrUnknownAlgorithm},
		{"missing name", "queries: [{algorithm: bfs, seeds: ['W1N1:1:1']}]", scenario.ErrInvalidQuery},
		{"duplicate name", "queries: [{name: q, algorithm: bfs}, {name: q, algorithm: bfs}]", scenario.ErrInvalidQuery},
		{"jps seeds", "queries: [{name: q, algorithm: jps, seeds: ['W1N1:1:1', 'W1N1:2:2']}]", scenario.ErrInvalidQuery},
		{"bad seed", "queries: [{name: q, algorithm: bfs, seeds: ['W1N1:1']}]", grid.ErrInvalidPosition},
		{"bad target", "queries: [{name: q, algorithm: bfs, any_of: [{pos: 'W1N1:1:60'}]}]", grid.ErrCoordOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// decoder errors
	_, err := scenario.Parse([]byte("rooms: [1, 2]"))
	assert.Error(t, err)
	_, err = scenario.Parse([]byte("rooms: {W1N1: {default: 300}}"))
	assert.Error(t, err)
}
