package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

var origin = grid.MustPosition("W1N1:25:25")

func seeds(ps ...grid.Position) []grid.Position { return ps }

func TestMultiroom_MaxCost(t *testing.T) {
	res, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()), search.WithMaxCost(10))
	require.NoError(t, err)
	assert.Equal(t, 21*21, res.Distances.Reachable())
	assert.Equal(t, []grid.RoomID{origin.Room()}, res.Rooms())
	assert.Equal(t, search.StopFrontier, res.Stop)
}

func TestMultiroom_MaxOps(t *testing.T) {
	res, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()), search.WithMaxOps(100))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Ops)
	assert.Equal(t, search.StopOps, res.Stop)
	small := res.Distances.Reachable()
	assert.Less(t, small, 250)

	// monotone in the budget
	res, err = bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()), search.WithMaxOps(200))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Distances.Reachable(), small)
}

func TestMultiroom_MaxRooms(t *testing.T) {
	calls := map[grid.RoomID]int{}
	provider := func(room grid.RoomID) (*cost.Grid, bool, error) {
		calls[room]++
		return cost.New(), true, nil
	}
	res, err := bfs.MultiroomDistanceMap(seeds(origin), provider, search.WithMaxRooms(2))
	require.NoError(t, err)
	assert.Len(t, res.Rooms(), 2)
	assert.Len(t, calls, 2, "provider must only be asked for admitted rooms")
	for room, n := range calls {
		assert.Equal(t, 1, n, "room %s fetched more than once", room)
	}
}

func TestMultiroom_MaxRoomDistance(t *testing.T) {
	res, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()), search.WithMaxRoomDistance(1))
	require.NoError(t, err)
	// origin plus its four orthogonal neighbours
	assert.Len(t, res.Rooms(), 5)
	for _, r := range res.Rooms() {
		assert.LessOrEqual(t, origin.Room().ManhattanDistance(r), 1)
	}
}

func TestMultiroom_CrossRoomDistance(t *testing.T) {
	north := grid.MustRoom("W1N2")
	provider := cost.Rooms(map[grid.RoomID]*cost.Grid{origin.Room(): cost.New(), north: cost.New()})
	res, err := bfs.MultiroomDistanceMap(seeds(origin), provider, search.WithMaxRooms(4))
	require.NoError(t, err)
	assert.Equal(t, uint32(50), res.Distances.Get(grid.MustPosition("W1N2:25:25")))
	assert.Equal(t, uint32(26), res.Distances.Get(grid.MustPosition("W1N2:25:49")))
	// rooms without a grid are not counted and stay unreachable
	assert.Equal(t, field.Unreachable, res.Distances.Get(grid.MustPosition("W0N1:0:25")))
	assert.Len(t, res.Rooms(), 2)
}

func TestMultiroom_SkippedRoomsStayUnreachable(t *testing.T) {
	provider := func(room grid.RoomID) (*cost.Grid, bool, error) {
		if room == origin.Room() {
			return cost.New(), true, nil
		}
		return nil, false, nil
	}
	res, err := bfs.MultiroomDistanceMap(seeds(origin), provider, search.WithMaxRooms(3))
	require.NoError(t, err)
	assert.Equal(t, grid.RoomArea, res.Distances.Reachable())
	assert.Equal(t, field.Unreachable, res.Distances.Get(grid.MustPosition("W1N2:25:25")))
}

func TestMultiroom_AnyOf(t *testing.T) {
	a := grid.MustPosition("W1N1:25:27")
	b := grid.MustPosition("W1N1:25:21")
	res, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()),
		search.WithAnyOf(search.Destination{Pos: a}, search.Destination{Pos: b}))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), res.Distances.Get(a))
	assert.Equal(t, field.Unreachable, res.Distances.Get(b))
	assert.Equal(t, []grid.Position{a}, res.Found)
	assert.Equal(t, search.StopAnyOf, res.Stop)
}

func TestMultiroom_AllOf(t *testing.T) {
	a := grid.MustPosition("W1N1:25:27")
	b := grid.MustPosition("W1N1:25:21")
	res, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()),
		search.WithAllOf(search.Destination{Pos: a}, search.Destination{Pos: b}))
	require.NoError(t, err)
	assert.Equal(t, uint32(4), res.Distances.Get(b))
	assert.Equal(t, field.Unreachable, res.Distances.Get(grid.MustPosition("W1N1:25:1")))
	assert.ElementsMatch(t, []grid.Position{a, b}, res.Found)
	assert.Equal(t, search.StopAllOf, res.Stop)
}

func TestMultiroom_OriginAlreadyInRange(t *testing.T) {
	res, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()),
		search.WithAnyOf(search.Destination{Pos: grid.MustPosition("W1N1:27:25"), Range: 3}))
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{origin}, res.Found)
	assert.Equal(t, 0, res.Ops)
}

func TestMultiroom_Errors(t *testing.T) {
	_, err := bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()))
	assert.ErrorIs(t, err, search.ErrUnbounded)

	_, err = bfs.MultiroomDistanceMap(seeds(origin), nil, search.WithMaxOps(1))
	assert.ErrorIs(t, err, search.ErrNilProvider)

	_, err = bfs.MultiroomDistanceMap(seeds(origin), cost.Static(cost.New()), search.WithMaxRooms(0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	boom := errors.New("boom")
	failing := func(grid.RoomID) (*cost.Grid, bool, error) { return nil, false, boom }
	_, err = bfs.MultiroomDistanceMap(seeds(origin), failing, search.WithMaxOps(10))
	assert.Same(t, boom, err)

	released := cost.New()
	released.Release()
	_, err = bfs.MultiroomDistanceMap(seeds(origin), cost.Static(released), search.WithMaxOps(10))
	assert.ErrorIs(t, err, cost.ErrInvalidCostGrid)

	var nilGrid *cost.Grid
	_, err = bfs.MultiroomDistanceMap(seeds(origin), cost.Static(nilGrid), search.WithMaxOps(10))
	assert.ErrorIs(t, err, cost.ErrInvalidCostGrid)
}

func TestMultiroom_FlowFields(t *testing.T) {
	ff, err := bfs.MultiroomFlowField(seeds(origin), cost.Static(cost.New()), search.WithMaxRooms(2))
	require.NoError(t, err)
	assert.Len(t, ff.Rooms(), 2)
	assert.Equal(t, []grid.Direction{grid.Left}, ff.Directions(grid.MustPosition("W1N1:26:25")))

	mono, err := bfs.MultiroomMonoFlowField(seeds(origin), cost.Static(cost.New()), search.WithMaxRooms(1))
	require.NoError(t, err)
	assert.Equal(t, grid.TopLeft, mono.Get(grid.MustPosition("W1N1:30:30")))
	assert.Equal(t, grid.DirNone, mono.Get(origin))
}
