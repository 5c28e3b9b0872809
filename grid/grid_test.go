package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/grid"
)

func TestRoomID_ParseAndFormat(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"E0S0", 0, 0},
		{"W0N0", -1, -1},
		{"W1N1", -2, -2},
		{"E10N5", 10, -6},
		{"W127S127", -128, 127},
		{"E127N127", 127, -128},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := grid.ParseRoomID(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.x, id.X())
			assert.Equal(t, tc.y, id.Y())
			assert.Equal(t, tc.name, id.String())

			back, err := grid.NewRoomID(tc.x, tc.y)
			require.NoError(t, err)
			assert.Equal(t, id, back)
		})
	}
}

func TestRoomID_SimRoom(t *testing.T) {
	id, err := grid.ParseRoomID("sim")
	require.NoError(t, err)
	assert.Equal(t, grid.SimRoom, id)
	assert.Equal(t, "sim", grid.SimRoom.String())

	// the zero room's coordinates are reserved
	_, err = grid.NewRoomID(-128, -128)
	assert.ErrorIs(t, err, grid.ErrRoomOutOfRange)
	_, err = grid.ParseRoomID("W127N127")
	assert.ErrorIs(t, err, grid.ErrInvalidRoomName)

	_, ok := grid.SimRoom.Neighbor(1, 0)
	assert.False(t, ok)
}

func TestRoomID_Invalid(t *testing.T) {
	for _, name := range []string{"", "W", "W1", "N1W1", "W1N", "X1N1", "W1N1x", "W128N0", "Wa1N1"} {
		_, err := grid.ParseRoomID(name)
		assert.ErrorIs(t, err, grid.ErrInvalidRoomName, name)
	}
	_, err := grid.NewRoomID(128, 0)
	assert.ErrorIs(t, err, grid.ErrRoomOutOfRange)
}

func TestRoomID_Distances(t *testing.T) {
	a := grid.MustRoom("W1N1")
	b := grid.MustRoom("E1S2")
	assert.Equal(t, 3+4, a.ManhattanDistance(b))
	assert.Equal(t, 4, a.ChebyshevDistance(b))

	n, ok := a.Neighbor(0, -1)
	require.True(t, ok)
	assert.Equal(t, "W1N2", n.String())
}

func TestPosition_PackRoundTrip(t *testing.T) {
	rooms := []grid.RoomID{grid.SimRoom, grid.MustRoom("W1N1"), grid.MustRoom("E0S0"), grid.MustRoom("E127S127")}
	for _, r := range rooms {
		for _, c := range [][2]int{{0, 0}, {49, 49}, {25, 7}, {0, 49}} {
			p, err := grid.NewPosition(r, c[0], c[1])
			require.NoError(t, err)
			assert.Equal(t, r, p.Room())
			assert.Equal(t, c[0], p.X())
			assert.Equal(t, c[1], p.Y())

			q, err := grid.FromPacked(p.Packed())
			require.NoError(t, err)
			assert.Equal(t, p, q)
		}
	}

	_, err := grid.FromPacked(0x00003200) // x = 50
	assert.ErrorIs(t, err, grid.ErrCoordOutOfRange)
}

func TestPosition_Parse(t *testing.T) {
	p, err := grid.ParsePosition("W1N1:25:30")
	require.NoError(t, err)
	assert.Equal(t, "[W1N1 25,30]", p.String())

	for _, s := range []string{"W1N1", "W1N1:1", "W1N1:a:2", "W1N1:50:0", "Q:1:1"} {
		_, err := grid.ParsePosition(s)
		assert.Error(t, err, s)
	}
}

func TestPosition_StepAcrossRooms(t *testing.T) {
	p := grid.MustPosition("W1N1:49:10")
	q, ok := p.Step(grid.Right)
	require.True(t, ok)
	assert.Equal(t, "[W0N1 0,10]", q.String())
	assert.Equal(t, 1, p.RangeTo(q))
	assert.True(t, p.IsAdjacent(q))

	top := grid.MustPosition("W1N1:0:0")
	q, ok = top.Step(grid.TopLeft)
	require.True(t, ok)
	assert.Equal(t, "[W2N2 49,49]", q.String())

	sim := grid.MustPosition("sim:49:49")
	_, ok = sim.Step(grid.Right)
	assert.False(t, ok)
	_, ok = sim.Step(grid.Left)
	assert.True(t, ok)
}

func TestPosition_RangeTo(t *testing.T) {
	a := grid.MustPosition("W1N1:25:25")
	b := grid.MustPosition("W1N2:25:25")
	assert.Equal(t, 50, a.RangeTo(b))
	assert.Equal(t, grid.Top, a.DirectionTo(b))
	assert.Equal(t, 0, a.RangeTo(a))
}

func TestPosition_RangeToAcrossSimBorder(t *testing.T) {
	// W127N126 packs right next to the sim room
	outside := grid.MustPosition("W127N126:25:0")
	inside := grid.MustPosition("sim:25:49")

	_, ok := outside.Step(grid.Top)
	require.False(t, ok)
	assert.Equal(t, math.MaxInt32, outside.RangeTo(inside))
	assert.Equal(t, math.MaxInt32, inside.RangeTo(outside))
	assert.False(t, outside.IsAdjacent(inside))
	assert.False(t, inside.IsAdjacent(outside))

	// inside the sim room ranges are plain
	assert.Equal(t, 1, inside.RangeTo(grid.MustPosition("sim:24:48")))
	assert.True(t, inside.IsAdjacent(grid.MustPosition("sim:24:48")))
}

func TestCoord(t *testing.T) {
	_, err := grid.NewCoord(50, 0)
	assert.ErrorIs(t, err, grid.ErrCoordOutOfRange)
	_, err = grid.NewCoord(0, -1)
	assert.ErrorIs(t, err, grid.ErrCoordOutOfRange)

	c := grid.MustCoord(3, 4)
	assert.Equal(t, 4*50+3, c.Index())
	assert.Equal(t, c, grid.CoordFromIndex(c.Index()))
	assert.False(t, c.IsEdge())
	assert.True(t, grid.MustCoord(0, 20).IsEdge())
	assert.True(t, grid.MustCoord(20, 49).IsEdge())

	assert.Panics(t, func() { grid.Coord{X: 60}.Index() })

	_, ok := grid.MustCoord(0, 0).Step(grid.Left)
	assert.False(t, ok)
}

func TestDirection(t *testing.T) {
	for _, d := range grid.Directions {
		dx, dy := d.Offset()
		assert.Equal(t, d, grid.DirectionTo(dx, dy))
		odx, ody := d.Opposite().Offset()
		assert.Equal(t, -dx, odx)
		assert.Equal(t, -dy, ody)
		assert.Equal(t, dx != 0 && dy != 0, d.Diagonal())
	}
	assert.Equal(t, grid.DirNone, grid.DirectionTo(0, 0))
	assert.Equal(t, grid.DirNone, grid.DirNone.Opposite())
	assert.Equal(t, uint8(1), grid.Top.Bit())
	assert.Equal(t, uint8(0x80), grid.TopLeft.Bit())
	assert.Equal(t, "bottom-left", grid.BottomLeft.String())
}
