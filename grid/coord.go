package grid

import "fmt"

// NewCoord validates (x, y) and returns the corresponding Coord.
func NewCoord(x, y int) (Coord, error) {
	if x < 0 || x >= RoomSize || y < 0 || y >= RoomSize {
		return Coord{}, fmt.Errorf("%w: (%d,%d)", ErrCoordOutOfRange, x, y)
	}

	return Coord{X: uint8(x), Y: uint8(y)}, nil
}

// MustCoord is NewCoord for literals; it panics on out-of-range input.
func MustCoord(x, y int) Coord {
	c, err := NewCoord(x, y)
	if err != nil {
		panic(err.Error())
	}

	return c
}

// CoordFromIndex is the inverse of Coord.Index.
func CoordFromIndex(i int) Coord {
	if i < 0 || i >= RoomArea {
		panic(fmt.Sprintf("grid: tile index %d out of range", i))
	}

	return Coord{X: uint8(i % RoomSize), Y: uint8(i / RoomSize)}
}

// Index returns the row-major offset y*50+x of c.
// It panics when c lies outside the room.
func (c Coord) Index() int {
	if !c.Valid() {
		panic(fmt.Sprintf("%s: (%d,%d)", ErrCoordOutOfRange, c.X, c.Y))
	}

	return int(c.Y)*RoomSize + int(c.X)
}

// Valid reports whether both components are inside the room.
func (c Coord) Valid() bool {
	return c.X < RoomSize && c.Y < RoomSize
}

// IsEdge reports whether c lies on the outer border of the room.
func (c Coord) IsEdge() bool {
	return c.X == 0 || c.Y == 0 || c.X == RoomSize-1 || c.Y == RoomSize-1
}

// Step returns the in-room neighbour of c in direction d.
// ok is false when the move would leave the room.
func (c Coord) Step(d Direction) (next Coord, ok bool) {
	dx, dy := d.Offset()
	x, y := int(c.X)+dx, int(c.Y)+dy
	if !d.Valid() || x < 0 || x >= RoomSize || y < 0 || y >= RoomSize {
		return Coord{}, false
	}

	return Coord{X: uint8(x), Y: uint8(y)}, true
}

// RangeTo is the Chebyshev distance between two tiles of the same room.
func (c Coord) RangeTo(o Coord) int {
	return max(absDiff(int(c.X), int(o.X)), absDiff(int(c.Y), int(o.Y)))
}

// String formats c as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
