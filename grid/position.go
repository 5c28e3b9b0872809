package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NewPosition packs a room and in-room coordinates.
func NewPosition(room RoomID, x, y int) (Position, error) {
	c, err := NewCoord(x, y)
	if err != nil {
		return 0, err
	}

	return PositionAt(room, c), nil
}

// MustPosition parses "ROOM:x:y" and panics on failure.
func MustPosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err.Error())
	}

	return p
}

// PositionAt packs a room and a Coord. It panics for an invalid Coord.
func PositionAt(room RoomID, c Coord) Position {
	if !c.Valid() {
		panic(fmt.Sprintf("%s: (%d,%d)", ErrCoordOutOfRange, c.X, c.Y))
	}

	return Position(uint32(room)<<16 | uint32(c.X)<<8 | uint32(c.Y))
}

// FromPacked reinterprets a packed integer. The in-room part is validated.
func FromPacked(v uint32) (Position, error) {
	p := Position(v)
	if !p.Coord().Valid() {
		return 0, fmt.Errorf("%w: packed %#x", ErrCoordOutOfRange, v)
	}

	return p, nil
}

// ParsePosition parses "W1N1:25:25".
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	room, err := ParseRoomID(parts[0])
	if err != nil {
		return 0, err
	}
	x, errX := strconv.Atoi(parts[1])
	y, errY := strconv.Atoi(parts[2])
	if errX != nil || errY != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	return NewPosition(room, x, y)
}

// Packed returns the interchange integer.
func (p Position) Packed() uint32 { return uint32(p) }

// Room returns the room part.
func (p Position) Room() RoomID { return RoomID(p >> 16) }

// X returns the in-room column.
func (p Position) X() int { return int(p>>8) & 0xFF }

// Y returns the in-room row.
func (p Position) Y() int { return int(p) & 0xFF }

// Coord returns the in-room tile.
func (p Position) Coord() Coord { return Coord{X: uint8(p >> 8), Y: uint8(p)} }

// IsEdge reports whether p lies on its room's border.
func (p Position) IsEdge() bool { return p.Coord().IsEdge() }

// World returns global tile coordinates.
func (p Position) World() (wx, wy int) {
	r := p.Room()

	return int(r>>8)*RoomSize + p.X(), int(r&0xFF)*RoomSize + p.Y()
}

// FromWorld converts global tile coordinates back into a Position.
// ok is false outside the world and inside the simulation room's block.
func FromWorld(wx, wy int) (Position, bool) {
	const limit = worldRooms * RoomSize
	if wx < 0 || wy < 0 || wx >= limit || wy >= limit {
		return 0, false
	}
	room := RoomID(uint16(wx/RoomSize)<<8 | uint16(wy/RoomSize))
	if room == SimRoom {
		return 0, false
	}

	return PositionAt(room, Coord{X: uint8(wx % RoomSize), Y: uint8(wy % RoomSize)}), true
}

// Step returns the tile one move away in direction d, crossing room borders
// when needed. The simulation room never connects to another room.
func (p Position) Step(d Direction) (Position, bool) {
	if !d.Valid() {
		return 0, false
	}
	dx, dy := d.Offset()
	if c, ok := p.Coord().Step(d); ok {
		return PositionAt(p.Room(), c), true
	}
	if p.Room() == SimRoom {
		return 0, false
	}
	wx, wy := p.World()

	return FromWorld(wx+dx, wy+dy)
}

// RangeTo is the Chebyshev distance in world tiles. Positions on opposite
// sides of the simulation room's border are math.MaxInt32 apart.
func (p Position) RangeTo(o Position) int {
	if (p.Room() == SimRoom) != (o.Room() == SimRoom) {
		return math.MaxInt32
	}
	ax, ay := p.World()
	bx, by := o.World()

	return max(absDiff(ax, bx), absDiff(ay, by))
}

// IsAdjacent reports whether o is one move away from p.
func (p Position) IsAdjacent(o Position) bool {
	return p.RangeTo(o) == 1
}

// DirectionTo returns the move from p toward o by sign of the world delta.
func (p Position) DirectionTo(o Position) Direction {
	ax, ay := p.World()
	bx, by := o.World()

	return DirectionTo(bx-ax, by-ay)
}

// String formats p as "[W1N1 25,25]".
func (p Position) String() string {
	return fmt.Sprintf("[%s %d,%d]", p.Room(), p.X(), p.Y())
}
