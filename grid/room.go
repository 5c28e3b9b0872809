package grid

import (
	"fmt"
	"strconv"
)

const simName = "sim"

// NewRoomID packs signed room-grid coordinates. The coordinates of the
// reserved zero room (-128, -128) are rejected; use SimRoom instead.
func NewRoomID(x, y int) (RoomID, error) {
	if x < -roomOffset || x >= roomOffset || y < -roomOffset || y >= roomOffset {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrRoomOutOfRange, x, y)
	}
	id := RoomID(uint16(x+roomOffset)<<8 | uint16(y+roomOffset))
	if id == SimRoom {
		return 0, fmt.Errorf("%w: (%d,%d) is reserved", ErrRoomOutOfRange, x, y)
	}

	return id, nil
}

// MustRoom parses name and panics on failure. Intended for tests and literals.
func MustRoom(name string) RoomID {
	id, err := ParseRoomID(name)
	if err != nil {
		panic(err.Error())
	}

	return id
}

// ParseRoomID parses "sim" or names such as "W1N1" and "E10S3".
func ParseRoomID(name string) (RoomID, error) {
	if name == simName {
		return SimRoom, nil
	}
	// 1) horizontal half: [WE] followed by digits
	x, rest, err := parseAxis(name, 'W', 'E')
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoomName, name)
	}
	// 2) vertical half: [NS] followed by digits, nothing after
	y, rest, err := parseAxis(rest, 'N', 'S')
	if err != nil || rest != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoomName, name)
	}

	id, err := NewRoomID(x, y)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidRoomName, name, err)
	}

	return id, nil
}

// parseAxis consumes one "<letter><digits>" group. neg is the letter of the
// negative half-axis.
func parseAxis(s string, neg, pos byte) (int, string, error) {
	if len(s) < 2 || (s[0] != neg && s[0] != pos) {
		return 0, s, ErrInvalidRoomName
	}
	end := 1
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 1 {
		return 0, s, ErrInvalidRoomName
	}
	n, err := strconv.Atoi(s[1:end])
	if err != nil {
		return 0, s, err
	}
	if s[0] == neg {
		n = -n - 1
	}

	return n, s[end:], nil
}

// X returns the signed horizontal room coordinate (E0 = 0, W0 = -1).
func (r RoomID) X() int { return int(r>>8) - roomOffset }

// Y returns the signed vertical room coordinate (S0 = 0, N0 = -1).
func (r RoomID) Y() int { return int(r&0xFF) - roomOffset }

// String returns the room name.
func (r RoomID) String() string {
	if r == SimRoom {
		return simName
	}

	return axisName(r.X(), 'W', 'E') + axisName(r.Y(), 'N', 'S')
}

func axisName(v int, neg, pos byte) string {
	if v < 0 {
		return string(neg) + strconv.Itoa(-v-1)
	}

	return string(pos) + strconv.Itoa(v)
}

// Neighbor returns the room offset by (dx, dy) room-grid units.
// ok is false when the result falls off the room grid or either side of the
// move is the simulation room.
func (r RoomID) Neighbor(dx, dy int) (RoomID, bool) {
	if r == SimRoom {
		return 0, false
	}
	n, err := NewRoomID(r.X()+dx, r.Y()+dy)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ManhattanDistance is |dx|+|dy| in room-grid units.
func (r RoomID) ManhattanDistance(o RoomID) int {
	return absDiff(r.X(), o.X()) + absDiff(r.Y(), o.Y())
}

// ChebyshevDistance is max(|dx|, |dy|) in room-grid units.
func (r RoomID) ChebyshevDistance(o RoomID) int {
	return max(absDiff(r.X(), o.X()), absDiff(r.Y(), o.Y()))
}
