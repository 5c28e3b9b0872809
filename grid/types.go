package grid

import "errors"

const (
	// RoomSize is the side length of a room in tiles.
	RoomSize = 50
	// RoomArea is the number of tiles in one room.
	RoomArea = RoomSize * RoomSize

	// roomOffset maps signed room coordinates onto the packed byte range.
	roomOffset = 128
	// worldRooms is the number of rooms along each world axis.
	worldRooms = 256
)

// Sentinel errors for address construction and parsing.
var (
	// ErrCoordOutOfRange indicates an in-room coordinate outside [0, RoomSize).
	ErrCoordOutOfRange = errors.New("grid: coordinate out of range")

	// ErrRoomOutOfRange indicates a room coordinate that cannot be packed.
	ErrRoomOutOfRange = errors.New("grid: room coordinate out of range")

	// ErrInvalidRoomName indicates a room name that does not parse.
	ErrInvalidRoomName = errors.New("grid: invalid room name")

	// ErrInvalidPosition indicates a position string that does not parse.
	ErrInvalidPosition = errors.New("grid: invalid position")
)

// Coord is a tile inside a single room.
type Coord struct {
	X, Y uint8
}

// RoomID identifies one room; see the package doc for the packing.
type RoomID uint16

// SimRoom is the isolated simulation room. Its packed value is 0.
const SimRoom RoomID = 0

// Position is a packed world tile address: (room<<16)|(x<<8)|y.
type Position uint32

// Direction is one of the eight compass moves, or DirNone.
type Direction uint8

// Directions in canonical order. The numeric values start at 1 so that the
// zero value means "no direction".
const (
	DirNone Direction = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	TopLeft
)
