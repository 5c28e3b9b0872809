// Package field defines the grids produced by searches: distance maps,
// multi-directional flow fields and mono-directional flow fields, each in a
// single-room and a multi-room form.
//
// Single-room fields are indexed by grid.Coord. Multi-room fields map a
// grid.RoomID to a single-room field and are indexed by grid.Position; rooms
// the search never touched read as Unreachable (distance maps) or as empty
// (flow fields). Rooms() enumerates covered rooms in ascending packed order so
// iteration is deterministic.
//
// Every field is owned by the caller. Release drops the backing storage;
// reading a released field panics and passing one to a consumer in this module
// yields ErrReleased.
package field

import (
	"errors"
	"math"
)

// Unreachable is the distance of a tile no seed can reach.
const Unreachable uint32 = math.MaxUint32

// ErrReleased is returned when a released field is handed to a consumer.
var ErrReleased = errors.New("field: field has been released")

func usedAfterRelease() {
	panic(ErrReleased.Error())
}
