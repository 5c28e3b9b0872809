package field

import (
	"slices"

	"github.com/katalvlaran/tilepath/grid"
)

// DistanceMap holds one uint32 distance per tile of a room.
type DistanceMap struct {
	data []uint32
}

// NewDistanceMap returns a map with every tile Unreachable.
func NewDistanceMap() *DistanceMap {
	d := &DistanceMap{data: make([]uint32, grid.RoomArea)}
	for i := range d.data {
		d.data[i] = Unreachable
	}

	return d
}

// Get returns the distance stored at c.
func (d *DistanceMap) Get(c grid.Coord) uint32 {
	if d.data == nil {
		usedAfterRelease()
	}

	return d.data[c.Index()]
}

// Set stores v at c.
func (d *DistanceMap) Set(c grid.Coord, v uint32) {
	if d.data == nil {
		usedAfterRelease()
	}
	d.data[c.Index()] = v
}

// Each calls fn for every reachable tile in row-major order.
func (d *DistanceMap) Each(fn func(c grid.Coord, dist uint32)) {
	if d.data == nil {
		usedAfterRelease()
	}
	for i, v := range d.data {
		if v != Unreachable {
			fn(grid.CoordFromIndex(i), v)
		}
	}
}

// Reachable counts tiles holding a distance.
func (d *DistanceMap) Reachable() int {
	n := 0
	d.Each(func(grid.Coord, uint32) { n++ })

	return n
}

// Raw exposes the row-major backing slice; it is owned by d.
func (d *DistanceMap) Raw() []uint32 {
	if d.data == nil {
		usedAfterRelease()
	}

	return d.data
}

// Release drops the backing storage.
func (d *DistanceMap) Release() { d.data = nil }

// Released reports whether Release has been called.
func (d *DistanceMap) Released() bool { return d.data == nil }

// Validate returns ErrReleased for a nil or released map.
func (d *DistanceMap) Validate() error {
	if d == nil || d.data == nil {
		return ErrReleased
	}

	return nil
}

// MultiroomDistanceMap is a distance map spanning any number of rooms.
type MultiroomDistanceMap struct {
	rooms    map[grid.RoomID]*DistanceMap
	released bool
}

// NewMultiroomDistanceMap returns an empty multi-room map.
func NewMultiroomDistanceMap() *MultiroomDistanceMap {
	return &MultiroomDistanceMap{rooms: make(map[grid.RoomID]*DistanceMap)}
}

// Get returns the distance at p, Unreachable for rooms not covered.
func (m *MultiroomDistanceMap) Get(p grid.Position) uint32 {
	if m.released {
		usedAfterRelease()
	}
	if d, ok := m.rooms[p.Room()]; ok {
		return d.Get(p.Coord())
	}

	return Unreachable
}

// Set stores v at p, covering p's room if needed.
func (m *MultiroomDistanceMap) Set(p grid.Position, v uint32) {
	m.Ensure(p.Room()).Set(p.Coord(), v)
}

// Ensure returns the room's map, creating an all-Unreachable one if absent.
func (m *MultiroomDistanceMap) Ensure(room grid.RoomID) *DistanceMap {
	if m.released {
		usedAfterRelease()
	}
	d, ok := m.rooms[room]
	if !ok {
		d = NewDistanceMap()
		m.rooms[room] = d
	}

	return d
}

// Room returns the single-room map of room, if covered.
func (m *MultiroomDistanceMap) Room(room grid.RoomID) (*DistanceMap, bool) {
	if m.released {
		usedAfterRelease()
	}
	d, ok := m.rooms[room]

	return d, ok
}

// Rooms lists covered rooms in ascending order.
func (m *MultiroomDistanceMap) Rooms() []grid.RoomID {
	return sortedKeys(m.rooms, m.released)
}

// Reachable counts reachable tiles across all rooms.
func (m *MultiroomDistanceMap) Reachable() int {
	n := 0
	for _, r := range m.Rooms() {
		n += m.rooms[r].Reachable()
	}

	return n
}

// Release releases every room map.
func (m *MultiroomDistanceMap) Release() {
	for _, d := range m.rooms {
		d.Release()
	}
	m.rooms = nil
	m.released = true
}

// Released reports whether Release has been called.
func (m *MultiroomDistanceMap) Released() bool { return m.released }

// Validate returns ErrReleased for a nil or released map.
func (m *MultiroomDistanceMap) Validate() error {
	if m == nil || m.released {
		return ErrReleased
	}

	return nil
}

func sortedKeys[V any](m map[grid.RoomID]V, released bool) []grid.RoomID {
	if released {
		usedAfterRelease()
	}
	out := make([]grid.RoomID, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	slices.Sort(out)

	return out
}
