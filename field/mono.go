package field

import "github.com/katalvlaran/tilepath/grid"

// MonoFlowField stores a single direction per tile, two tiles per byte.
// Even tile indexes use the low nibble.
type MonoFlowField struct {
	data []uint8
}

// NewMonoFlowField returns a field with DirNone everywhere.
func NewMonoFlowField() *MonoFlowField {
	return &MonoFlowField{data: make([]uint8, grid.RoomArea/2)}
}

// Get returns the direction at c.
func (f *MonoFlowField) Get(c grid.Coord) grid.Direction {
	if f.data == nil {
		usedAfterRelease()
	}
	i := c.Index()
	b := f.data[i/2]
	if i%2 == 1 {
		b >>= 4
	}

	return grid.Direction(b & 0x0F)
}

// Set stores d at c. Invalid directions are stored as DirNone.
func (f *MonoFlowField) Set(c grid.Coord, d grid.Direction) {
	if f.data == nil {
		usedAfterRelease()
	}
	if !d.Valid() {
		d = grid.DirNone
	}
	i := c.Index()
	b := &f.data[i/2]
	if i%2 == 1 {
		*b = *b&0x0F | uint8(d)<<4
	} else {
		*b = *b&0xF0 | uint8(d)
	}
}

// Release drops the backing storage.
func (f *MonoFlowField) Release() { f.data = nil }

// Validate returns ErrReleased for a nil or released field.
func (f *MonoFlowField) Validate() error {
	if f == nil || f.data == nil {
		return ErrReleased
	}

	return nil
}

// MultiroomMonoFlowField is a mono flow field spanning any number of rooms.
type MultiroomMonoFlowField struct {
	rooms    map[grid.RoomID]*MonoFlowField
	released bool
}

// NewMultiroomMonoFlowField returns an empty multi-room mono field.
func NewMultiroomMonoFlowField() *MultiroomMonoFlowField {
	return &MultiroomMonoFlowField{rooms: make(map[grid.RoomID]*MonoFlowField)}
}

// Get returns the direction at p, DirNone for rooms not covered.
func (m *MultiroomMonoFlowField) Get(p grid.Position) grid.Direction {
	if m.released {
		usedAfterRelease()
	}
	if f, ok := m.rooms[p.Room()]; ok {
		return f.Get(p.Coord())
	}

	return grid.DirNone
}

// Set stores d at p.
func (m *MultiroomMonoFlowField) Set(p grid.Position, d grid.Direction) {
	m.Ensure(p.Room()).Set(p.Coord(), d)
}

// Ensure returns the room's field, creating an empty one if absent.
func (m *MultiroomMonoFlowField) Ensure(room grid.RoomID) *MonoFlowField {
	if m.released {
		usedAfterRelease()
	}
	f, ok := m.rooms[room]
	if !ok {
		f = NewMonoFlowField()
		m.rooms[room] = f
	}

	return f
}

// Room returns the single-room field of room, if covered.
func (m *MultiroomMonoFlowField) Room(room grid.RoomID) (*MonoFlowField, bool) {
	if m.released {
		usedAfterRelease()
	}
	f, ok := m.rooms[room]

	return f, ok
}

// Rooms lists covered rooms in ascending order.
func (m *MultiroomMonoFlowField) Rooms() []grid.RoomID {
	return sortedKeys(m.rooms, m.released)
}

// Release releases every room field.
func (m *MultiroomMonoFlowField) Release() {
	for _, f := range m.rooms {
		f.Release()
	}
	m.rooms = nil
	m.released = true
}

// Validate returns ErrReleased for a nil or released field.
func (m *MultiroomMonoFlowField) Validate() error {
	if m == nil || m.released {
		return ErrReleased
	}

	return nil
}
