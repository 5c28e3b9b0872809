package field

import "github.com/katalvlaran/tilepath/grid"

// FlowField stores, per tile, a bitmask of directions toward lower distance.
// Bit (d-1) is set when direction d is recorded.
type FlowField struct {
	data []uint8
}

// NewFlowField returns a field with no directions.
func NewFlowField() *FlowField {
	return &FlowField{data: make([]uint8, grid.RoomArea)}
}

// Get returns the raw mask at c.
func (f *FlowField) Get(c grid.Coord) uint8 {
	if f.data == nil {
		usedAfterRelease()
	}

	return f.data[c.Index()]
}

// Set stores a raw mask at c.
func (f *FlowField) Set(c grid.Coord, mask uint8) {
	if f.data == nil {
		usedAfterRelease()
	}
	f.data[c.Index()] = mask
}

// Directions decodes the mask at c in canonical order.
func (f *FlowField) Directions(c grid.Coord) []grid.Direction {
	return DecodeMask(f.Get(c))
}

// SetDirections replaces the directions recorded at c.
func (f *FlowField) SetDirections(c grid.Coord, dirs ...grid.Direction) {
	f.Set(c, EncodeMask(dirs...))
}

// AddDirection records d at c in addition to existing directions.
func (f *FlowField) AddDirection(c grid.Coord, d grid.Direction) {
	f.Set(c, f.Get(c)|d.Bit())
}

// Release drops the backing storage.
func (f *FlowField) Release() { f.data = nil }

// Validate returns ErrReleased for a nil or released field.
func (f *FlowField) Validate() error {
	if f == nil || f.data == nil {
		return ErrReleased
	}

	return nil
}

// EncodeMask folds directions into a flow mask.
func EncodeMask(dirs ...grid.Direction) uint8 {
	var m uint8
	for _, d := range dirs {
		m |= d.Bit()
	}

	return m
}

// DecodeMask expands a flow mask in canonical order.
func DecodeMask(mask uint8) []grid.Direction {
	if mask == 0 {
		return nil
	}
	out := make([]grid.Direction, 0, 8)
	for _, d := range grid.Directions {
		if mask&d.Bit() != 0 {
			out = append(out, d)
		}
	}

	return out
}

// MultiroomFlowField is a flow field spanning any number of rooms.
type MultiroomFlowField struct {
	rooms    map[grid.RoomID]*FlowField
	released bool
}

// NewMultiroomFlowField returns an empty multi-room flow field.
func NewMultiroomFlowField() *MultiroomFlowField {
	return &MultiroomFlowField{rooms: make(map[grid.RoomID]*FlowField)}
}

// Get returns the raw mask at p, 0 for rooms not covered.
func (m *MultiroomFlowField) Get(p grid.Position) uint8 {
	if m.released {
		usedAfterRelease()
	}
	if f, ok := m.rooms[p.Room()]; ok {
		return f.Get(p.Coord())
	}

	return 0
}

// Set stores a raw mask at p.
func (m *MultiroomFlowField) Set(p grid.Position, mask uint8) {
	m.Ensure(p.Room()).Set(p.Coord(), mask)
}

// Directions decodes the mask at p.
func (m *MultiroomFlowField) Directions(p grid.Position) []grid.Direction {
	return DecodeMask(m.Get(p))
}

// AddDirection records d at p.
func (m *MultiroomFlowField) AddDirection(p grid.Position, d grid.Direction) {
	m.Ensure(p.Room()).AddDirection(p.Coord(), d)
}

// Ensure returns the room's field, creating an empty one if absent.
func (m *MultiroomFlowField) Ensure(room grid.RoomID) *FlowField {
	if m.released {
		usedAfterRelease()
	}
	f, ok := m.rooms[room]
	if !ok {
		f = NewFlowField()
		m.rooms[room] = f
	}

	return f
}

// Room returns the single-room field of room, if covered.
func (m *MultiroomFlowField) Room(room grid.RoomID) (*FlowField, bool) {
	if m.released {
		usedAfterRelease()
	}
	f, ok := m.rooms[room]

	return f, ok
}

// Rooms lists covered rooms in ascending order.
func (m *MultiroomFlowField) Rooms() []grid.RoomID {
	return sortedKeys(m.rooms, m.released)
}

// Release releases every room field.
func (m *MultiroomFlowField) Release() {
	for _, f := range m.rooms {
		f.Release()
	}
	m.rooms = nil
	m.released = true
}

// Validate returns ErrReleased for a nil or released field.
func (m *MultiroomFlowField) Validate() error {
	if m == nil || m.released {
		return ErrReleased
	}

	return nil
}
