// Package path provides the Path type and the walkers that reconstruct a
// path from a distance map or a flow field back to the field's origin.
//
// A Path is an ordered list of world positions. Paths built by the walkers
// start at the requested tile (index 0) and end on the origin side; paths
// built by package jps start at the reached destination and end at the
// origin. Consecutive tiles are always one move apart, possibly across a
// room border.
//
// Walkers:
//
//	FromDistanceMap, FromMultiroomDistanceMap – steepest descent, ties broken
//	    in canonical direction order exactly like the mono flow field;
//	FromFlowField, FromMultiroomFlowField     – first recorded direction;
//	FromMonoFlowField, FromMultiroomMonoFlowField – the stored direction.
//
// A walk ends on a distance-0 tile or on a tile with no recorded move. The
// second case is a short path, not an error: the start may be unreachable.
//
// Errors:
//
//	ErrCycle     – a flow field leads back to a tile already on the path.
//	ErrTooLong   – the walk exceeded MaxSteps or MaxMultiroomSteps.
//	field.ErrReleased, grid.ErrCoordOutOfRange – bad input.
package path

import (
	"errors"
	"iter"

	"github.com/katalvlaran/tilepath/grid"
)

const (
	// MaxSteps bounds a single-room walk.
	MaxSteps = grid.RoomArea
	// MaxMultiroomSteps bounds a multi-room walk.
	MaxMultiroomSteps = 10000
)

var (
	// ErrCycle is returned when a walk revisits a tile.
	ErrCycle = errors.New("path: cycle detected in field")

	// ErrTooLong is returned when a walk exceeds its step bound.
	ErrTooLong = errors.New("path: walk exceeded maximum length")

	// ErrReleased is returned when a released path is passed back in.
	ErrReleased = errors.New("path: path has been released")
)

// Path is an ordered list of positions.
type Path struct {
	steps    []grid.Position
	released bool
}

// New returns a path holding ps in order.
func New(ps ...grid.Position) *Path {
	return &Path{steps: append([]grid.Position(nil), ps...)}
}

// Add appends p.
func (p *Path) Add(pos grid.Position) {
	p.mustLive()
	p.steps = append(p.steps, pos)
}

// Len returns the number of tiles.
func (p *Path) Len() int {
	p.mustLive()

	return len(p.steps)
}

// At returns the tile at index i.
func (p *Path) At(i int) (grid.Position, bool) {
	p.mustLive()
	if i < 0 || i >= len(p.steps) {
		return 0, false
	}

	return p.steps[i], true
}

// All iterates from index 0 to the end.
func (p *Path) All() iter.Seq2[int, grid.Position] {
	p.mustLive()

	return func(yield func(int, grid.Position) bool) {
		for i, pos := range p.steps {
			if !yield(i, pos) {
				return
			}
		}
	}
}

// Backward iterates from the last index down to 0.
func (p *Path) Backward() iter.Seq2[int, grid.Position] {
	p.mustLive()

	return func(yield func(int, grid.Position) bool) {
		for i := len(p.steps) - 1; i >= 0; i-- {
			if !yield(i, p.steps[i]) {
				return
			}
		}
	}
}

// Positions returns a copy of the tiles.
func (p *Path) Positions() []grid.Position {
	p.mustLive()

	return append([]grid.Position(nil), p.steps...)
}

// Reversed returns a new path with the tiles in reverse order.
func (p *Path) Reversed() *Path {
	p.mustLive()
	out := &Path{steps: make([]grid.Position, len(p.steps))}
	for i, pos := range p.steps {
		out.steps[len(p.steps)-1-i] = pos
	}

	return out
}

// Packed returns the tiles as packed integers.
func (p *Path) Packed() []uint32 {
	p.mustLive()
	out := make([]uint32, len(p.steps))
	for i, pos := range p.steps {
		out[i] = pos.Packed()
	}

	return out
}

// FindNextIndex returns the index an agent at pos should move to next.
//
// When pos is on the path the answer is the index after it (which equals
// Len() at the last tile). Otherwise it is the highest index adjacent to pos.
// ok is false when pos is neither on nor adjacent to the path.
func (p *Path) FindNextIndex(pos grid.Position) (int, bool) {
	p.mustLive()
	next, ok := 0, false
	for i, s := range p.steps {
		if s == pos {
			return i + 1, true
		}
		if s.IsAdjacent(pos) {
			next, ok = i, true
		}
	}

	return next, ok
}

// NearestIndex returns the index of the tile closest to pos by range; on a
// tie the later index wins. ok is false for an empty path.
func (p *Path) NearestIndex(pos grid.Position) (int, bool) {
	p.mustLive()
	best, bestRange := -1, 0
	for i, s := range p.steps {
		if r := s.RangeTo(pos); best < 0 || r <= bestRange {
			best, bestRange = i, r
		}
	}

	return best, best >= 0
}

// Contiguous reports whether every pair of consecutive tiles is one move
// apart.
func (p *Path) Contiguous() bool {
	p.mustLive()
	for i := 1; i < len(p.steps); i++ {
		if !p.steps[i-1].IsAdjacent(p.steps[i]) {
			return false
		}
	}

	return true
}

// Release drops the tiles. Any later use panics.
func (p *Path) Release() {
	p.steps = nil
	p.released = true
}

// Released reports whether Release has been called.
func (p *Path) Released() bool { return p.released }

// Validate returns ErrReleased for a nil or released path.
func (p *Path) Validate() error {
	if p == nil || p.released {
		return ErrReleased
	}

	return nil
}

func (p *Path) mustLive() {
	if p.released {
		panic(ErrReleased.Error())
	}
}
