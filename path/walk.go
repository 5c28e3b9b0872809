package path

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/flowfield"
	"github.com/katalvlaran/tilepath/grid"
)

// mover returns the tile after cur, or false when the walk ends at cur.
type mover func(cur grid.Position) (grid.Position, bool)

// FromDistanceMap descends dm from start. start's room names the room dm
// belongs to; the walk never leaves it.
func FromDistanceMap(start grid.Position, dm *field.DistanceMap) (*Path, error) {
	if err := dm.Validate(); err != nil {
		return nil, err
	}

	return walk(start, MaxSteps, inRoom(start.Room(), func(c grid.Coord) grid.Direction {
		return flowfield.Descend(dm, c)
	}))
}

// FromFlowField follows the first recorded direction of ff from start.
func FromFlowField(start grid.Position, ff *field.FlowField) (*Path, error) {
	if err := ff.Validate(); err != nil {
		return nil, err
	}

	return walk(start, MaxSteps, inRoom(start.Room(), func(c grid.Coord) grid.Direction {
		return flowfield.First(ff.Get(c))
	}))
}

// FromMonoFlowField follows mff from start.
func FromMonoFlowField(start grid.Position, mff *field.MonoFlowField) (*Path, error) {
	if err := mff.Validate(); err != nil {
		return nil, err
	}

	return walk(start, MaxSteps, inRoom(start.Room(), mff.Get))
}

// FromMultiroomDistanceMap descends mdm from start across room borders.
func FromMultiroomDistanceMap(start grid.Position, mdm *field.MultiroomDistanceMap) (*Path, error) {
	if err := mdm.Validate(); err != nil {
		return nil, err
	}

	return walk(start, MaxMultiroomSteps, world(func(p grid.Position) grid.Direction {
		return flowfield.DescendMultiroom(mdm, p)
	}))
}

// FromMultiroomFlowField follows the first recorded direction of mff.
func FromMultiroomFlowField(start grid.Position, mff *field.MultiroomFlowField) (*Path, error) {
	if err := mff.Validate(); err != nil {
		return nil, err
	}

	return walk(start, MaxMultiroomSteps, world(func(p grid.Position) grid.Direction {
		return flowfield.First(mff.Get(p))
	}))
}

// FromMultiroomMonoFlowField follows mff across room borders.
func FromMultiroomMonoFlowField(start grid.Position, mff *field.MultiroomMonoFlowField) (*Path, error) {
	if err := mff.Validate(); err != nil {
		return nil, err
	}

	return walk(start, MaxMultiroomSteps, world(mff.Get))
}

// inRoom adapts a per-coordinate direction source to one room.
func inRoom(room grid.RoomID, dir func(grid.Coord) grid.Direction) mover {
	return func(cur grid.Position) (grid.Position, bool) {
		next, ok := cur.Coord().Step(dir(cur.Coord()))
		if !ok {
			return 0, false
		}

		return grid.PositionAt(room, next), true
	}
}

// world adapts a per-position direction source to world adjacency.
func world(dir func(grid.Position) grid.Direction) mover {
	return func(cur grid.Position) (grid.Position, bool) {
		return cur.Step(dir(cur))
	}
}

// walk collects start and every tile produced by next until it stops.
func walk(start grid.Position, limit int, next mover) (*Path, error) {
	if !start.Coord().Valid() {
		return nil, fmt.Errorf("%w: start %#x", grid.ErrCoordOutOfRange, start.Packed())
	}
	p := New(start)
	seen := mapset.New[grid.Position]()
	seen.Put(start)

	for cur := start; ; {
		n, ok := next(cur)
		if !ok {
			return p, nil
		}
		if seen.Has(n) {
			return nil, fmt.Errorf("%w: %s revisited after %d steps", ErrCycle, n, len(p.steps)-1)
		}
		if len(p.steps) > limit {
			return nil, fmt.Errorf("%w (%d steps)", ErrTooLong, limit)
		}
		seen.Put(n)
		p.steps = append(p.steps, n)
		cur = n
	}
}
