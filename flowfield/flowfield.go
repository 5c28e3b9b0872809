// Package flowfield derives flow fields from distance maps.
//
// For every reachable tile with distance d > 0 the derivation looks at the
// tile's valid neighbours, takes the smallest neighbour distance m and, when
// m < d, records every direction whose neighbour sits at m. Following any
// recorded direction is therefore a steepest-descent step toward the seeds.
// Seeds and unreachable tiles record nothing.
//
// Valid neighbours:
//
//	single room – in-room neighbours, except that a border tile never pairs
//	              with another border tile (the same rule the single-room
//	              searches use);
//	multi room  – world neighbours, crossing room borders.
//
// Mono fields keep only the first recorded direction in canonical order
// (Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left, TopLeft).
//
// Complexity: O(8·T) time for T covered tiles, O(T) space for the output.
package flowfield

import (
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/grid"
)

// Derive builds a multi-directional flow field from a single-room map.
func Derive(dm *field.DistanceMap) (*field.FlowField, error) {
	if err := dm.Validate(); err != nil {
		return nil, err
	}
	out := field.NewFlowField()
	raw := dm.Raw()
	for i := range raw {
		if mask := roomMask(raw, grid.CoordFromIndex(i)); mask != 0 {
			out.Set(grid.CoordFromIndex(i), mask)
		}
	}

	return out, nil
}

// DeriveMono builds a mono flow field from a single-room map.
func DeriveMono(dm *field.DistanceMap) (*field.MonoFlowField, error) {
	if err := dm.Validate(); err != nil {
		return nil, err
	}
	out := field.NewMonoFlowField()
	raw := dm.Raw()
	for i := range raw {
		c := grid.CoordFromIndex(i)
		if d := First(roomMask(raw, c)); d != grid.DirNone {
			out.Set(c, d)
		}
	}

	return out, nil
}

// DeriveMultiroom builds a multi-room flow field. Only rooms covered by mdm
// are visited, but neighbours are read across room borders.
func DeriveMultiroom(mdm *field.MultiroomDistanceMap) (*field.MultiroomFlowField, error) {
	if err := mdm.Validate(); err != nil {
		return nil, err
	}
	out := field.NewMultiroomFlowField()
	for _, room := range mdm.Rooms() {
		dm, _ := mdm.Room(room)
		dst := out.Ensure(room)
		dm.Each(func(c grid.Coord, _ uint32) {
			if mask := worldMask(mdm, grid.PositionAt(room, c)); mask != 0 {
				dst.Set(c, mask)
			}
		})
	}

	return out, nil
}

// DeriveMultiroomMono builds a multi-room mono flow field.
func DeriveMultiroomMono(mdm *field.MultiroomDistanceMap) (*field.MultiroomMonoFlowField, error) {
	if err := mdm.Validate(); err != nil {
		return nil, err
	}
	out := field.NewMultiroomMonoFlowField()
	for _, room := range mdm.Rooms() {
		dm, _ := mdm.Room(room)
		dst := out.Ensure(room)
		dm.Each(func(c grid.Coord, _ uint32) {
			if d := First(worldMask(mdm, grid.PositionAt(room, c))); d != grid.DirNone {
				dst.Set(c, d)
			}
		})
	}

	return out, nil
}

// First returns the first direction of mask in canonical order.
func First(mask uint8) grid.Direction {
	for _, d := range grid.Directions {
		if mask&d.Bit() != 0 {
			return d
		}
	}

	return grid.DirNone
}

// Descend returns the steepest-descent move from c, or DirNone when c is a
// seed, unreachable, or has no lower neighbour. It agrees with DeriveMono.
func Descend(dm *field.DistanceMap, c grid.Coord) grid.Direction {
	return First(roomMask(dm.Raw(), c))
}

// DescendMultiroom is Descend across room borders; it agrees with
// DeriveMultiroomMono.
func DescendMultiroom(mdm *field.MultiroomDistanceMap, p grid.Position) grid.Direction {
	return First(worldMask(mdm, p))
}

// roomMask computes the steepest-descent mask of c inside one room.
func roomMask(raw []uint32, c grid.Coord) uint8 {
	own := raw[c.Index()]
	if own == 0 || own == field.Unreachable {
		return 0
	}
	best := own
	var mask uint8
	edge := c.IsEdge()
	for _, d := range grid.Directions {
		n, ok := c.Step(d)
		if !ok || (edge && n.IsEdge()) {
			continue
		}
		switch v := raw[n.Index()]; {
		case v < best:
			best, mask = v, d.Bit()
		case v == best && v < own:
			mask |= d.Bit()
		}
	}

	return mask
}

// worldMask computes the steepest-descent mask of p across room borders.
func worldMask(mdm *field.MultiroomDistanceMap, p grid.Position) uint8 {
	own := mdm.Get(p)
	if own == 0 || own == field.Unreachable {
		return 0
	}
	best := own
	var mask uint8
	for _, d := range grid.Directions {
		n, ok := p.Step(d)
		if !ok {
			continue
		}
		switch v := mdm.Get(n); {
		case v < best:
			best, mask = v, d.Bit()
		case v == best && v < own:
			mask |= d.Bit()
		}
	}

	return mask
}
