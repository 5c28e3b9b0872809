// Package cost holds per-room traversal cost grids and the provider contract
// through which multi-room searches fetch them.
//
// A Grid stores one byte per tile of a 50×50 room. Values 0–254 are
// passable at that entry cost; Impassable (255) blocks the tile. Breadth-first
// searches only look at passability, weighted searches add the byte value on
// every step onto the tile.
//
// Grids are owned by the caller. Release marks a grid unusable; every engine
// entry point validates the grids it receives and fails with
// ErrInvalidCostGrid on a nil or released grid instead of reading it.
package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

// Impassable is the cost value that blocks a tile.
const Impassable uint8 = 255

// ErrInvalidCostGrid is returned when a nil or released Grid reaches the engine.
var ErrInvalidCostGrid = errors.New("cost: invalid cost grid")

// Grid is a 50×50 array of tile costs.
type Grid struct {
	data     []uint8
	released bool
}

// New returns a grid with every tile at cost 0.
func New() *Grid {
	return &Grid{data: make([]uint8, grid.RoomArea)}
}

// NewFilled returns a grid with every tile at cost v.
func NewFilled(v uint8) *Grid {
	g := New()
	if v != 0 {
		for i := range g.data {
			g.data[i] = v
		}
	}

	return g
}

// Get returns the cost at c. It panics on a released grid.
func (g *Grid) Get(c grid.Coord) uint8 {
	g.mustLive()

	return g.data[c.Index()]
}

// At is Get for plain integers; out-of-range input panics.
func (g *Grid) At(x, y int) uint8 {
	return g.Get(grid.MustCoord(x, y))
}

// Set stores v at c.
func (g *Grid) Set(c grid.Coord, v uint8) {
	g.mustLive()
	g.data[c.Index()] = v
}

// Passable reports whether the tile at c can be entered.
func (g *Grid) Passable(c grid.Coord) bool {
	return g.Get(c) != Impassable
}

// Clone returns an independent copy. Cloning a released grid panics.
func (g *Grid) Clone() *Grid {
	g.mustLive()
	out := &Grid{data: make([]uint8, grid.RoomArea)}
	copy(out.data, g.data)

	return out
}

// Release frees the backing storage. Further use is an error.
func (g *Grid) Release() {
	if g == nil {
		return
	}
	g.data = nil
	g.released = true
}

// Released reports whether Release has been called.
func (g *Grid) Released() bool {
	return g != nil && g.released
}

// Validate returns ErrInvalidCostGrid for a nil or released grid.
func (g *Grid) Validate() error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidCostGrid)
	case g.released || len(g.data) != grid.RoomArea:
		return fmt.Errorf("%w: grid has been released", ErrInvalidCostGrid)
	}

	return nil
}

// Raw exposes the backing slice in row-major order for read-only hot loops.
// The slice is owned by g.
func (g *Grid) Raw() []uint8 {
	g.mustLive()

	return g.data
}

func (g *Grid) mustLive() {
	if g.released {
		panic(ErrInvalidCostGrid.Error() + ": use after release")
	}
}
