package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/grid"
)

// ErrBadTerrain is returned by ParseTerrain for malformed rows.
var ErrBadTerrain = errors.New("cost: malformed terrain")

// Terrain is the natural surface of a tile.
type Terrain uint8

const (
	Plain Terrain = iota
	Swamp
	Wall
)

// TerrainCosts maps each terrain kind to a tile cost.
type TerrainCosts struct {
	Plain uint8 `yaml:"plain"`
	Swamp uint8 `yaml:"swamp"`
	Wall  uint8 `yaml:"wall"`
}

// DefaultTerrainCosts returns plain 1, swamp 5, wall 255.
func DefaultTerrainCosts() TerrainCosts {
	return TerrainCosts{Plain: 1, Swamp: 5, Wall: Impassable}
}

func (tc TerrainCosts) of(t Terrain) uint8 {
	switch t {
	case Swamp:
		return tc.Swamp
	case Wall:
		return tc.Wall
	default:
		return tc.Plain
	}
}

// FromTerrain builds a grid from a row-major terrain layout of RoomArea tiles.
func FromTerrain(terrain []Terrain, costs TerrainCosts) (*Grid, error) {
	if len(terrain) != grid.RoomArea {
		return nil, fmt.Errorf("%w: %d tiles, want %d", ErrBadTerrain, len(terrain), grid.RoomArea)
	}
	g := New()
	for i, t := range terrain {
		g.data[i] = costs.of(t)
	}

	return g, nil
}

// ParseTerrain reads up to 50 rows of up to 50 characters:
//
//	'.' or ' '  plain
//	'~'         swamp
//	'#'         wall
//
// Missing rows and columns are plain.
func ParseTerrain(rows []string, costs TerrainCosts) (*Grid, error) {
	if len(rows) > grid.RoomSize {
		return nil, fmt.Errorf("%w: %d rows", ErrBadTerrain, len(rows))
	}
	terrain := make([]Terrain, grid.RoomArea)
	for y, row := range rows {
		if len(row) > grid.RoomSize {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrBadTerrain, y, len(row))
		}
		for x := 0; x < len(row); x++ {
			var t Terrain
			switch row[x] {
			case '.', ' ':
				t = Plain
			case '~':
				t = Swamp
			case '#':
				t = Wall
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadTerrain, row[x], x, y)
			}
			terrain[y*grid.RoomSize+x] = t
		}
	}

	return FromTerrain(terrain, costs)
}
