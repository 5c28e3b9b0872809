package cost

import "github.com/katalvlaran/tilepath/grid"

// Provider supplies the cost grid of a room on demand.
//
// The outcome has two explicit cases:
//
//	g, true, nil   – search the room with g
//	_, false, nil  – no grid: every tile of the room is unreachable
//
// A non-nil error aborts the search and reaches the caller unchanged.
// Providers are called at most once per room per search.
type Provider func(room grid.RoomID) (g *Grid, ok bool, err error)

// Static returns a provider handing out g for every room.
func Static(g *Grid) Provider {
	return func(grid.RoomID) (*Grid, bool, error) {
		return g, true, nil
	}
}

// Rooms returns a provider backed by a map. Rooms absent from m have no grid.
func Rooms(m map[grid.RoomID]*Grid) Provider {
	return func(room grid.RoomID) (*Grid, bool, error) {
		g, ok := m[room]

		return g, ok, nil
	}
}
