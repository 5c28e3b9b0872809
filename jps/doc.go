// Package jps finds point-to-point paths with Jump Point Search.
//
// What:
//
//	Path searches from one origin toward a small set of destinations on a
//	uniform-cost world grid: a tile is either passable (cost < 255) or not,
//	and every move costs 1. Straight and diagonal runs are scanned without
//	touching the open list; only jump points are queued.
//
// Jump points:
//
//	A scan stops on the first tile that
//	  - lies within range of a destination,
//	  - has a forced neighbour (an obstacle beside the run opens a turn),
//	  - lies on a room border (x or y is 0 or 49), or
//	  - for diagonal runs, starts a straight run that stops.
//	Diagonal moves may cut wall corners, like every other search here.
//	Scans never leave a room: crossing a border always goes through an
//	expanded border tile, so room budgets are applied per jump point.
//
// Budgets:
//
//	MaxOps counts expanded jump points (DefaultMaxOps when unset). MaxRooms
//	(DefaultMaxRooms when unset) and MaxRoomDistance limit the rooms whose
//	grids are loaded. MaxCost bounds the path length. All-of goals are not
//	supported; destinations passed with WithAnyOf are merged into dests.
//
// Result:
//
//	Path runs from the reached destination tile (index 0) back to the origin
//	(last index). When no destination is reached the path leads to the
//	expanded tile closest to a destination and Incomplete is set. Distances
//	holds the step count of every tile on every accepted jump segment.
//
// Errors:
//
//	ErrNoDestinations        – no destination at all.
//	search.ErrNilProvider    – provider is nil.
//	search.ErrOptionViolation – bad budget, negative range or all-of goal.
//	grid.ErrCoordOutOfRange  – invalid origin.
//	provider errors          – returned unchanged.
//
// Complexity:
//
//	O(J log J + S) for J jump points and S scanned tiles.
package jps
