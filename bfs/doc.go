// Package bfs computes unweighted distance fields over room tiles.
//
// What
//
//   - DistanceMap floods one room from a set of seed tiles and returns, for
//     every tile, the number of moves to the nearest seed.
//   - FlowField and MonoFlowField derive the matching flow fields.
//   - Components labels the connected passable regions of a room under the
//     same move rules, so reachability can be checked before searching.
//   - The Multiroom* entry points run the same flood across room borders via
//     the search package, fetching cost grids lazily.
//
// Rules
//
//   - 8-directional moves; every move costs 1.
//   - A tile is entered iff its cost is below 255. The cost value itself is
//     ignored, so 0 and 254 are equally cheap.
//   - Inside a single room, a border tile never steps to another border tile.
//     Walking along the border belongs to the multi-room search, where the
//     next room is reachable.
//   - Seeds get distance 0 even on impassable tiles; the first visit of any
//     other tile is final.
//
// Complexity
//
//   - Time:   O(T) for T tiles reached (each tile enqueued once).
//   - Memory: O(T) for the queue plus the 2500-entry field.
//
// Errors
//
//   - cost.ErrInvalidCostGrid  for a nil or released grid.
//   - grid.ErrCoordOutOfRange  for a seed outside the room.
//   - ErrRegionIndex           for a region label that does not exist.
//   - search.* errors from the multi-room entry points.
package bfs
