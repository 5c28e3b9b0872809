// Package dijkstra computes weighted distance fields over room tiles.
//
// Dijkstra computes the minimum accumulated cost from a set of seed tiles to
// every tile of a room. Entering a tile costs that tile's value in the cost
// grid (0–254); tiles of cost 255 are walls. Seeds start at 0.
//
// Complexity:
//
//   - Time:  O(T log T) for T tiles reached
//   - Each tile may be pushed once per improvement (lazy decrease-key).
//   - Each heap operation costs O(log N).
//   - Space: O(T) for the heap plus the 2500-entry field.
//
// Topology:
//
//   - 8-directional moves.
//   - Inside a single room a border tile never steps onto another border
//     tile; the multi-room entry points lift that restriction and stitch
//     rooms together through package search.
//
// Notes on implementation choices:
//
//   - Stale heap entries are skipped on pop instead of being removed.
//   - Distances are accumulated in uint64 and stored as uint32, with
//     field.Unreachable reserved for tiles no seed reaches.
//
// Errors (sentinel):
//
//   - cost.ErrInvalidCostGrid if the grid is nil or released.
//   - grid.ErrCoordOutOfRange  if a seed lies outside the room.
package dijkstra
