// Package search is the multi-room orchestrator shared by the breadth-first,
// Dijkstra and A* searches.
//
// What:
//
//	Run expands a frontier from one or more seed positions across room
//	borders, fetching each room's cost grid lazily through a cost.Provider,
//	and records the minimum accumulated cost of every tile it reaches in a
//	field.MultiroomDistanceMap.
//
// Strategies:
//
//	A Strategy is a closed set of parameters fed to one shared loop:
//
//	  BFS      – FIFO frontier, every step costs 1
//	  Dijkstra – priority frontier keyed by g, a step costs the entered tile
//	  AStar    – priority frontier keyed by g+h, h is the Chebyshev distance
//	             to the nearest remaining destination minus its range
//
// Topology:
//
//	8-directional world adjacency. Border tiles of adjacent rooms are
//	neighbours exactly like in-room tiles, and a step across the border costs
//	the same as any other step. Tiles of cost 255 are never entered. Seeds
//	always receive distance 0, whatever their own cost.
//
// Budgets (Options):
//
//	MaxRooms        – distinct rooms whose grid was loaded; rooms the provider
//	                  declines do not count
//	MaxOps          – tile expansions
//	MaxRoomDistance – Manhattan room distance from the first seed's room
//	MaxCost         – tiles whose distance would exceed it are not recorded
//
//	Running out of a budget is not an error: the result is partial, every
//	tile outside it stays field.Unreachable, and Result.Stop says why the
//	loop ended.
//
// Destinations:
//
//	WithAnyOf stops at the first dequeued tile within range of any
//	destination. WithAllOf keeps going until every destination has been
//	matched or the frontier is empty. Matches are tested when a tile is
//	dequeued, seeds included, and recorded in Result.Found.
//
// Errors:
//
//	ErrUnbounded        – no budget and no destination
//	ErrOptionViolation  – a negative budget or range
//	ErrNilProvider      – provider is nil
//	ErrConflictingGoals – both WithAnyOf and WithAllOf given
//	cost.ErrInvalidCostGrid – wrapped with the room name
//	provider errors         – returned unchanged
//
// Complexity:
//
//	BFS O(T), Dijkstra/A* O(T log T) for T recorded tiles; O(T) memory.
package search
