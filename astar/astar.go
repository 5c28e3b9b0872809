// Package astar runs destination-driven multi-room searches guided by a
// Chebyshev heuristic.
//
// The search is the weighted orchestrator of package search with the
// frontier ordered by f = g + h, where h is the number of steps from a tile
// into the range of the nearest destination still pending. Entering a tile
// costs its grid value, except that cost 0 is charged as 1: h counts moves,
// and with every move costing at least 1 it never overestimates, so distances
// of settled tiles are exact. On grids without zero-cost tiles the distances
// equal Dijkstra's. Ties on f are broken toward larger g, which lets the
// search dive toward the goal instead of widening.
//
// Only tiles the search actually touched carry a distance; the rest of every
// loaded room stays field.Unreachable.
//
// Errors:
//
//	ErrNoDestinations – no any-of or all-of destination was given.
//	search.* errors   – see package search.
package astar

import (
	"errors"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

// ErrNoDestinations is returned when the search has nothing to aim for.
var ErrNoDestinations = errors.New("astar: at least one destination must be set")

// MultiroomDistanceMap searches from seeds toward the destinations given with
// search.WithAnyOf or search.WithAllOf.
func MultiroomDistanceMap(seeds []grid.Position, provider cost.Provider, opts ...search.Option) (*search.Result, error) {
	o, err := search.NewOptions(opts...)
	if err != nil {
		return nil, err
	}
	if o.Goal == search.GoalNone {
		return nil, ErrNoDestinations
	}

	return search.Run(seeds, provider, search.AStar, opts...)
}
