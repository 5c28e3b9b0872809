package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/internal/roomcache"
)

// Run expands seeds across rooms with the given strategy.
//
// Validation order:
//  1. provider must be non-nil (ErrNilProvider).
//  2. options must be valid (ErrOptionViolation, ErrConflictingGoals).
//  3. a budget or a destination must be set (ErrUnbounded).
//  4. every seed must carry a valid in-room coordinate (grid.ErrCoordOutOfRange).
//
// No seeds is not an error: the result simply covers no room.
func Run(seeds []grid.Position, provider cost.Provider, strategy Strategy, opts ...Option) (*Result, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}
	if !o.Bounded() {
		return nil, ErrUnbounded
	}
	for _, s := range seeds {
		if !s.Coord().Valid() {
			return nil, fmt.Errorf("%w: seed %#x", grid.ErrCoordOutOfRange, s.Packed())
		}
	}
	if strategy.name == "" {
		strategy = BFS
	}

	r := newRunner(provider, strategy, o)
	if err = r.init(seeds); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of one search.
type runner struct {
	strategy Strategy
	opts     Options
	rooms    *roomcache.Cache
	frontier frontier
	// dist mirrors res.Distances per loaded room for direct slice access
	dist    map[grid.RoomID][]uint32
	pending []Destination
	found   mapset.Set[grid.Position]
	res     *Result
}

func newRunner(provider cost.Provider, s Strategy, o Options) *runner {
	r := &runner{
		strategy: s,
		opts:     o,
		rooms:    roomcache.New(provider, o.MaxRooms, o.MaxRoomDistance),
		dist:     make(map[grid.RoomID][]uint32),
		pending:  append([]Destination(nil), o.Destinations...),
		found:    mapset.New[grid.Position](),
		res:      &Result{Distances: field.NewMultiroomDistanceMap()},
	}
	if s.fifo {
		r.frontier = &fifo{items: make([]node, 0, grid.RoomArea)}
	} else {
		r.frontier = newPriority()
	}

	return r
}

// init records every seed at distance 0 and pushes it once.
func (r *runner) init(seeds []grid.Position) error {
	for i, s := range seeds {
		if i == 0 {
			r.rooms.SetOrigin(s.Room())
		}
		dist, err := r.room(s.Room())
		if err != nil {
			return err
		}
		if dist == nil {
			continue // seed inside a blocked room
		}
		idx := s.Coord().Index()
		if dist[idx] == 0 {
			continue // duplicate seed
		}
		dist[idx] = 0
		r.frontier.push(node{pos: s, g: 0, f: r.estimate(s)})
	}

	return nil
}

// process is the main loop: pop, match destinations, spend one op, relax.
func (r *runner) process() error {
	for {
		// 1) next tile, skipping entries superseded by a cheaper push
		n, ok := r.frontier.pop()
		if !ok {
			r.res.Stop = StopFrontier
			return nil
		}
		if n.g > r.dist[n.pos.Room()][n.pos.Coord().Index()] {
			continue
		}

		// 2) destinations are matched on dequeue
		if stop, done := r.match(n.pos); done {
			r.res.Stop = stop
			return nil
		}

		// 3) one op per expansion
		if r.opts.MaxOps != Unlimited && r.res.Ops >= r.opts.MaxOps {
			r.res.Stop = StopOps
			return nil
		}
		r.res.Ops++

		if err := r.relax(n); err != nil {
			return err
		}
	}
}

// relax pushes every neighbour of n whose distance improves.
func (r *runner) relax(n node) error {
	var (
		curRoom = n.pos.Room()
		curDist = r.dist[curRoom]
		curCost = r.costs(curRoom)
	)
	for _, d := range grid.Directions {
		next, ok := n.pos.Step(d)
		if !ok {
			continue
		}

		// 1) resolve the neighbour's room, loading it on first contact
		dist, costs := curDist, curCost
		if room := next.Room(); room != curRoom {
			var err error
			if dist, err = r.room(room); err != nil {
				return err
			}
			if dist == nil {
				continue
			}
			costs = r.costs(room)
		}

		// 2) passability and step cost
		idx := next.Coord().Index()
		c := costs[idx]
		if c == cost.Impassable {
			continue
		}
		step := uint64(1)
		if r.strategy.weighted {
			step = uint64(c)
			// h counts moves, so guided searches charge at least 1 per move
			if r.strategy.heuristic {
				step = max(step, 1)
			}
		}

		// 3) MaxCost prunes, and only strict improvements are pushed
		g := uint64(n.g) + step
		if g > uint64(r.opts.MaxCost) || g >= uint64(dist[idx]) {
			continue
		}
		dist[idx] = uint32(g)
		r.frontier.push(node{pos: next, g: uint32(g), f: g + r.estimate(next)})
	}

	return nil
}

// room returns the distance slice of room, or nil when the room is blocked.
func (r *runner) room(room grid.RoomID) ([]uint32, error) {
	if dist, ok := r.dist[room]; ok {
		return dist, nil
	}
	e, err := r.rooms.Get(room)
	if err != nil {
		return nil, err
	}
	if e.Blocked() {
		return nil, nil
	}
	dist := r.res.Distances.Ensure(room).Raw()
	r.dist[room] = dist

	return dist, nil
}

// costs returns the cost slice of an already loaded room.
func (r *runner) costs(room grid.RoomID) []uint8 {
	e, _ := r.rooms.Get(room)

	return e.Costs
}

// match applies the destination predicate to a dequeued tile.
func (r *runner) match(p grid.Position) (StopReason, bool) {
	switch r.opts.Goal {
	case GoalAnyOf:
		for _, d := range r.pending {
			if d.Reached(p) {
				r.record(p)
				return StopAnyOf, true
			}
		}
	case GoalAllOf:
		kept := r.pending[:0]
		for _, d := range r.pending {
			if d.Reached(p) {
				r.record(p)
				continue
			}
			kept = append(kept, d)
		}
		r.pending = kept
		if len(r.pending) == 0 {
			return StopAllOf, true
		}
	}

	return 0, false
}

func (r *runner) record(p grid.Position) {
	if !r.found.Has(p) {
		r.found.Put(p)
		r.res.Found = append(r.res.Found, p)
	}
}

// estimate is the A* heuristic: steps left to the nearest remaining
// destination's range. It is 0 for other strategies.
func (r *runner) estimate(p grid.Position) uint64 {
	if !r.strategy.heuristic || len(r.pending) == 0 {
		return 0
	}
	best := r.pending[0].Remaining(p)
	for _, d := range r.pending[1:] {
		best = min(best, d.Remaining(p))
	}

	return uint64(best)
}
