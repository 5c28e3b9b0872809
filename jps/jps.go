package jps

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/internal/roomcache"
	"github.com/katalvlaran/tilepath/path"
	"github.com/katalvlaran/tilepath/search"
)

const (
	// DefaultMaxOps applies when no MaxOps option is given.
	DefaultMaxOps = 50000
	// DefaultMaxRooms applies when no MaxRooms option is given.
	DefaultMaxRooms = 16
)

// ErrNoDestinations is returned when there is nothing to search for.
var ErrNoDestinations = errors.New("jps: at least one destination must be set")

// Result is the outcome of Path.
type Result struct {
	// Path runs from the reached tile back to the origin.
	Path *path.Path
	// Distances holds step counts along accepted jump segments.
	Distances *field.MultiroomDistanceMap
	// Found holds the reached destination tile, if any.
	Found []grid.Position
	// Ops counts expanded jump points.
	Ops int
	// Cost is the number of moves along Path.
	Cost uint32
	// Incomplete is set when no destination was reached.
	Incomplete bool
}

// Release releases the path and the distance map.
func (r *Result) Release() {
	r.Path.Release()
	r.Distances.Release()
}

// Path searches from origin to the nearest of dests.
func Path(origin grid.Position, dests []search.Destination, provider cost.Provider, opts ...search.Option) (*Result, error) {
	// 1) inputs
	if provider == nil {
		return nil, search.ErrNilProvider
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return nil, err
	}
	if o.Goal == search.GoalAllOf {
		return nil, fmt.Errorf("%w: all-of destinations are not supported", search.ErrOptionViolation)
	}
	all := append(append([]search.Destination(nil), dests...), o.Destinations...)
	if len(all) == 0 {
		return nil, ErrNoDestinations
	}
	for _, d := range all {
		if d.Range < 0 || !d.Pos.Coord().Valid() {
			return nil, fmt.Errorf("%w: destination %#x range %d", search.ErrOptionViolation, d.Pos.Packed(), d.Range)
		}
	}
	if !origin.Coord().Valid() {
		return nil, fmt.Errorf("%w: origin %#x", grid.ErrCoordOutOfRange, origin.Packed())
	}

	// 2) defaults for the budgets JPS always enforces
	if o.MaxOps == search.Unlimited {
		o.MaxOps = DefaultMaxOps
	}
	if o.MaxRooms == search.Unlimited {
		o.MaxRooms = DefaultMaxRooms
	}

	f := newFinder(provider, all, o)

	return f.run(origin)
}

// node is an open-list entry.
type node struct {
	pos grid.Position
	g   uint32
	f   uint64
}

// finder holds the state of one search.
type finder struct {
	opts  search.Options
	dests []search.Destination
	rooms *roomcache.Cache
	// first provider error; scans treat everything as blocked afterwards
	err error

	open   *heap.Heap[node]
	best   map[grid.Position]uint32
	parent map[grid.Position]grid.Position
	dist   *field.MultiroomDistanceMap
	ops    int
}

func newFinder(provider cost.Provider, dests []search.Destination, o search.Options) *finder {
	return &finder{
		opts:  o,
		dests: dests,
		rooms: roomcache.New(provider, o.MaxRooms, o.MaxRoomDistance),
		open: heap.New(func(a, b node) bool {
			if a.f != b.f {
				return a.f < b.f
			}
			return a.g > b.g
		}),
		best:   make(map[grid.Position]uint32),
		parent: make(map[grid.Position]grid.Position),
		dist:   field.NewMultiroomDistanceMap(),
	}
}

func (f *finder) run(origin grid.Position) (*Result, error) {
	f.rooms.SetOrigin(origin.Room())
	e, err := f.rooms.Get(origin.Room())
	if err != nil {
		return nil, err
	}
	f.push(origin, origin, 0)

	end, endH := origin, f.h(origin)
	if endH == 0 {
		return f.result(origin, true), nil
	}
	if e.Blocked() {
		return f.result(origin, false), nil
	}

	for {
		// 1) cheapest open jump point, skipping superseded entries
		n, ok := f.open.Pop()
		if !ok {
			break
		}
		if n.g > f.best[n.pos] {
			continue
		}

		// 2) destination test, then remember the closest tile so far
		h := f.h(n.pos)
		if h == 0 {
			return f.result(n.pos, true), nil
		}
		if h < endH {
			end, endH = n.pos, h
		}

		// 3) one op per expansion
		if f.ops >= f.opts.MaxOps {
			break
		}
		f.ops++
		f.expand(n)
		if f.err != nil {
			return nil, f.err
		}
	}

	return f.result(end, false), nil
}

func (f *finder) result(end grid.Position, reached bool) *Result {
	trail := f.trace(end)
	res := &Result{
		Path:       trail,
		Distances:  f.dist,
		Ops:        f.ops,
		Cost:       uint32(trail.Len() - 1),
		Incomplete: !reached,
	}
	if reached {
		res.Found = []grid.Position{end}
	}

	return res
}

// expand scans from n in every direction its arrival direction allows.
func (f *finder) expand(n node) {
	budget := int64(f.opts.MaxCost) - int64(n.g)
	for _, d := range f.successors(n.pos) {
		dx, dy := d.Offset()
		jp, steps, ok := f.jump(n.pos, dx, dy, budget)
		if !ok {
			continue
		}
		f.push(n.pos, jp, n.g+uint32(steps))
	}
}

// successors returns the pruned move set of p: natural neighbours of the
// arrival direction plus forced ones. The origin gets all eight moves.
func (f *finder) successors(p grid.Position) []grid.Direction {
	par := f.parent[p]
	if par == p {
		return grid.Directions[:]
	}
	dx, dy := par.DirectionTo(p).Offset()
	dirs := make([]grid.Direction, 0, 5)
	add := func(x, y int) { dirs = append(dirs, grid.DirectionTo(x, y)) }

	switch {
	case dx != 0 && dy != 0:
		add(dx, 0)
		add(0, dy)
		add(dx, dy)
		if !f.walkable(p, -dx, 0) {
			add(-dx, dy)
		}
		if !f.walkable(p, 0, -dy) {
			add(dx, -dy)
		}
	case dx != 0:
		add(dx, 0)
		if !f.walkable(p, 0, 1) {
			add(dx, 1)
		}
		if !f.walkable(p, 0, -1) {
			add(dx, -1)
		}
	default:
		add(0, dy)
		if !f.walkable(p, 1, 0) {
			add(1, dy)
		}
		if !f.walkable(p, -1, 0) {
			add(-1, dy)
		}
	}

	return dirs
}

// jump scans from p in (dx, dy) and returns the next jump point with the
// number of moves to it. ok is false when the scan hits an obstacle or runs
// past budget moves.
func (f *finder) jump(p grid.Position, dx, dy int, budget int64) (grid.Position, int, bool) {
	cur := p
	for steps := 1; int64(steps) <= budget; steps++ {
		next, ok := f.step(cur, dx, dy)
		if !ok || !f.passable(next) {
			return 0, 0, false
		}
		cur = next
		if f.h(cur) == 0 || cur.IsEdge() || f.forced(cur, dx, dy) {
			return cur, steps, true
		}
		if dx != 0 && dy != 0 {
			rest := budget - int64(steps)
			if f.leadsToJump(cur, dx, 0, rest) || f.leadsToJump(cur, 0, dy, rest) {
				return cur, steps, true
			}
		}
	}

	return 0, 0, false
}

// leadsToJump reports whether a straight scan from p finds a jump point.
func (f *finder) leadsToJump(p grid.Position, dx, dy int, budget int64) bool {
	_, _, ok := f.jump(p, dx, dy, budget)

	return ok
}

// forced reports whether p, entered in (dx, dy), has a forced neighbour.
func (f *finder) forced(p grid.Position, dx, dy int) bool {
	switch {
	case dx != 0 && dy != 0:
		return (!f.walkable(p, -dx, 0) && f.walkable(p, -dx, dy)) ||
			(!f.walkable(p, 0, -dy) && f.walkable(p, dx, -dy))
	case dx != 0:
		return (!f.walkable(p, 0, 1) && f.walkable(p, dx, 1)) ||
			(!f.walkable(p, 0, -1) && f.walkable(p, dx, -1))
	default:
		return (!f.walkable(p, 1, 0) && f.walkable(p, 1, dy)) ||
			(!f.walkable(p, -1, 0) && f.walkable(p, -1, dy))
	}
}

func (f *finder) step(p grid.Position, dx, dy int) (grid.Position, bool) {
	return p.Step(grid.DirectionTo(dx, dy))
}

func (f *finder) walkable(p grid.Position, dx, dy int) bool {
	n, ok := f.step(p, dx, dy)

	return ok && f.passable(n)
}

// passable loads p's room on first contact. Blocked rooms are impassable.
func (f *finder) passable(p grid.Position) bool {
	if f.err != nil {
		return false
	}
	e, err := f.rooms.Get(p.Room())
	if err != nil {
		f.err = err
		return false
	}

	return !e.Blocked() && e.Costs[p.Coord().Index()] != cost.Impassable
}

// h is the number of moves from p into range of the nearest destination.
func (f *finder) h(p grid.Position) uint32 {
	best := f.dests[0].Remaining(p)
	for _, d := range f.dests[1:] {
		best = min(best, d.Remaining(p))
	}

	return uint32(best)
}

// push records pos as reached from parent with g moves if that improves it,
// and paints the segment between them into the distance map.
func (f *finder) push(parent, pos grid.Position, g uint32) {
	if old, ok := f.best[pos]; ok && old <= g {
		return
	}
	f.best[pos] = g
	f.parent[pos] = parent

	k, cur := g, pos
	for {
		if k < f.dist.Get(cur) {
			f.dist.Set(cur, k)
		}
		if cur == parent {
			break
		}
		cur, _ = cur.Step(cur.DirectionTo(parent))
		k--
	}

	f.open.Push(node{pos: pos, g: g, f: uint64(g) + uint64(f.h(pos))})
}

// trace walks parents from end to the origin, filling in jumped tiles.
func (f *finder) trace(end grid.Position) *path.Path {
	p := path.New(end)
	for cur := end; ; {
		par := f.parent[cur]
		if par == cur {
			return p
		}
		for cur != par {
			cur, _ = cur.Step(cur.DirectionTo(par))
			p.Add(cur)
		}
	}
}
