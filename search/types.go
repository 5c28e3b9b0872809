package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/flowfield"
	"github.com/katalvlaran/tilepath/grid"
)

// Sentinel errors for search configuration.
var (
	// ErrUnbounded is returned when neither a budget nor a destination is set.
	ErrUnbounded = errors.New("search: at least one of MaxRooms, MaxOps, MaxRoomDistance, MaxCost or a destination must be set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNilProvider is returned when the cost provider is nil.
	ErrNilProvider = errors.New("search: cost provider is nil")

	// ErrConflictingGoals is returned when any-of and all-of are both set.
	ErrConflictingGoals = errors.New("search: any-of and all-of destinations are mutually exclusive")
)

// Unlimited marks an unset integer budget.
const Unlimited = -1

// Destination is a target tile with a tolerance radius: any tile within
// Chebyshev Range of Pos satisfies it.
type Destination struct {
	Pos   grid.Position
	Range int
}

// Reached reports whether p satisfies d.
func (d Destination) Reached(p grid.Position) bool {
	return p.RangeTo(d.Pos) <= d.Range
}

// Remaining returns the number of steps from p into d's range.
func (d Destination) Remaining(p grid.Position) int {
	return max(0, p.RangeTo(d.Pos)-d.Range)
}

// Goal selects how destinations stop a search.
type Goal int

const (
	// GoalNone runs until the frontier or a budget is exhausted.
	GoalNone Goal = iota
	// GoalAnyOf stops at the first destination reached.
	GoalAnyOf
	// GoalAllOf stops once every destination has been reached.
	GoalAllOf
)

// Options holds the budgets and destinations of one search.
type Options struct {
	// MaxRooms caps the number of rooms loaded; Unlimited by default.
	MaxRooms int
	// MaxOps caps tile expansions; Unlimited by default.
	MaxOps int
	// MaxRoomDistance caps the Manhattan room distance from the first
	// seed's room; Unlimited by default.
	MaxRoomDistance int
	// MaxCost caps recorded distances; field.Unreachable-1 by default.
	MaxCost uint32

	Goal         Goal
	Destinations []Destination

	// internal error recorded during option parsing
	err error
	// set when any budget option was applied
	bounded bool
}

// Option configures a search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// DefaultOptions returns options with every budget unlimited and no goal.
func DefaultOptions() Options {
	return Options{
		MaxRooms:        Unlimited,
		MaxOps:          Unlimited,
		MaxRoomDistance: Unlimited,
		MaxCost:         field.Unreachable - 1,
	}
}

// NewOptions applies opts over DefaultOptions and validates the outcome.
// ErrUnbounded is not checked here; callers decide whether it applies.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Bounded reports whether a budget or a destination limits the search.
func (o Options) Bounded() bool {
	return o.bounded || o.Goal != GoalNone
}

// WithMaxRooms limits the number of rooms loaded (n ≥ 1).
func WithMaxRooms(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("MaxRooms must be at least 1 (%d)", n)
			return
		}
		o.MaxRooms, o.bounded = n, true
	}
}

// WithMaxOps limits the number of tile expansions (n ≥ 0).
func WithMaxOps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("MaxOps cannot be negative (%d)", n)
			return
		}
		o.MaxOps, o.bounded = n, true
	}
}

// WithMaxRoomDistance limits rooms to within n rooms (Manhattan) of the
// first seed's room (n ≥ 0).
func WithMaxRoomDistance(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("MaxRoomDistance cannot be negative (%d)", n)
			return
		}
		o.MaxRoomDistance, o.bounded = n, true
	}
}

// WithMaxCost drops tiles whose distance would exceed c (c ≥ 0).
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail("MaxCost cannot be negative (%d)", c)
			return
		}
		o.MaxCost = uint32(min(int64(c), int64(field.Unreachable-1)))
		o.bounded = true
	}
}

// WithAnyOf stops the search at the first destination reached.
func WithAnyOf(dests ...Destination) Option {
	return withGoal(GoalAnyOf, dests)
}

// WithAllOf stops the search once every destination has been reached.
func WithAllOf(dests ...Destination) Option {
	return withGoal(GoalAllOf, dests)
}

func withGoal(goal Goal, dests []Destination) Option {
	return func(o *Options) {
		if len(dests) == 0 {
			return
		}
		if o.Goal != GoalNone && o.Goal != goal {
			o.err = ErrConflictingGoals
			return
		}
		for _, d := range dests {
			if d.Range < 0 {
				o.fail("destination %s has negative range %d", d.Pos, d.Range)
				return
			}
			if !d.Pos.Coord().Valid() {
				o.fail("destination %#x is not a valid position", d.Pos.Packed())
				return
			}
		}
		o.Goal = goal
		o.Destinations = append(o.Destinations, dests...)
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// Strategy parameterises the shared search loop. Run treats the zero value
// as BFS; its String is empty.
type Strategy struct {
	name      string
	fifo      bool // FIFO frontier instead of a priority queue
	weighted  bool // step cost is the entered tile's cost, otherwise 1
	heuristic bool // order by g + distance to the nearest destination
}

var (
	// BFS floods with unit step costs.
	BFS = Strategy{name: "bfs", fifo: true}
	// Dijkstra floods by accumulated tile cost.
	Dijkstra = Strategy{name: "dijkstra", weighted: true}
	// AStar is Dijkstra guided toward the destinations.
	AStar = Strategy{name: "astar", weighted: true, heuristic: true}
)

// String returns the strategy name.
func (s Strategy) String() string { return s.name }

// StopReason tells why the search loop ended.
type StopReason int

const (
	// StopFrontier: nothing left to expand.
	StopFrontier StopReason = iota
	// StopOps: the MaxOps budget ran out.
	StopOps
	// StopAnyOf: a destination was reached.
	StopAnyOf
	// StopAllOf: every destination was reached.
	StopAllOf
)

func (r StopReason) String() string {
	switch r {
	case StopOps:
		return "ops budget"
	case StopAnyOf:
		return "any-of reached"
	case StopAllOf:
		return "all-of reached"
	default:
		return "frontier exhausted"
	}
}

// Result is the outcome of Run.
type Result struct {
	// Distances covers every room loaded during the search.
	Distances *field.MultiroomDistanceMap
	// Found lists the tiles that matched a destination, in match order.
	Found []grid.Position
	// Ops counts tile expansions.
	Ops int
	// Stop is the reason the loop ended.
	Stop StopReason
}

// Rooms lists the rooms covered by the distance map.
func (r *Result) Rooms() []grid.RoomID { return r.Distances.Rooms() }

// FlowField derives a multi-room flow field from the distances.
func (r *Result) FlowField() (*field.MultiroomFlowField, error) {
	return flowfield.DeriveMultiroom(r.Distances)
}

// MonoFlowField derives a multi-room mono flow field from the distances.
func (r *Result) MonoFlowField() (*field.MultiroomMonoFlowField, error) {
	return flowfield.DeriveMultiroomMono(r.Distances)
}

// Release releases the distance map.
func (r *Result) Release() { r.Distances.Release() }
