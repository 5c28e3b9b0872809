// Package scenario loads YAML files describing rooms and queries and runs
// them through the search packages.
//
// File layout:
//
//	rooms:
//	  W1N1:
//	    default: 1                  # uniform tile cost (1 when omitted)
//	    terrain: ["..~~#", ...]     # optional rows; '.' plain, '~' swamp, '#' wall
//	    costs: {swamp: 5}           # terrain costs over plain 1, swamp 5, wall 255
//	  W2N1: {blocked: true}         # the provider answers "no grid"
//	queries:
//	  - name: to-exit
//	    algorithm: astar            # bfs | dijkstra | astar | jps
//	    seeds: ["W1N1:25:25"]
//	    any_of: [{pos: "W1N2:25:10", range: 1}]
//	    budget: {max_rooms: 4, max_ops: 20000}
//	    path_from: "W1N2:25:10"
//
// Rooms not listed behave like blocked rooms. Every name and position is
// checked when the file is parsed, so Run only fails on search errors.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

// Sentinel errors for scenario files.
var (
	// ErrUnknownAlgorithm is returned for an algorithm name other than
	// bfs, dijkstra, astar or jps.
	ErrUnknownAlgorithm = errors.New("scenario: unknown algorithm")

	// ErrUnknownQuery is returned by Run and Query for a missing name.
	ErrUnknownQuery = errors.New("scenario: unknown query")

	// ErrUnknownRoom is returned for a room key that is not a room name.
	ErrUnknownRoom = errors.New("scenario: unknown room")

	// ErrInvalidQuery is returned for malformed queries.
	ErrInvalidQuery = errors.New("scenario: invalid query")
)

// Algorithm names accepted in query files.
const (
	AlgorithmBFS      = "bfs"
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
	AlgorithmJPS      = "jps"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Rooms   map[string]Room `yaml:"rooms"`
	Queries []Query         `yaml:"queries"`

	grids map[grid.RoomID]*cost.Grid
}

// Room describes the cost grid of one room.
type Room struct {
	Default uint8             `yaml:"default"`
	Terrain []string          `yaml:"terrain"`
	Costs   cost.TerrainCosts `yaml:"costs"`
	Blocked bool              `yaml:"blocked"`
}

// UnmarshalYAML fills in default costs before decoding.
func (r *Room) UnmarshalYAML(value *yaml.Node) error {
	type plain Room
	raw := plain{Default: 1, Costs: cost.DefaultTerrainCosts()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*r = Room(raw)

	return nil
}

// Target is a destination entry.
type Target struct {
	Pos   string `yaml:"pos"`
	Range int    `yaml:"range"`
}

// Budget holds the optional search budgets of a query.
type Budget struct {
	MaxRooms        *int `yaml:"max_rooms"`
	MaxOps          *int `yaml:"max_ops"`
	MaxRoomDistance *int `yaml:"max_room_distance"`
	MaxCost         *int `yaml:"max_cost"`
}

// Query is one search to run.
type Query struct {
	Name      string   `yaml:"name"`
	Algorithm string   `yaml:"algorithm"`
	Seeds     []string `yaml:"seeds"`
	AnyOf     []Target `yaml:"any_of"`
	AllOf     []Target `yaml:"all_of"`
	Budget    Budget   `yaml:"budget"`
	PathFrom  string   `yaml:"path_from"`

	seeds []grid.Position
	anyOf []search.Destination
	allOf []search.Destination
	from  *grid.Position
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate builds the room grids and checks every query.
func (s *Scenario) Validate() error {
	s.grids = make(map[grid.RoomID]*cost.Grid, len(s.Rooms))
	for name, r := range s.Rooms {
		id, err := grid.ParseRoomID(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownRoom, err)
		}
		if r.Blocked {
			continue
		}
		g, err := r.costGrid()
		if err != nil {
			return fmt.Errorf("rooms.%s: %w", name, err)
		}
		s.grids[id] = g
	}

	names := make(map[string]bool, len(s.Queries))
	for i := range s.Queries {
		q := &s.Queries[i]
		if q.Name == "" {
			return fmt.Errorf("%w: queries[%d].name must be set", ErrInvalidQuery, i)
		}
		if names[q.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidQuery, q.Name)
		}
		names[q.Name] = true
		if err := q.validate(); err != nil {
			return fmt.Errorf("queries[%d] %s: %w", i, q.Name, err)
		}
	}

	return nil
}

func (r Room) costGrid() (*cost.Grid, error) {
	if len(r.Terrain) > 0 {
		return cost.ParseTerrain(r.Terrain, r.Costs)
	}

	return cost.NewFilled(r.Default), nil
}

func (q *Query) validate() error {
	switch q.Algorithm {
	case AlgorithmBFS, AlgorithmDijkstra, AlgorithmAStar:
	case AlgorithmJPS:
		if len(q.Seeds) != 1 {
			return fmt.Errorf("%w: jps takes exactly one seed, got %d", ErrInvalidQuery, len(q.Seeds))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, q.Algorithm)
	}

	q.seeds = make([]grid.Position, 0, len(q.Seeds))
	for _, s := range q.Seeds {
		p, err := grid.ParsePosition(s)
		if err != nil {
			return err
		}
		q.seeds = append(q.seeds, p)
	}

	var err error
	if q.anyOf, err = destinations(q.AnyOf); err != nil {
		return err
	}
	if q.allOf, err = destinations(q.AllOf); err != nil {
		return err
	}

	if q.PathFrom != "" {
		p, err := grid.ParsePosition(q.PathFrom)
		if err != nil {
			return err
		}
		q.from = &p
	}

	return nil
}

func destinations(ts []Target) ([]search.Destination, error) {
	out := make([]search.Destination, 0, len(ts))
	for _, t := range ts {
		p, err := grid.ParsePosition(t.Pos)
		if err != nil {
			return nil, err
		}
		out = append(out, search.Destination{Pos: p, Range: t.Range})
	}

	return out, nil
}

// Provider serves the grids of the scenario's rooms. Blocked and unlisted
// rooms have no grid.
func (s *Scenario) Provider() cost.Provider {
	return cost.Rooms(s.grids)
}

// Query returns the query called name.
func (s *Scenario) Query(name string) (*Query, error) {
	for i := range s.Queries {
		if s.Queries[i].Name == name {
			return &s.Queries[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, name)
}

// Names lists the query names in file order.
func (s *Scenario) Names() []string {
	out := make([]string, len(s.Queries))
	for i, q := range s.Queries {
		out[i] = q.Name
	}

	return out
}

// Options turns the budget and destinations into search options.
// Invalid values surface as search.ErrOptionViolation when the query runs.
func (q *Query) Options() []search.Option {
	var opts []search.Option
	if b := q.Budget.MaxRooms; b != nil {
		opts = append(opts, search.WithMaxRooms(*b))
	}
	if b := q.Budget.MaxOps; b != nil {
		opts = append(opts, search.WithMaxOps(*b))
	}
	if b := q.Budget.MaxRoomDistance; b != nil {
		opts = append(opts, search.WithMaxRoomDistance(*b))
	}
	if b := q.Budget.MaxCost; b != nil {
		opts = append(opts, search.WithMaxCost(*b))
	}
	if len(q.anyOf) > 0 {
		opts = append(opts, search.WithAnyOf(q.anyOf...))
	}
	if len(q.allOf) > 0 {
		opts = append(opts, search.WithAllOf(q.allOf...))
	}

	return opts
}
