// Package roomcache memoises cost-grid provider answers for one search call
// and enforces the room budgets (count and distance from the origin room).
package roomcache

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
)

// Unlimited disables a room budget.
const Unlimited = -1

// Entry is the cached state of one room. Costs is nil for blocked rooms.
type Entry struct {
	Room  grid.RoomID
	Costs []uint8
}

// Blocked reports whether the room cannot be entered.
func (e *Entry) Blocked() bool { return e.Costs == nil }

// Cache answers room lookups for a single search.
type Cache struct {
	provider        cost.Provider
	maxRooms        int
	maxRoomDistance int

	origin    grid.RoomID
	hasOrigin bool

	entries map[grid.RoomID]*Entry
	entered []grid.RoomID
	// skipped holds rooms whose provider said "no grid"
	skipped mapset.Set[grid.RoomID]
	// refused holds rooms rejected by a budget; the provider was not called
	refused mapset.Set[grid.RoomID]
}

// New returns an empty cache. Pass Unlimited to disable a budget.
func New(provider cost.Provider, maxRooms, maxRoomDistance int) *Cache {
	return &Cache{
		provider:        provider,
		maxRooms:        maxRooms,
		maxRoomDistance: maxRoomDistance,
		entries:         make(map[grid.RoomID]*Entry),
		skipped:         mapset.New[grid.RoomID](),
		refused:         mapset.New[grid.RoomID](),
	}
}

// SetOrigin fixes the room that room distances are measured from.
// Only the first call has an effect.
func (c *Cache) SetOrigin(room grid.RoomID) {
	if !c.hasOrigin {
		c.origin, c.hasOrigin = room, true
	}
}

// Get returns the entry of room, calling the provider on first use.
// Provider errors are returned unchanged; invalid grids are wrapped with
// the room name.
func (c *Cache) Get(room grid.RoomID) (*Entry, error) {
	if e, ok := c.entries[room]; ok {
		return e, nil
	}

	// 1) budgets are checked before the provider is consulted
	if !c.admissible(room) {
		c.refused.Put(room)
		return c.block(room), nil
	}

	// 2) ask the caller
	g, ok, err := c.provider(room)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.skipped.Put(room)
		return c.block(room), nil
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%w (room %s)", err, room)
	}

	// 3) the room now counts against MaxRooms
	e := &Entry{Room: room, Costs: g.Raw()}
	c.entries[room] = e
	c.entered = append(c.entered, room)

	return e, nil
}

// Entered lists rooms that were loaded, in load order.
func (c *Cache) Entered() []grid.RoomID { return c.entered }

// Skipped reports whether the provider answered "no grid" for room.
func (c *Cache) Skipped(room grid.RoomID) bool { return c.skipped.Has(room) }

// Refused reports whether a room budget kept room out of the search.
func (c *Cache) Refused(room grid.RoomID) bool { return c.refused.Has(room) }

func (c *Cache) admissible(room grid.RoomID) bool {
	if c.maxRooms != Unlimited && len(c.entered) >= c.maxRooms {
		return false
	}
	if c.maxRoomDistance != Unlimited && c.hasOrigin &&
		c.origin.ManhattanDistance(room) > c.maxRoomDistance {
		return false
	}

	return true
}

func (c *Cache) block(room grid.RoomID) *Entry {
	e := &Entry{Room: room}
	c.entries[room] = e

	return e
}
