// Package arena frees search results at the end of a host step.
//
// What:
//
//	Distance maps, flow fields and paths own large buffers. A host that
//	runs one batch of queries per step can mark results ephemeral: they are
//	released the first time the arena sees a newer generation. Persist
//	takes an item back out so it survives.
//
// Usage:
//
//	a := arena.New()
//	res := arena.Ephemeral(a, tick, mustSearch())
//	keep := arena.Persist(a, arena.Ephemeral(a, tick, mustPath()))
//
// Items are keyed by identity, so their dynamic type must be comparable.
// Pointer types such as *field.MultiroomDistanceMap always are; tracking a
// slice or map value panics with ErrNotComparable.
//
// An Arena is not safe for concurrent use.
package arena

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zyedidia/generic/mapset"
)

// ErrNotComparable is the panic value of Track and Untrack for items whose
// dynamic type cannot be a set key.
var ErrNotComparable = errors.New("arena: releaser type is not comparable")

// Releaser is anything that owns buffers it can give back.
type Releaser interface {
	Release()
}

// Arena tracks ephemeral items of the current generation.
type Arena struct {
	gen   uint64
	items mapset.Set[Releaser]
}

// New returns an empty arena at generation 0.
func New() *Arena {
	return &Arena{items: mapset.New[Releaser]()}
}

// Generation reports the current generation.
func (a *Arena) Generation() uint64 { return a.gen }

// Len reports how many items will be released on the next Advance.
func (a *Arena) Len() int { return a.items.Size() }

// Track adds item to the current generation. Nil items are ignored.
func (a *Arena) Track(item Releaser) {
	if item == nil {
		return
	}
	mustComparable(item)
	a.items.Put(item)
}

// Untrack removes item without releasing it.
func (a *Arena) Untrack(item Releaser) {
	if item == nil {
		return
	}
	mustComparable(item)
	a.items.Remove(item)
}

func mustComparable(item Releaser) {
	if t := reflect.TypeOf(item); !t.Comparable() {
		panic(fmt.Errorf("%w: %s", ErrNotComparable, t))
	}
}

// Advance moves the arena to gen. Moving to a different generation releases
// every tracked item and returns how many were released; the same
// generation is a no-op.
func (a *Arena) Advance(gen uint64) int {
	if gen == a.gen {
		return 0
	}
	a.gen = gen

	released := a.items.Size()
	a.items.Each(func(item Releaser) {
		item.Release()
	})
	a.items = mapset.New[Releaser]()

	return released
}

// Ephemeral advances a to gen and tracks item in it.
func Ephemeral[T Releaser](a *Arena, gen uint64, item T) T {
	a.Advance(gen)
	a.Track(item)

	return item
}

// Persist stops tracking item so a later Advance leaves it alone.
func Persist[T Releaser](a *Arena, item T) T {
	a.Untrack(item)

	return item
}
