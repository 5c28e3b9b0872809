package search

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/tilepath/grid"
)

// node is a frontier entry. f orders the priority frontier; g is the
// accumulated cost at push time and detects stale entries.
type node struct {
	pos grid.Position
	g   uint32
	f   uint64
}

// frontier is the container half of a Strategy.
type frontier interface {
	push(n node)
	pop() (node, bool)
}

// fifo is a slice queue with a moving head; popped slots are reclaimed when
// the queue drains.
type fifo struct {
	items []node
	head  int
}

func (q *fifo) push(n node) { q.items = append(q.items, n) }

func (q *fifo) pop() (node, bool) {
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
		return node{}, false
	}
	n := q.items[q.head]
	q.head++

	return n, true
}

// priority is a binary min-heap on f; equal f prefers the larger g so that
// A* finishes the deepest candidate first. Decrease-key is lazy: improved
// tiles are pushed again and stale entries skipped on pop.
type priority struct {
	h *heap.Heap[node]
}

func newPriority() *priority {
	return &priority{h: heap.New(func(a, b node) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g > b.g
	})}
}

func (q *priority) push(n node) { q.h.Push(n) }

func (q *priority) pop() (node, bool) { return q.h.Pop() }
