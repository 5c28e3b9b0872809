package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/flowfield"
	"github.com/katalvlaran/tilepath/grid"
)

// DistanceMap computes weighted distances from seeds over g.
//
// Preconditions and validation (in order):
//  1. g must be a live grid (cost.ErrInvalidCostGrid).
//  2. every seed must lie inside the room (grid.ErrCoordOutOfRange).
func DistanceMap(g *cost.Grid, seeds []grid.Coord) (*field.DistanceMap, error) {
	// 1) Validate inputs
	if err := g.Validate(); err != nil {
		return nil, err
	}
	for _, s := range seeds {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: seed (%d,%d)", grid.ErrCoordOutOfRange, s.X, s.Y)
		}
	}

	// 2) Prepare the runner over raw slices
	out := field.NewDistanceMap()
	r := &runner{
		costs: g.Raw(),
		dist:  out.Raw(),
		pq:    make(nodePQ, 0, grid.RoomArea),
	}

	// 3) Seed and run
	r.init(seeds)
	r.process()

	return out, nil
}

// FlowField computes distances and derives the multi-directional flow field.
func FlowField(g *cost.Grid, seeds []grid.Coord) (*field.FlowField, error) {
	dm, err := DistanceMap(g, seeds)
	if err != nil {
		return nil, err
	}
	defer dm.Release()

	return flowfield.Derive(dm)
}

// MonoFlowField computes distances and derives the mono flow field.
func MonoFlowField(g *cost.Grid, seeds []grid.Coord) (*field.MonoFlowField, error) {
	dm, err := DistanceMap(g, seeds)
	if err != nil {
		return nil, err
	}
	defer dm.Release()

	return flowfield.DeriveMono(dm)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	costs []uint8  // read-only tile costs, row-major
	dist  []uint32 // best known distance per tile
	pq    nodePQ   // min-heap with lazy decrease-key
}

// init sets every seed to 0 and pushes it.
func (r *runner) init(seeds []grid.Coord) {
	heap.Init(&r.pq)
	for _, s := range seeds {
		i := s.Index()
		if r.dist[i] == 0 {
			continue
		}
		r.dist[i] = 0
		heap.Push(&r.pq, &nodeItem{idx: i, dist: 0})
	}
}

// process pops tiles in order of distance and relaxes their neighbours.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) A cheaper path was recorded after this push; skip it.
		if item.dist > r.dist[item.idx] {
			continue
		}

		// 3) Relax the neighbours.
		r.relax(item)
	}
}

// relax examines each neighbour of the popped tile and pushes improvements.
func (r *runner) relax(u *nodeItem) {
	c := grid.CoordFromIndex(u.idx)
	edge := c.IsEdge()
	for _, d := range grid.Directions {
		n, ok := c.Step(d)
		if !ok || (edge && n.IsEdge()) {
			continue
		}
		v := n.Index()
		w := r.costs[v]
		// Walls are never entered.
		if w == cost.Impassable {
			continue
		}
		newDist := uint64(u.dist) + uint64(w)
		// Only strict improvements are pushed.
		if newDist >= uint64(r.dist[v]) {
			continue
		}
		r.dist[v] = uint32(newDist)
		heap.Push(&r.pq, &nodeItem{idx: v, dist: uint32(newDist)})
	}
}

// nodeItem is a tile index and its distance at push time.
type nodeItem struct {
	idx  int
	dist uint32
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by tile index for reproducible pops.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
