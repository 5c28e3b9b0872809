package bfs

import (
	"fmt"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/flowfield"
	"github.com/katalvlaran/tilepath/grid"
)

// walker encapsulates mutable BFS state for one room.
type walker struct {
	costs []uint8
	dist  []uint32
	queue []int // tile indexes; head advances instead of re-slicing
	head  int
}

// DistanceMap floods g from seeds and returns the move count to every tile.
func DistanceMap(g *cost.Grid, seeds []grid.Coord) (*field.DistanceMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	for _, s := range seeds {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: seed (%d,%d)", grid.ErrCoordOutOfRange, s.X, s.Y)
		}
	}

	out := field.NewDistanceMap()
	w := &walker{
		costs: g.Raw(),
		dist:  out.Raw(),
		queue: make([]int, 0, grid.RoomArea),
	}
	for _, s := range seeds {
		w.enqueue(s.Index(), 0)
	}
	w.loop()

	return out, nil
}

// FlowField floods g and derives the multi-directional flow field.
func FlowField(g *cost.Grid, seeds []grid.Coord) (*field.FlowField, error) {
	dm, err := DistanceMap(g, seeds)
	if err != nil {
		return nil, err
	}
	defer dm.Release()

	return flowfield.Derive(dm)
}

// MonoFlowField floods g and derives the mono flow field.
func MonoFlowField(g *cost.Grid, seeds []grid.Coord) (*field.MonoFlowField, error) {
	dm, err := DistanceMap(g, seeds)
	if err != nil {
		return nil, err
	}
	defer dm.Release()

	return flowfield.DeriveMono(dm)
}

// enqueue records distance d for tile i unless it has been seen.
func (w *walker) enqueue(i int, d uint32) {
	if w.dist[i] != field.Unreachable {
		return
	}
	w.dist[i] = d
	w.queue = append(w.queue, i)
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		i := w.queue[w.head]
		w.head++
		w.enqueueNeighbors(i)
	}
}

// enqueueNeighbors visits the passable, unseen neighbours of tile i,
// applying the border rule.
func (w *walker) enqueueNeighbors(i int) {
	c := grid.CoordFromIndex(i)
	edge := c.IsEdge()
	next := w.dist[i] + 1
	for _, d := range grid.Directions {
		n, ok := c.Step(d)
		if !ok || (edge && n.IsEdge()) {
			continue
		}
		ni := n.Index()
		if w.costs[ni] == cost.Impassable {
			continue
		}
		w.enqueue(ni, next)
	}
}
