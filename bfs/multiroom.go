package bfs

import (
	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

// MultiroomDistanceMap floods across rooms with unit step costs.
// See package search for budgets, destinations and errors.
func MultiroomDistanceMap(seeds []grid.Position, provider cost.Provider, opts ...search.Option) (*search.Result, error) {
	return search.Run(seeds, provider, search.BFS, opts...)
}

// MultiroomFlowField floods across rooms and derives the flow field.
func MultiroomFlowField(seeds []grid.Position, provider cost.Provider, opts ...search.Option) (*field.MultiroomFlowField, error) {
	res, err := MultiroomDistanceMap(seeds, provider, opts...)
	if err != nil {
		return nil, err
	}
	defer res.Release()

	return res.FlowField()
}

// MultiroomMonoFlowField floods across rooms and derives the mono flow field.
func MultiroomMonoFlowField(seeds []grid.Position, provider cost.Provider, opts ...search.Option) (*field.MultiroomMonoFlowField, error) {
	res, err := MultiroomDistanceMap(seeds, provider, opts...)
	if err != nil {
		return nil, err
	}
	defer res.Release()

	return res.MonoFlowField()
}
