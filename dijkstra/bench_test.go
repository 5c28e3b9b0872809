package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/grid"
)

// BenchmarkDistanceMap_Mixed runs on a random plain/swamp/wall room.
func BenchmarkDistanceMap_Mixed(b *testing.B) {
	g := randomGrid(42)
	seeds := []grid.Coord{grid.MustCoord(25, 25)}

	b.ReportAllocs()
	b.SetBytes(grid.RoomArea)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dm, _ := dijkstra.DistanceMap(g, seeds)
		dm.Release()
	}
}

// BenchmarkDistanceMap_Uniform runs on an open room of cost 1.
func BenchmarkDistanceMap_Uniform(b *testing.B) {
	g := cost.NewFilled(1)
	seeds := []grid.Coord{grid.MustCoord(0, 0), grid.MustCoord(49, 49)}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dm, _ := dijkstra.DistanceMap(g, seeds)
		dm.Release()
	}
}
