package bfs_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/search"
)

// BenchmarkDistanceMap_Open floods a whole empty room.
func BenchmarkDistanceMap_Open(b *testing.B) {
	g := cost.New()
	seeds := []grid.Coord{grid.MustCoord(25, 25)}

	b.ReportAllocs()
	b.SetBytes(grid.RoomArea)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dm, _ := bfs.DistanceMap(g, seeds)
		dm.Release()
	}
}

// BenchmarkMultiroom_NineRooms floods a 3×3 block of empty rooms.
func BenchmarkMultiroom_NineRooms(b *testing.B) {
	g := cost.New()
	seeds := []grid.Position{grid.MustPosition("W1N1:25:25")}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, _ := bfs.MultiroomDistanceMap(seeds, cost.Static(g), search.WithMaxRooms(9), search.WithMaxRoomDistance(2))
		res.Release()
	}
}
