package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/cost"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/grid"
)

// ExampleDistanceMap crosses a swamp strip instead of walking around it:
// stepping onto the strip costs 5, which beats a 30-step detour.
func ExampleDistanceMap() {
	g := cost.NewFilled(1)
	for x := 10; x < 40; x++ {
		g.Set(grid.MustCoord(x, 25), 5)
	}

	dm, err := dijkstra.DistanceMap(g, []grid.Coord{grid.MustCoord(25, 26)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer dm.Release()

	fmt.Println(dm.Get(grid.MustCoord(25, 25)), dm.Get(grid.MustCoord(25, 24)))
	// Output:
	// 5 6
}
