package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/scenario"
)

// ExampleScenario_Run runs a Dijkstra query over a room where every tile
// costs 2 and reconstructs the path from the destination.
func ExampleScenario_Run() {
	s, err := scenario.Parse([]byte(`
rooms:
  W1N1: {default: 2}
queries:
  - name: east
    algorithm: dijkstra
    seeds: ["W1N1:10:10"]
    any_of: [{pos: "W1N1:20:10"}]
    path_from: "W1N1:20:10"
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := s.Run("east")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer out.Release()

	fmt.Println(out.Found, out.Distances.Get(out.Found[0]), out.Path.Len())
	// Output:
	// [[W1N1 20,10]] 20 11
}
