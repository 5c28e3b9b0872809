// Package tilepath searches 50×50 tile rooms laid out on a world grid.
//
// What is tilepath?
//
//	A set of small packages that compute distance fields, flow fields and
//	paths over rooms whose tile costs come from a caller-supplied provider:
//		• Addressing: rooms (W1N1, E0S0, sim), tiles, world coordinates
//		• Fields: distance maps, flow fields, mono flow fields
//		• Floods: BFS and Dijkstra, single-room and multi-room
//		• Targeted search: A* and Jump Point Search
//		• Paths: descent walkers, path following, movement time
//
// Layout:
//
//	grid/        Coord, RoomID, Position, Direction
//	cost/        cost grids, terrain parsing, the Provider contract
//	field/       distance and flow field storage
//	flowfield/   flow field derivation from distance maps
//	bfs/         unweighted floods and room connectivity
//	dijkstra/    weighted floods
//	search/      the shared multi-room loop, budgets and destinations
//	astar/       A* over the multi-room loop
//	jps/         Jump Point Search with an interpolated distance map
//	path/        Path type and reconstruction from any field
//	arena/       per-step release of ephemeral results
//	scenario/    YAML rooms and queries
//
// Quick example:
//
//	provider := cost.Static(cost.NewFilled(1))
//	res, _ := astar.MultiroomDistanceMap(
//		[]grid.Position{grid.MustPosition("W1N1:25:25")}, provider,
//		search.WithAnyOf(search.Destination{Pos: grid.MustPosition("W1N2:25:25")}))
//	p, _ := path.FromMultiroomDistanceMap(res.Found[0], res.Distances)
//
// The command cmd/tilepath runs scenario files from the shell.
package tilepath
