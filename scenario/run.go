package scenario

import (
	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/field"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/jps"
	"github.com/katalvlaran/tilepath/path"
	"github.com/katalvlaran/tilepath/search"
)

// Outcome is the result of one query.
type Outcome struct {
	Query     string
	Algorithm string
	Ops       int
	// Rooms lists the rooms holding distances.
	Rooms []grid.RoomID
	Found []grid.Position
	// Stop describes why the search ended.
	Stop string
	// Distances covers every room reached.
	Distances *field.MultiroomDistanceMap
	// Path is set for jps queries and for queries with path_from.
	Path *path.Path
}

// Release releases the distances and the path.
func (o *Outcome) Release() {
	o.Distances.Release()
	if o.Path != nil {
		o.Path.Release()
	}
}

// Run executes the query called name.
func (s *Scenario) Run(name string) (*Outcome, error) {
	q, err := s.Query(name)
	if err != nil {
		return nil, err
	}
	if q.Algorithm == AlgorithmJPS {
		return s.runJPS(q)
	}

	var res *search.Result
	switch q.Algorithm {
	case AlgorithmBFS:
		res, err = bfs.MultiroomDistanceMap(q.seeds, s.Provider(), q.Options()...)
	case AlgorithmDijkstra:
		res, err = dijkstra.MultiroomDistanceMap(q.seeds, s.Provider(), q.Options()...)
	default:
		res, err = astar.MultiroomDistanceMap(q.seeds, s.Provider(), q.Options()...)
	}
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Query:     q.Name,
		Algorithm: q.Algorithm,
		Ops:       res.Ops,
		Rooms:     res.Rooms(),
		Found:     res.Found,
		Stop:      res.Stop.String(),
		Distances: res.Distances,
	}
	if q.from != nil {
		if out.Path, err = path.FromMultiroomDistanceMap(*q.from, res.Distances); err != nil {
			res.Release()
			return nil, err
		}
	}

	return out, nil
}

func (s *Scenario) runJPS(q *Query) (*Outcome, error) {
	res, err := jps.Path(q.seeds[0], nil, s.Provider(), q.Options()...)
	if err != nil {
		return nil, err
	}
	stop := "any-of reached"
	if res.Incomplete {
		stop = "incomplete"
	}

	return &Outcome{
		Query:     q.Name,
		Algorithm: q.Algorithm,
		Ops:       res.Ops,
		Rooms:     res.Distances.Rooms(),
		Found:     res.Found,
		Stop:      stop,
		Distances: res.Distances,
		Path:      res.Path,
	}, nil
}
