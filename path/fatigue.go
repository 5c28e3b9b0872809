package path

import "github.com/katalvlaran/tilepath/grid"

// Fatigue is the fatigue an agent accumulates when it enters a tile.
type Fatigue uint8

const (
	FatigueExit  Fatigue = 0
	FatigueRoad  Fatigue = 1
	FatiguePlain Fatigue = 2
	FatigueSwamp Fatigue = 10
)

// Fatigues classifies every tile of p in order.
func (p *Path) Fatigues(classify func(grid.Position) Fatigue) []Fatigue {
	p.mustLive()
	out := make([]Fatigue, len(p.steps))
	for i, pos := range p.steps {
		out[i] = classify(pos)
	}

	return out
}

// MoveTime returns the number of ticks needed to walk tiles with the given
// fatigue when the agent sheds ratio fatigue per tick: the sum of
// ceil(f/ratio). A ratio below 1 counts as 1.
func MoveTime(fatigues []Fatigue, ratio int) int {
	ratio = max(ratio, 1)
	total := 0
	for _, f := range fatigues {
		total += (int(f) + ratio - 1) / ratio
	}

	return total
}
