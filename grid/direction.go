package grid

// Directions lists the eight moves in canonical order. Tie-breaks anywhere in
// the module follow this order.
var Directions = [8]Direction{Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left, TopLeft}

// offsets is indexed by Direction; entry 0 belongs to DirNone.
var offsets = [9][2]int{
	{0, 0},
	{0, -1},  // Top
	{1, -1},  // TopRight
	{1, 0},   // Right
	{1, 1},   // BottomRight
	{0, 1},   // Bottom
	{-1, 1},  // BottomLeft
	{-1, 0},  // Left
	{-1, -1}, // TopLeft
}

var directionNames = [9]string{
	"none", "top", "top-right", "right", "bottom-right",
	"bottom", "bottom-left", "left", "top-left",
}

// Offset returns the (dx, dy) step of d. Screen orientation: y grows downward.
func (d Direction) Offset() (dx, dy int) {
	if d > TopLeft {
		return 0, 0
	}
	o := offsets[d]

	return o[0], o[1]
}

// Valid reports whether d is one of the eight moves.
func (d Direction) Valid() bool {
	return d >= Top && d <= TopLeft
}

// Opposite returns the reverse move; DirNone maps to itself.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return DirNone
	}

	return (d+3)%8 + 1
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d == TopRight || d == BottomRight || d == BottomLeft || d == TopLeft
}

// Bit returns the flow-field mask bit for d, or 0 for DirNone.
func (d Direction) Bit() uint8 {
	if !d.Valid() {
		return 0
	}

	return 1 << (d - 1)
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d > TopLeft {
		return "invalid"
	}

	return directionNames[d]
}

// DirectionTo returns the move whose offset has the signs of (dx, dy).
// (0, 0) yields DirNone.
func DirectionTo(dx, dy int) Direction {
	sx, sy := sign(dx), sign(dy)
	for _, d := range Directions {
		if o := offsets[d]; o[0] == sx && o[1] == sy {
			return d
		}
	}

	return DirNone
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
