package board

import "fmt"

// Content is what a cell hides. It never changes once the grid is populated.
// Values 1..8 are the number of mined Moore neighbours.
type Content int8

const (
	Mine  Content = -1
	Empty Content = 0
)

// Neighbours returns the content of a safe cell bordering n mines.
func Neighbours(n int) Content {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("board: neighbour count %d out of range", n))
	}
	return Content(n)
}

// IsMine reports whether the cell holds a mine.
func (c Content) IsMine() bool { return c == Mine }

// IsEmpty reports whether the cell is safe with no mined neighbours.
func (c Content) IsEmpty() bool { return c == Empty }

// Count returns the number of mined neighbours, or 0 for mines.
func (c Content) Count() int {
	if c < 0 {
		return 0
	}
	return int(c)
}

func (c Content) String() string {
	switch {
	case c == Mine:
		return "mine"
	case c == Empty:
		return "empty"
	default:
		return fmt.Sprintf("neighbours(%d)", int(c))
	}
}

// State is the player-visible state of a cell.
type State uint8

const (
	Covered State = iota
	Flagged
	Revealed
)

func (s State) String() string {
	switch s {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Cell is one position of the grid.
type Cell struct {
	Content Content
	State   State
}

// Outcome is the result of a reveal. Outcomes are ordered so that the
// larger of two is the more significant one.
type Outcome uint8

const (
	None    Outcome = iota // nothing changed
	Single                 // one numbered cell revealed
	Cascade                // an empty region was flooded
	Lost                   // a mine was revealed
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case Single:
		return "single"
	case Cascade:
		return "cascade"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Merge returns the more significant of two outcomes.
func (o Outcome) Merge(other Outcome) Outcome {
	if other > o {
		return other
	}
	return o
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// P creates a Point.
func P(x, y int) Point { return Point{X: x, Y: y} }

// offsets is the Moore neighbourhood in a fixed order. The debug pattern
// depends on this order.
var offsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
