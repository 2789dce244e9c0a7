package board

// Pattern is a fixed set of mine positions used for reproducible boards.
type Pattern []Point

// Bounds returns the smallest width and height that contain every point.
func (p Pattern) Bounds() (w, h int) {
	for _, pt := range p {
		w = max(w, pt.X+1)
		h = max(h, pt.Y+1)
	}
	return w, h
}

// DebugMines is the number of mines in DebugPattern.
const DebugMines = 36

// DebugPattern returns the debug layout: nine clusters centred on
// (1,4,7)x(1,4,7). The n-th centre, counting x-major, is surrounded by the
// first n neighbourhood offsets, so the clusters carry 0 through 8 mines
// and every count from 0 to 8 appears on the board.
func DebugPattern() Pattern {
	centres := [3]int{1, 4, 7}
	p := make(Pattern, 0, DebugMines)
	n := 0
	for _, x := range centres {
		for _, y := range centres {
			for _, o := range offsets[:n] {
				p = append(p, Point{x + o.X, y + o.Y})
			}
			n++
		}
	}
	return p
}
