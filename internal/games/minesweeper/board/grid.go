// Package board implements the minesweeper grid: mine placement, adjacency
// counts, reveal with flood fill, chording, flags and the win condition.
package board

import "math/rand"

// Config describes the grid to build.
type Config struct {
	Width  int
	Height int
	Mines  int
}

// Cells returns the number of cells of the configured grid.
func (c Config) Cells() int { return c.Width * c.Height }

// Validate checks dimensions and mine count.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return configErrorf("dimensions %dx%d must be at least 1x1", c.Width, c.Height)
	}
	if c.Mines < 0 || c.Mines > c.Cells() {
		return configErrorf("%d mines do not fit %dx%d", c.Mines, c.Width, c.Height)
	}
	return nil
}

// Grid is a dense width*height array of cells, indexed y*width+x.
type Grid struct {
	width    int
	height   int
	mines    int
	flags    int
	revealed int
	cells    []Cell
}

// Populate builds a grid from cfg. When pattern is non-nil its points are
// the mines and must number exactly cfg.Mines; otherwise cfg.Mines distinct
// cells are drawn uniformly from rng.
func Populate(cfg Config, pattern Pattern, rng *rand.Rand) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		width:  cfg.Width,
		height: cfg.Height,
		cells:  make([]Cell, cfg.Cells()),
	}

	if pattern != nil {
		if len(pattern) != cfg.Mines {
			return nil, configErrorf("pattern has %d mines, configuration wants %d", len(pattern), cfg.Mines)
		}
		for _, p := range pattern {
			if !g.InBounds(p.X, p.Y) {
				return nil, configErrorf("pattern mine (%d, %d) outside %dx%d", p.X, p.Y, g.width, g.height)
			}
			if g.cells[g.index(p.X, p.Y)].Content.IsMine() {
				return nil, configErrorf("pattern places two mines at (%d, %d)", p.X, p.Y)
			}
			g.placeMine(p.X, p.Y)
		}
		return g, nil
	}

	if rng == nil {
		return nil, configErrorf("random placement needs a source")
	}

	// Partial Fisher-Yates: the first Mines slots of idx end up a uniform
	// sample without replacement.
	idx := make([]int, len(g.cells))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < cfg.Mines; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		g.placeMine(idx[i]%g.width, idx[i]/g.width)
	}

	return g, nil
}

// placeMine marks (x, y) as a mine and bumps every safe neighbour's count.
func (g *Grid) placeMine(x, y int) {
	g.cells[g.index(x, y)].Content = Mine
	g.mines++
	for _, o := range offsets {
		nx, ny := x+o.X, y+o.Y
		if !g.InBounds(nx, ny) {
			continue
		}
		c := &g.cells[g.index(nx, ny)]
		if !c.Content.IsMine() {
			c.Content++
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Mines returns the number of mines on the grid.
func (g *Grid) Mines() int { return g.mines }

// Flags returns the number of flagged cells.
func (g *Grid) Flags() int { return g.flags }

// Revealed returns the number of revealed cells.
func (g *Grid) Revealed() int { return g.revealed }

// Remaining is the mine counter shown to the player. It goes negative
// when more cells are flagged than there are mines.
func (g *Grid) Remaining() int { return g.mines - g.flags }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(IndexError{X: x, Y: y, W: g.width, H: g.height})
	}
	return y*g.width + x
}

// At returns the cell at (x, y). Panics with IndexError when out of bounds.
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for i, c := range g.cells {
		fn(i%g.width, i/g.width, c)
	}
}

// neighbours appends the in-bounds Moore neighbours of (x, y) to dst.
func (g *Grid) neighbours(dst []Point, x, y int) []Point {
	for _, o := range offsets {
		if nx, ny := x+o.X, y+o.Y; g.InBounds(nx, ny) {
			dst = append(dst, Point{nx, ny})
		}
	}
	return dst
}

// Reveal uncovers (x, y). Only covered cells change. Revealing an empty
// cell floods every empty cell connected to it along with the numbered
// ring around them; flagged cells stop the flood.
func (g *Grid) Reveal(x, y int) Outcome {
	i := g.index(x, y)
	if g.cells[i].State != Covered {
		return None
	}

	content := g.uncover(i)
	switch {
	case content.IsMine():
		return Lost
	case !content.IsEmpty():
		return Single
	}

	var buf [8]Point
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range g.neighbours(buf[:0], p.X, p.Y) {
			j := g.index(n.X, n.Y)
			if g.cells[j].State != Covered {
				continue
			}
			if g.uncover(j).IsEmpty() {
				stack = append(stack, n)
			}
		}
	}
	return Cascade
}

func (g *Grid) uncover(i int) Content {
	g.cells[i].State = Revealed
	g.revealed++
	return g.cells[i].Content
}

// Chord reveals the unflagged covered neighbours of a revealed numbered
// cell, provided the number of flagged neighbours matches its count.
// The result is the most significant outcome of those reveals.
func (g *Grid) Chord(x, y int) Outcome {
	c := g.At(x, y)
	if c.State != Revealed || c.Content.IsMine() || c.Content.IsEmpty() {
		return None
	}

	var buf [8]Point
	around := g.neighbours(buf[:0], x, y)

	flagged := 0
	for _, n := range around {
		if g.At(n.X, n.Y).State == Flagged {
			flagged++
		}
	}
	if flagged != c.Content.Count() {
		return None
	}

	result := None
	for _, n := range around {
		result = result.Merge(g.Reveal(n.X, n.Y))
	}
	return result
}

// ToggleFlag flips a covered cell to flagged and back. It reports whether
// the cell changed; revealed cells are left alone.
func (g *Grid) ToggleFlag(x, y int) bool {
	c := &g.cells[g.index(x, y)]
	switch c.State {
	case Covered:
		c.State = Flagged
		g.flags++
	case Flagged:
		c.State = Covered
		g.flags--
	default:
		return false
	}
	return true
}

// IsWon reports whether every cell left unrevealed is a mine, counted as
// unrevealed cells equal to the mine count.
func (g *Grid) IsWon() bool {
	return len(g.cells)-g.revealed == g.mines
}

// FlagMines flags every covered mine so the finished board shows them and
// the remaining counter reads zero.
func (g *Grid) FlagMines() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Content.IsMine() && c.State == Covered {
			c.State = Flagged
			g.flags++
		}
	}
}
