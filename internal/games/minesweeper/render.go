package minesweeper

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// Glyphs used on the board.
const (
	GlyphCovered   = '░'
	GlyphFlag      = 'F'
	GlyphEmpty     = '·'
	GlyphMine      = '*'
	GlyphExploded  = 'X'
	GlyphWrongFlag = 'x'
)

var digitColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// Render draws the HUD and the visible part of the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.err != nil {
		dst.DrawTextColor(0, g.hudHeight, g.err.Error(), core.ColorRed)
		return
	}
	if g.grid == nil || g.view == nil {
		return
	}

	g.renderBoard(dst)

	if g.paused {
		msg := " PAUSED "
		dst.DrawTextColor((dst.Width()-len(msg))/2, g.hudHeight+(dst.Height()-g.hudHeight)/2, msg, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("MINESWEEPER  %s", g.preset)
	dst.DrawTextColor(0, 0, left, g.preset.Difficulty.Color())

	right := fmt.Sprintf("Mines: %d  Time: %s", g.Remaining(), FormatElapsed(g.Elapsed()))
	dst.DrawText(dst.Width()-len(right), 0, right)

	if g.hudHeight < 2 {
		return
	}
	switch {
	case g.phase == PhaseWon:
		dst.DrawTextColor(0, 1, "CLEARED!  r: restart  m: menu  q: quit", core.ColorBrightGreen)
	case g.phase == PhaseLost:
		dst.DrawTextColor(0, 1, "BOOM!  r: restart  m: menu  q: quit", core.ColorBrightRed)
	default:
		dst.DrawTextColor(0, 1, "click: reveal  right: flag  drag: pan  wheel/+-: zoom  p: pause", core.ColorGray)
	}
}

// renderBoard samples the world point at the centre of every terminal
// cell. A grid cell wider or taller than one terminal cell carries its
// glyph only on the terminal cell holding its centre.
func (g *Game) renderBoard(dst *core.Screen) {
	scale := g.view.Scale()
	wideCells := 1/scale >= 2
	tallCells := 1/(scale*g.rowAspect) >= 2

	for row := g.hudHeight; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			px := g.toViewport(float64(col)+0.5, float64(row)+0.5)
			x, y, ok := g.view.CellAt(px)
			if !ok {
				continue
			}

			r, color := g.Glyph(x, y)
			centre := g.view.WorldToScreen(core.V(float64(x)+0.5, float64(y)+0.5))
			onCentreCol := !wideCells || int(math.Floor(centre.X)) == col
			onCentreRow := !tallCells || int(math.Floor(centre.Y/g.rowAspect))+g.hudHeight == row
			if !onCentreCol || !onCentreRow {
				r = fillRune(g.grid.At(x, y).State)
				color = core.ColorGray
			}
			dst.SetCell(col, row, core.Cell{Rune: r, Color: color})
		}
	}
}

func fillRune(s board.State) rune {
	if s == board.Revealed {
		return ' '
	}
	return GlyphCovered
}

// Glyph picks the rune and colour of grid cell (x, y) for the current phase.
func (g *Game) Glyph(x, y int) (rune, core.Color) {
	c := g.grid.At(x, y)
	switch c.State {
	case board.Covered:
		if g.phase == PhaseLost && c.Content.IsMine() {
			return GlyphMine, core.ColorBrightRed
		}
		return GlyphCovered, core.ColorGray
	case board.Flagged:
		switch {
		case g.phase == PhaseWon:
			return GlyphFlag, core.ColorBrightGreen
		case g.phase == PhaseLost && !c.Content.IsMine():
			return GlyphWrongFlag, core.ColorMagenta
		}
		return GlyphFlag, core.ColorRed
	}

	switch {
	case c.Content.IsMine():
		if g.lostAt == (board.Point{X: x, Y: y}) {
			return GlyphExploded, core.ColorBrightRed
		}
		return GlyphMine, core.ColorBrightRed
	case c.Content.IsEmpty():
		return GlyphEmpty, core.ColorDim
	default:
		n := c.Content.Count()
		return rune('0' + n), digitColors[n]
	}
}

// FormatElapsed renders a duration as s, m:ss or h:mm:ss.
func FormatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	case m > 0:
		return fmt.Sprintf("%d:%02d", m, s)
	default:
		return fmt.Sprintf("%d", s)
	}
}
