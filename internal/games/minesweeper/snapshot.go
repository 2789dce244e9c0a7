package minesweeper

import (
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Ticks       uint64
	Phase       Phase
	Variant     string
	Mines       int
	Flags       int
	Revealed    int
	Remaining   int
	Scale       float64
	Translation core.Vec2
	Cells       string // one rune per cell, rows joined by newlines
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:   g.ticks,
		Phase:   g.phase,
		Variant: g.preset.Variant(),
	}
	if g.grid == nil {
		return s
	}

	s.Mines = g.grid.Mines()
	s.Flags = g.grid.Flags()
	s.Revealed = g.grid.Revealed()
	s.Remaining = g.grid.Remaining()
	if g.view != nil {
		cam := g.view.State()
		s.Scale, s.Translation = cam.Scale, cam.Translation
	}

	var sb strings.Builder
	g.grid.Each(func(x, y int, c board.Cell) {
		if x == 0 && y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(snapshotRune(c))
	})
	s.Cells = sb.String()
	return s
}

// snapshotRune encodes state and content: '#' covered, 'F' flagged,
// '*' revealed mine, '.' revealed empty, '1'..'8' revealed numbers.
func snapshotRune(c board.Cell) rune {
	switch c.State {
	case board.Covered:
		return '#'
	case board.Flagged:
		return 'F'
	}
	switch {
	case c.Content.IsMine():
		return '*'
	case c.Content.IsEmpty():
		return '.'
	default:
		return rune('0' + c.Content.Count())
	}
}
