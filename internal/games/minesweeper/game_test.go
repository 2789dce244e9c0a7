package minesweeper

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

var testConfig = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func newDebugGame(t *testing.T) *Game {
	t.Helper()
	g := NewDebug()
	g.SetPreset(Preset{Size: SizeSmall, Difficulty: DifficultyDebug})
	g.Reset(testConfig)
	if g.Err() != nil {
		t.Fatalf("Reset() board error = %v", g.Err())
	}
	return g
}

// surfacePoint returns the surface coordinates of the centre of cell (x, y).
func surfacePoint(g *Game, x, y int) (float64, float64) {
	p := g.Viewport().WorldToScreen(core.V(float64(x)+0.5, float64(y)+0.5))
	return p.X, p.Y/g.rowAspect + float64(g.HUDHeight())
}

func pushClick(f *core.InputFrame, g *Game, b core.PointerButton, x, y int) {
	sx, sy := surfacePoint(g, x, y)
	f.Push(core.Press(b, sx, sy))
	f.Push(core.Release(b, sx, sy))
}

func step(g *Game, build func(f *core.InputFrame)) core.StepResult {
	f := core.NewInputFrame()
	if build != nil {
		build(&f)
	}
	return g.Step(f)
}

func TestDebugLayout(t *testing.T) {
	g := newDebugGame(t)

	if g.ID() != "minesweeper_debug" {
		t.Errorf("ID() = %q", g.ID())
	}
	if got := g.Grid().Mines(); got != board.DebugMines {
		t.Errorf("Mines() = %d, want %d", got, board.DebugMines)
	}
	if got := g.State().Variant; got != "small/debug" {
		t.Errorf("Variant = %q, want small/debug", got)
	}
	if g.Remaining() != board.DebugMines {
		t.Errorf("Remaining() = %d", g.Remaining())
	}
}

func TestDebugForcesDifficulty(t *testing.T) {
	g := NewDebug()
	g.SetPreset(Preset{Size: SizeMedium, Difficulty: DifficultyHard})
	g.Reset(testConfig)

	if p := g.Preset(); p.Difficulty != DifficultyDebug || p.Size != SizeMedium {
		t.Errorf("Preset() = %v, want Medium Debug", p)
	}
}

func TestClickRevealAndFlag(t *testing.T) {
	g := newDebugGame(t)

	step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonPrimary, 1, 1) })
	if c := g.Grid().At(1, 1); c.State != board.Revealed {
		t.Fatalf("(1,1) state = %v, want revealed", c.State)
	}
	if g.Grid().Revealed() <= 1 {
		t.Errorf("empty cell should cascade, revealed %d", g.Grid().Revealed())
	}

	step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonSecondary, 0, 3) })
	if c := g.Grid().At(0, 3); c.State != board.Flagged {
		t.Errorf("(0,3) state = %v, want flagged", c.State)
	}
	if g.Remaining() != board.DebugMines-1 {
		t.Errorf("Remaining() = %d, want %d", g.Remaining(), board.DebugMines-1)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, want playing", g.Phase())
	}
}

func TestMineLoses(t *testing.T) {
	g := newDebugGame(t)

	res := step(g, func(f *core.InputFrame) {
		pushClick(f, g, core.ButtonPrimary, 0, 3)
		pushClick(f, g, core.ButtonPrimary, 1, 1)
	})

	if g.Phase() != PhaseLost || !res.State.GameOver || res.State.Won {
		t.Fatalf("after clicking a mine: phase %v, state %+v", g.Phase(), res.State)
	}
	if g.lostAt != (board.Point{X: 0, Y: 3}) {
		t.Errorf("lostAt = %v, want (0,3)", g.lostAt)
	}
	if g.Grid().At(1, 1).State != board.Covered {
		t.Error("clicks after the loss in the same frame should be ignored")
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, want 0", res.State.Score)
	}
}

func safeCells(g *Game) []board.Point {
	var cells []board.Point
	g.Grid().Each(func(x, y int, c board.Cell) {
		if !c.Content.IsMine() {
			cells = append(cells, board.P(x, y))
		}
	})
	return cells
}

func TestWinAtEndOfFrame(t *testing.T) {
	g := newDebugGame(t)

	for _, p := range safeCells(g) {
		g.Open(p.X, p.Y)
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("win is decided by Step, phase = %v", g.Phase())
	}

	res := step(g, nil)
	if g.Phase() != PhaseWon || !res.State.Won || !res.State.GameOver {
		t.Fatalf("phase = %v, state %+v", g.Phase(), res.State)
	}
	if g.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0 on a won board", g.Remaining())
	}
	if want := 16*9 - board.DebugMines; res.State.Score != want {
		t.Errorf("Score = %d, want %d", res.State.Score, want)
	}
}

func TestLossInSameFrameBeatsWin(t *testing.T) {
	g := newDebugGame(t)

	step(g, func(f *core.InputFrame) {
		for _, p := range safeCells(g) {
			pushClick(f, g, core.ButtonPrimary, p.X, p.Y)
		}
		pushClick(f, g, core.ButtonPrimary, 7, 6)
	})

	if g.Phase() != PhaseLost {
		t.Errorf("Phase() = %v, want lost", g.Phase())
	}
}

func TestChordLoses(t *testing.T) {
	g := newDebugGame(t)

	// (1,4) borders exactly one mine at (0,3); a wrong flag on (0,4) sets off the chord.
	g.Open(1, 4)
	g.Flag(0, 4)
	step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonMiddle, 1, 4) })

	if g.Phase() != PhaseLost {
		t.Fatalf("Phase() = %v, want lost", g.Phase())
	}
	if g.lostAt != (board.Point{X: 0, Y: 3}) {
		t.Errorf("lostAt = %v, want the exploded mine at (0,3)", g.lostAt)
	}
}

func TestDragPansWithoutReveal(t *testing.T) {
	g := newDebugGame(t)
	cx, cy := 40.0, 13.0

	step(g, func(f *core.InputFrame) { f.Push(core.Scroll(3, cx, cy)) })
	before := g.Viewport().Translation()

	step(g, func(f *core.InputFrame) {
		f.Push(core.Press(core.ButtonPrimary, cx, cy))
		f.Push(core.Move(cx+12, cy))
		f.Push(core.Release(core.ButtonPrimary, cx+12, cy))
	})

	if g.Grid().Revealed() != 0 {
		t.Errorf("drag revealed %d cells", g.Grid().Revealed())
	}
	after := g.Viewport().Translation()
	if after.X >= before.X {
		t.Errorf("dragging right should move the view left: %v -> %v", before, after)
	}
}

func TestKeyboardCamera(t *testing.T) {
	g := newDebugGame(t)
	start := g.Viewport().Scale()

	step(g, func(f *core.InputFrame) { f.Set(core.ActionZoomIn) })
	if g.Viewport().Scale() >= start {
		t.Fatalf("zoom in: scale %v, was %v", g.Viewport().Scale(), start)
	}

	before := g.Viewport().Translation()
	step(g, func(f *core.InputFrame) { f.Set(core.ActionLeft) })
	if got := g.Viewport().Translation(); got.X != before.X-1 || got.Y != before.Y {
		t.Errorf("pan left: %v -> %v", before, got)
	}

	step(g, func(f *core.InputFrame) { f.Set(core.ActionZoomOut) })
	step(g, func(f *core.InputFrame) { f.Set(core.ActionZoomOut) })
	if got := g.Viewport().Scale(); got != g.Viewport().ScaleRange().Max {
		t.Errorf("zoom out should clamp at the fit scale, got %v", got)
	}
}

func TestTimerAndPause(t *testing.T) {
	g := newDebugGame(t)

	for i := 0; i < 120; i++ {
		step(g, nil)
	}
	if got := g.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() = %v, want 2s", got)
	}

	step(g, func(f *core.InputFrame) { f.Set(core.ActionPause) })
	for i := 0; i < 60; i++ {
		step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonPrimary, 1, 1) })
	}
	if !g.State().Paused || g.Grid().Revealed() != 0 {
		t.Errorf("paused game should ignore clicks: %+v", g.State())
	}
	if got := g.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() while paused = %v, want 2s", got)
	}

	step(g, func(f *core.InputFrame) { f.Set(core.ActionPause) })
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTimerStopsAfterGameOver(t *testing.T) {
	g := newDebugGame(t)
	step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonPrimary, 0, 3) })
	at := g.Elapsed()
	for i := 0; i < 30; i++ {
		step(g, nil)
	}
	if g.Elapsed() != at {
		t.Errorf("Elapsed() kept running after the loss: %v -> %v", at, g.Elapsed())
	}
}

func TestRestart(t *testing.T) {
	g := newDebugGame(t)
	step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonPrimary, 0, 3) })

	res := step(g, func(f *core.InputFrame) { f.Set(core.ActionRestart) })
	if res.State.GameOver || g.Phase() != PhasePlaying {
		t.Errorf("after restart: %+v", res.State)
	}
	if g.Grid().Revealed() != 0 || g.Elapsed() != 0 {
		t.Errorf("restart should give a fresh board, revealed %d", g.Grid().Revealed())
	}
}

func TestDeterminism(t *testing.T) {
	newGame := func() *Game {
		g := New()
		g.SetPreset(Preset{Size: SizeMedium, Difficulty: DifficultyMedium})
		g.Reset(testConfig)
		return g
	}
	g1, g2 := newGame(), newGame()

	for i := 0; i < 40; i++ {
		x, y := (i*7)%32, (i*5)%18
		for _, g := range []*Game{g1, g2} {
			step(g, func(f *core.InputFrame) {
				if i%3 == 0 {
					pushClick(f, g, core.ButtonSecondary, x, y)
				} else {
					pushClick(f, g, core.ButtonPrimary, x, y)
				}
			})
		}
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSnapshotCells(t *testing.T) {
	g := newDebugGame(t)
	g.Open(1, 1)
	g.Flag(0, 3)

	s := g.Snapshot()
	rows := strings.Split(s.Cells, "\n")
	if len(rows) != 9 || len(rows[0]) != 16 {
		t.Fatalf("Cells has %d rows of %d", len(rows), len(rows[0]))
	}
	if rows[1][1] != '.' || rows[3][0] != 'F' || rows[8][15] != '#' {
		t.Errorf("Cells =\n%s", s.Cells)
	}
	if s.Flags != 1 || s.Remaining != board.DebugMines-1 {
		t.Errorf("Flags = %d, Remaining = %d", s.Flags, s.Remaining)
	}
}

func TestRender(t *testing.T) {
	g := newDebugGame(t)
	scr := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)

	g.Render(scr)
	hud := scr.Row(0)
	if !strings.Contains(hud, "MINESWEEPER") || !strings.Contains(hud, "Mines: 36") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.ContainsRune(scr.String(), GlyphCovered) {
		t.Error("covered board should show covered cells")
	}

	step(g, func(f *core.InputFrame) { pushClick(f, g, core.ButtonPrimary, 0, 3) })
	g.Render(scr)
	out := scr.String()
	if !strings.ContainsRune(out, GlyphExploded) || !strings.ContainsRune(out, GlyphMine) {
		t.Errorf("lost board should show the exploded and hidden mines:\n%s", out)
	}
	if !strings.Contains(scr.Row(1), "BOOM") {
		t.Errorf("status row = %q", scr.Row(1))
	}
}

func TestRenderGlyphColors(t *testing.T) {
	g := newDebugGame(t)
	g.Open(1, 4)

	if r, c := g.Glyph(1, 4); r != '1' || c != digitColors[1] {
		t.Errorf("Glyph(1,4) = %q/%v", r, c)
	}
	g.Flag(0, 3)
	if r, c := g.Glyph(0, 3); r != GlyphFlag || c != core.ColorRed {
		t.Errorf("glyph of flag = %q/%v", r, c)
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newDebugGame(t)
	g.Open(1, 1)
	revealed := g.Grid().Revealed()

	g.Resize(120, 40)
	if g.Grid().Revealed() != revealed {
		t.Error("resize should not restart the round")
	}
	if got := g.Viewport().Size(); got != core.V(120, 38*2) {
		t.Errorf("viewport size = %v, want (120, 76)", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0"},
		{59*time.Second + 900*time.Millisecond, "59"},
		{61 * time.Second, "1:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tc := range tests {
		if got := FormatElapsed(tc.d); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
