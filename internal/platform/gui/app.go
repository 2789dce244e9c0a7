// Package gui runs the sweeper in a desktop window on top of ebiten.
// Pointer events carry real pixel positions and the board is drawn with
// vector rectangles through the game's camera.
package gui

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// HUDHeight is the pixel height of the status bar above the board.
const HUDHeight = 36

// debugFont is the glyph cell of ebitenutil.DebugPrint.
const (
	debugFontW = 6
	debugFontH = 16
)

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	core   core.PointerButton
}{
	{ebiten.MouseButtonLeft, core.ButtonPrimary},
	{ebiten.MouseButtonRight, core.ButtonSecondary},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
}

var actionKeys = [...]struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEqual, core.ActionZoomIn},
	{ebiten.KeyNumpadAdd, core.ActionZoomIn},
	{ebiten.KeyMinus, core.ActionZoomOut},
	{ebiten.KeyNumpadSubtract, core.ActionZoomOut},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// rawInput is the device state of one frame.
type rawInput struct {
	cursorX, cursorY int
	pressed          []core.PointerButton
	released         []core.PointerButton
	wheel            float64
	actions          []core.Action
}

// App implements ebiten.Game around a minesweeper game.
type App struct {
	game   *minesweeper.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	width, height    int
	cursorX, cursorY int
	cursorKnown      bool
	state            core.GameState
	resultSaved      bool
	quitting         bool
}

// NewApp creates the window model. The game is reset with pixel units:
// square rows and a HUD of HUDHeight pixels.
func NewApp(game *minesweeper.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.RowAspect = 1
	cfg.HUDHeight = HUDHeight

	a := &App{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	game.Reset(cfg)
	a.state = game.State()
	logger.Info("round started", "game", game.ID(), "variant", a.state.Variant, "seed", cfg.Seed)
	return a
}

// Update reads the devices and advances the game by one tick.
func (a *App) Update() error {
	a.apply(readInput())
	if a.quitting {
		return ebiten.Termination
	}
	return nil
}

func readInput() rawInput {
	var in rawInput
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			in.pressed = append(in.pressed, b.core)
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			in.released = append(in.released, b.core)
		}
	}
	_, in.wheel = ebiten.Wheel()
	for _, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.actions = append(in.actions, k.action)
		}
	}
	return in
}

// frame converts device state to an input frame. Pixel centres are used
// so that a click lands on the same cell in both platforms.
func (a *App) frame(in rawInput) core.InputFrame {
	f := core.NewInputFrame()
	for _, act := range in.actions {
		f.Set(act)
	}

	x, y := float64(in.cursorX)+0.5, float64(in.cursorY)+0.5
	if !a.cursorKnown || in.cursorX != a.cursorX || in.cursorY != a.cursorY {
		f.Push(core.Move(x, y))
		a.cursorX, a.cursorY, a.cursorKnown = in.cursorX, in.cursorY, true
	}
	for _, b := range in.pressed {
		f.Push(core.Press(b, x, y))
	}
	for _, b := range in.released {
		f.Push(core.Release(b, x, y))
	}
	if in.wheel != 0 {
		f.Push(core.Scroll(in.wheel, x, y))
	}
	return f
}

// apply steps the game with one frame of input.
func (a *App) apply(in rawInput) {
	f := a.frame(in)
	if f.Has(core.ActionQuit) {
		a.quitting = true
		return
	}

	wasOver := a.state.GameOver
	a.state = a.game.Step(f).State

	switch {
	case a.state.GameOver && !wasOver:
		a.finishRound()
	case f.Has(core.ActionRestart):
		a.resultSaved = false
		a.logger.Info("round started", "game", a.game.ID(), "variant", a.state.Variant)
	}
}

func (a *App) finishRound() {
	st := a.state
	a.logger.Info("round finished", "variant", st.Variant, "won", st.Won, "elapsed", st.Elapsed.Round(time.Millisecond))
	if a.resultSaved || a.store == nil {
		return
	}
	a.resultSaved = true
	_, err := a.store.SaveResult(storage.Result{
		GameID:   a.game.ID(),
		Variant:  st.Variant,
		Won:      st.Won,
		Duration: st.Elapsed,
		Revealed: st.Score,
	})
	if err != nil {
		a.logger.Warn("could not save result", "error", err)
	}
}

// Layout follows the window size and keeps the camera in step with it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Draw renders the HUD and every visible cell.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if err := a.game.Err(); err != nil {
		ebitenutil.DebugPrintAt(screen, err.Error(), 8, HUDHeight+8)
		a.drawHUD(screen)
		return
	}

	g := a.game.Grid()
	if g == nil {
		a.drawHUD(screen)
		return
	}
	for y := range g.Height() {
		for x := range g.Width() {
			a.drawCell(screen, x, y, g.At(x, y))
		}
	}
	a.drawHUD(screen)
}

// cellRect returns the window rectangle of grid cell (x, y).
func (a *App) cellRect(x, y int) (x0, y0, w, h float32) {
	view := a.game.Viewport()
	tl := view.WorldToScreen(core.V(float64(x), float64(y)))
	br := view.WorldToScreen(core.V(float64(x+1), float64(y+1)))
	return float32(tl.X), float32(tl.Y) + HUDHeight, float32(br.X - tl.X), float32(br.Y - tl.Y)
}

func (a *App) drawCell(screen *ebiten.Image, x, y int, c board.Cell) {
	x0, y0, w, h := a.cellRect(x, y)
	if x0+w < 0 || y0+h < HUDHeight || int(x0) > a.width || int(y0) > a.height {
		return
	}

	r, fg := a.game.Glyph(x, y)
	bg := colorCovered
	switch {
	case r == minesweeper.GlyphExploded:
		bg = colorExploded
	case c.State == board.Revealed:
		bg = colorRevealed
	}
	vector.FillRect(screen, x0, y0, w, h, bg, false)
	if w >= 4 {
		vector.StrokeRect(screen, x0, y0, w, h, 1, colorGridLine, false)
	}

	switch r {
	case minesweeper.GlyphCovered, minesweeper.GlyphEmpty:
		return
	case minesweeper.GlyphMine, minesweeper.GlyphExploded:
		radius := float32(math.Min(float64(w), float64(h))) * 0.3
		vector.FillCircle(screen, x0+w/2, y0+h/2, radius, rgb(fg), true)
		return
	}
	if w < debugFontW || h < debugFontH {
		vector.FillRect(screen, x0+w/4, y0+h/4, w/2, h/2, rgb(fg), false)
		return
	}
	// DebugPrint draws white text only, so the glyph sits on a coloured square.
	vector.FillRect(screen, x0+w/2-debugFontW, y0+h/2-debugFontH/2, 2*debugFontW, debugFontH, rgb(fg), false)
	ebitenutil.DebugPrintAt(screen, string(r), int(x0+w/2)-debugFontW/2, int(y0+h/2)-debugFontH/2)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(a.width), HUDHeight, colorHUD, false)

	status := "left: reveal  right: flag  middle: chord  drag: pan  wheel: zoom  p: pause  r: restart  q: quit"
	switch {
	case a.game.Phase() == minesweeper.PhaseWon:
		status = "CLEARED!  r: restart  q: quit"
	case a.game.Phase() == minesweeper.PhaseLost:
		status = "BOOM!  r: restart  q: quit"
	case a.state.Paused:
		status = "PAUSED  p: resume"
	}

	line := fmt.Sprintf("MINESWEEPER  %s    Mines: %d    Time: %s",
		a.game.Preset(), a.game.Remaining(), minesweeper.FormatElapsed(a.game.Elapsed()))
	ebitenutil.DebugPrintAt(screen, line, 8, 2)
	ebitenutil.DebugPrintAt(screen, status, 8, 18)
}

// Run opens the window and blocks until it is closed.
func Run(game *minesweeper.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := NewApp(game, store, cfg, logger)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
