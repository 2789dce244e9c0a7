// Package minesweeper wires the board and camera into a registry game:
// it turns frames of keys and pointer events into reveals, flags and
// camera moves, tracks the round outcome and time, and draws the board.
package minesweeper

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/camera"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// Phase is the round state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

const defaultHUDHeight = 2

// Package-level selection used by the CLI before the game is created.
var (
	configPath     string
	selectedPreset *Preset
)

// SetConfigPath sets the config file used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects the board for games that have no preset of their own.
func SetPreset(p Preset) {
	selectedPreset = &p
}

// Game implements minesweeper on top of the board and camera packages.
type Game struct {
	debug     bool
	preset    Preset
	hasPreset bool

	cfg     config.SweeperConfig
	rng     *rand.Rand
	grid    *board.Grid
	view    *camera.Viewport
	pointer *camera.Controller
	err     error

	phase  Phase
	paused bool
	lostAt board.Point
	ticks  uint64 // ticks played in the current round

	tickRate  int
	screenW   int
	screenH   int
	hudHeight int
	rowAspect float64
}

// New creates a minesweeper game with random mines.
func New() *Game {
	return &Game{}
}

// NewDebug creates a minesweeper game on the fixed debug layout.
func NewDebug() *Game {
	return &Game{debug: true}
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
	registry.Register("minesweeper_debug", func() registry.Game {
		return NewDebug()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.debug {
		return "minesweeper_debug"
	}
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.debug {
		return "Minesweeper (Debug)"
	}
	return "Minesweeper"
}

// SetPreset fixes the board of this game. Takes effect on the next Reset.
func (g *Game) SetPreset(p Preset) {
	g.preset = p
	g.hasPreset = true
}

// Preset returns the board selection of the current round.
func (g *Game) Preset() Preset { return g.preset }

// Reset loads configuration and starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sc, err := config.LoadSweeper(configPath)
	if err != nil {
		sc = config.DefaultSweeperConfig()
	}
	g.cfg = sc

	if !g.hasPreset {
		g.preset = g.defaultPreset()
	}
	if g.debug {
		g.preset.Difficulty = DifficultyDebug
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = cfg.HUDHeight
	if g.hudHeight <= 0 {
		g.hudHeight = defaultHUDHeight
	}
	g.rowAspect = cfg.RowAspect
	if g.rowAspect <= 0 {
		g.rowAspect = sc.Camera.RowAspect
	}

	g.newRound()
}

func (g *Game) defaultPreset() Preset {
	if selectedPreset != nil {
		return *selectedPreset
	}
	p, err := ParsePreset(g.cfg.Board.Size, g.cfg.Board.Difficulty)
	if err != nil {
		return Preset{}
	}
	return p
}

// newRound builds a fresh board with the current preset and recentres the camera.
func (g *Game) newRound() {
	g.phase = PhasePlaying
	g.paused = false
	g.ticks = 0
	g.lostAt = board.Point{X: -1, Y: -1}

	g.grid, g.err = board.Populate(g.preset.Configuration(), g.preset.Pattern(), g.rng)
	if g.err != nil {
		g.grid, g.view, g.pointer = nil, nil, nil
		return
	}

	extent := core.V(float64(g.grid.Width()), float64(g.grid.Height()))
	limits := camera.Limits{
		MinView:    g.cfg.Camera.MinView,
		FitMargin:  g.cfg.Camera.FitMargin,
		EdgeMargin: g.cfg.Camera.EdgeMargin,
		ZoomStep:   g.cfg.Camera.ZoomStep,
	}
	g.view = camera.New(extent, g.surfaceSize(), limits)
	g.pointer = camera.NewController(g.view, g, g.cfg.Controls.DragThreshold)
}

// surfaceSize is the board area in viewport pixels.
func (g *Game) surfaceSize() core.Vec2 {
	return core.V(float64(g.screenW), float64(g.screenH-g.hudHeight)*g.rowAspect)
}

// toViewport converts a surface point to a viewport pixel below the HUD.
func (g *Game) toViewport(x, y float64) core.Vec2 {
	return core.V(x, (y-float64(g.hudHeight))*g.rowAspect)
}

// Resize adapts the camera to a new surface size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.view != nil {
		g.view.Resize(g.surfaceSize())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.newRound()
		return core.StepResult{State: g.State()}
	}
	if g.grid == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhasePlaying {
		g.ticks++
	}

	g.handleCamera(in)
	for _, ev := range in.Pointer {
		p := g.toViewport(ev.X, ev.Y)
		ev.X, ev.Y = p.X, p.Y
		g.pointer.Handle(ev)
	}

	// The win check sees the settled end-of-frame board; a loss this frame wins over it.
	if g.phase == PhasePlaying && g.grid.IsWon() {
		g.phase = PhaseWon
		g.grid.FlagMines()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleCamera(in core.InputFrame) {
	step := g.cfg.Controls.PanStep
	var pan core.Vec2
	if in.Has(core.ActionLeft) {
		pan.X -= step
	}
	if in.Has(core.ActionRight) {
		pan.X += step
	}
	if in.Has(core.ActionUp) {
		pan.Y -= step
	}
	if in.Has(core.ActionDown) {
		pan.Y += step
	}
	if pan != (core.Vec2{}) {
		g.view.Pan(pan)
	}

	if in.Has(core.ActionZoomIn) {
		g.view.ZoomCentre(g.cfg.Controls.KeyZoom)
	}
	if in.Has(core.ActionZoomOut) {
		g.view.ZoomCentre(-g.cfg.Controls.KeyZoom)
	}
}

// Open is a primary click: reveal a covered cell, chord a revealed one.
func (g *Game) Open(x, y int) {
	if g.phase != PhasePlaying {
		return
	}
	if g.grid.At(x, y).State == board.Revealed {
		g.settle(g.grid.Chord(x, y), x, y)
		return
	}
	g.settle(g.grid.Reveal(x, y), x, y)
}

// Flag is a secondary click: toggle the flag on a covered cell.
func (g *Game) Flag(x, y int) {
	if g.phase != PhasePlaying {
		return
	}
	g.grid.ToggleFlag(x, y)
}

// Chord is a middle click: chord a revealed numbered cell.
func (g *Game) Chord(x, y int) {
	if g.phase != PhasePlaying {
		return
	}
	g.settle(g.grid.Chord(x, y), x, y)
}

// settle latches a loss. For a chord the exploded mine is found among the
// neighbours of (x, y).
func (g *Game) settle(o board.Outcome, x, y int) {
	if o != board.Lost {
		return
	}
	g.phase = PhaseLost
	g.lostAt = board.Point{X: x, Y: y}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !g.grid.InBounds(nx, ny) {
				continue
			}
			if c := g.grid.At(nx, ny); c.Content.IsMine() && c.State == board.Revealed {
				g.lostAt = board.Point{X: nx, Y: ny}
				return
			}
		}
	}
}

// Phase returns the round state.
func (g *Game) Phase() Phase { return g.phase }

// Grid returns the current board, or nil when it could not be built.
func (g *Game) Grid() *board.Grid { return g.grid }

// Viewport returns the camera, or nil when there is no board.
func (g *Game) Viewport() *camera.Viewport { return g.view }

// Err returns the error that prevented the board from being built.
func (g *Game) Err() error { return g.err }

// HUDHeight returns the number of surface rows reserved above the board.
func (g *Game) HUDHeight() int { return g.hudHeight }

// Elapsed returns the play time of the current round.
func (g *Game) Elapsed() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	return time.Duration(g.ticks) * time.Second / time.Duration(g.tickRate)
}

// Remaining returns the mine counter shown in the HUD.
func (g *Game) Remaining() int {
	if g.grid == nil {
		return 0
	}
	return g.grid.Remaining()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.safeRevealed(),
		GameOver: g.phase != PhasePlaying,
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
		Elapsed:  g.Elapsed(),
		Variant:  g.preset.Variant(),
	}
}

// safeRevealed counts revealed cells that are not mines.
func (g *Game) safeRevealed() int {
	if g.grid == nil {
		return 0
	}
	n := 0
	g.grid.Each(func(_, _ int, c board.Cell) {
		if c.State == board.Revealed && !c.Content.IsMine() {
			n++
		}
	})
	return n
}
