package tui

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// statusDuration is how long a transient status message stays on screen.
const statusDuration = 2 * time.Second

var tickIDs atomic.Int64

func nextTickID() int { return int(tickIDs.Add(1)) }

// Options tune a Model beyond its runtime config.
type Options struct {
	Logger    *log.Logger
	Clipboard bool // ctrl+y may write to the local clipboard
	InSession bool // leaving to the menu keeps the program running
}

// Model is the Bubble Tea model that wraps a game.
// It bridges the Bubble Tea event loop with the game's fixed-tick simulation.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tickID     int

	status      string
	statusUntil time.Time
	showHelp    bool

	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewModel creates a new Model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = NewLogger(io.Discard, "sweeper")
	}
	h := help.New()
	h.ShowAll = true

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     opts.Logger,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickID:     nextTickID(),
	}
}

// Init implements tea.Model. It resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "game", m.game.ID(), "variant", m.game.State().Variant, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update implements tea.Model. It handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input and accumulates actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Game
	switch {
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, k.Screenshot):
		m.takeScreenshot()
		return m, nil
	case key.Matches(msg, k.Copy):
		m.copyToClipboard()
		return m, nil
	}

	if m.showHelp {
		// Any other key closes the help overlay.
		m.showHelp = false
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.logRoundLeft("quit")
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.logRoundLeft("menu")
		m.backToMenu = true
		if m.opts.InSession {
			return m, nil
		}
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse queues pointer events in arrival order for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if ev, ok := PointerFromMouse(msg); ok {
		m.inputFrame.Push(ev)
	}
	return m, nil
}

// PointerFromMouse converts a terminal mouse message to a pointer event.
// The event addresses the centre of the terminal cell under the mouse.
// Returns false for messages that carry no pointer event.
func PointerFromMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return core.Scroll(1, x, y), msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelDown:
		return core.Scroll(-1, x, y), msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return core.PointerEvent{}, false
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		return core.Move(x, y), true
	case tea.MouseActionPress:
		b := pointerButton(msg.Button)
		if b == core.ButtonNone {
			return core.PointerEvent{}, false
		}
		return core.Press(b, x, y), true
	case tea.MouseActionRelease:
		// X10 mouse reporting does not say which button was released.
		b := pointerButton(msg.Button)
		if b == core.ButtonNone && msg.Button != tea.MouseButtonNone {
			return core.PointerEvent{}, false
		}
		return core.Release(b, x, y), true
	}
	return core.PointerEvent{}, false
}

func pointerButton(b tea.MouseButton) core.PointerButton {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonPrimary
	case tea.MouseButtonRight:
		return core.ButtonSecondary
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	default:
		return core.ButtonNone
	}
}

// handleResize resizes the screen buffer. Games that can follow a resize
// keep their round; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.tickID || m.quitting || m.backToMenu {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	restart := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !wasOver:
		m.finishRound()
	case restart:
		m.resultSaved = false
		m.logger.Info("round started", "game", m.game.ID(), "variant", m.gameState.Variant)
	}

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// finishRound records the result of a round that just ended.
func (m *Model) finishRound() {
	st := m.gameState
	m.logger.Info("round finished",
		"game", m.game.ID(),
		"variant", st.Variant,
		"won", st.Won,
		"elapsed", st.Elapsed.Round(time.Millisecond),
		"revealed", st.Score,
	)
	if m.resultSaved || m.store == nil {
		return
	}
	m.resultSaved = true

	_, err := m.store.SaveResult(storage.Result{
		GameID:   m.game.ID(),
		Variant:  st.Variant,
		Won:      st.Won,
		Duration: st.Elapsed,
		Revealed: st.Score,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

func (m *Model) logRoundLeft(reason string) {
	if m.gameState.GameOver {
		return
	}
	m.logger.Info("round abandoned", "game", m.game.ID(), "variant", m.gameState.Variant, "reason", reason)
}

// takeScreenshot saves the current screen as text under ~/.arcade/screenshots.
func (m *Model) takeScreenshot() {
	m.game.Render(m.screen)
	dir, err := screenshotDir()
	if err == nil {
		var path string
		path, err = saveScreenshot(m.screen, dir, m.game.ID(), time.Now())
		if err == nil {
			m.setStatus("saved " + path)
			m.logger.Debug("screenshot saved", "path", path)
			return
		}
	}
	m.setStatus("screenshot failed")
	m.logger.Warn("screenshot failed", "error", err)
}

// copyToClipboard copies the current screen text to the system clipboard.
func (m *Model) copyToClipboard() {
	if !m.opts.Clipboard {
		m.setStatus("clipboard not available")
		return
	}
	m.game.Render(m.screen)
	if err := copyScreen(m.screen); err != nil {
		m.setStatus("copy failed")
		m.logger.Warn("clipboard copy failed", "error", err)
		return
	}
	m.setStatus("screen copied")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusDuration)
}

// View implements tea.Model. It renders the game through the screen buffer.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.showHelp {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render("CONTROLS\n\n" +
				"click: reveal/chord  right click: flag  middle click: chord\n" +
				"drag: pan  wheel: zoom\n\n" +
				m.help.View(m.keys.Game))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	if m.status != "" && time.Now().Before(m.statusUntil) {
		m.screen.DrawTextColor(0, m.screen.Height()-1, m.status, core.ColorBrightCyan)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns true when the player asked for the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	opts.InSession = false
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
