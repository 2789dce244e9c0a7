package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// menuRow is one line of the main menu.
type menuRow int

const (
	rowSize menuRow = iota
	rowDifficulty
	rowBegin
	rowScores
	rowQuit
	rowCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the board picker menu.
type MenuModel struct {
	preset         minesweeper.Preset
	cursor         menuRow
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model showing the given preset.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset minesweeper.Preset) MenuModel {
	return MenuModel{
		preset:    preset,
		cursor:    rowBegin,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case rowSize, rowDifficulty:
			m.cycle(1)
		case rowBegin:
			m.started = true
			return m, tea.Quit
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// cycle steps the value under the cursor forward (dir > 0) or backward.
func (m *MenuModel) cycle(dir int) {
	steps := 1
	switch m.cursor {
	case rowSize:
		if dir < 0 {
			steps = len(minesweeper.Sizes()) - 1
		}
		for range steps {
			m.preset.Size = m.preset.Size.Next()
		}
	case rowDifficulty:
		if dir < 0 {
			steps = len(minesweeper.Difficulties()) - 1
		}
		for range steps {
			m.preset.Difficulty = m.preset.Difficulty.Next()
		}
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M I N E S W E E P E R"), m.width))
	b.WriteString("\n\n")

	size, diff := m.preset.Size, m.preset.Difficulty
	lines := [rowCount]string{
		rowSize:       fmt.Sprintf("%-12s< %s >", size.Label(), styleFor(size.Color()).Render(size.String())),
		rowDifficulty: fmt.Sprintf("%-12s< %s >", diff.Label(), styleFor(diff.Color()).Render(diff.String())),
		rowBegin:      "Begin",
		rowScores:     "Scores",
		rowQuit:       "Quit",
	}
	for i, line := range lines {
		cursor := "  "
		if menuRow(i) == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
		if menuRow(i) == rowDifficulty {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuMutedStyle.Render(m.boardInfo()), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuMutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// boardInfo describes the selected board and its best time.
func (m MenuModel) boardInfo() string {
	cfg := m.preset.Configuration()
	info := fmt.Sprintf("%dx%d, %d mines", cfg.Width, cfg.Height, cfg.Mines)
	if m.store == nil {
		return info
	}
	best, ok, err := m.store.BestTime(m.preset.Variant())
	if err != nil || !ok {
		return info + "  |  Best: -"
	}
	return info + "  |  Best: " + minesweeper.FormatElapsed(best)
}

// Preset returns the board currently selected in the menu.
func (m MenuModel) Preset() minesweeper.Preset {
	return m.preset
}

// Started returns true if the user asked to begin a round.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          minesweeper.Preset
	Config          core.RuntimeConfig
	Start           bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset minesweeper.Preset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Preset: preset, Quit: true}, nil
	}

	result := MenuResult{
		Preset: m.Preset(),
		Config: m.Config(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Started():
		result.Start = true
	default:
		result.Quit = true
	}
	return result, nil
}

// NewSweeper creates the registered minesweeper game fixed to preset.
func NewSweeper(preset minesweeper.Preset) (registry.Game, error) {
	id := "minesweeper"
	if preset.Difficulty.IsDebug() {
		id = "minesweeper_debug"
	}
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*minesweeper.Game); ok {
		g.SetPreset(preset)
	}
	return game, nil
}
