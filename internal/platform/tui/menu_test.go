package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sendKeys(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{keyRunes("j"), core.ActionDown, false},
		{keyRunes("h"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{keyRunes("+"), core.ActionZoomIn, false},
		{keyRunes("="), core.ActionZoomIn, false},
		{keyRunes("-"), core.ActionZoomOut, false},
		{keyRunes("p"), core.ActionPause, false},
		{keyRunes("r"), core.ActionRestart, false},
		{keyRunes("m"), core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}

	frame := core.NewInputFrame()
	km.MapKeyToFrame(keyRunes("+"), &frame)
	if !frame.Has(core.ActionZoomIn) {
		t.Error("MapKeyToFrame should set the mapped action")
	}
}

func TestMenuCycling(t *testing.T) {
	m := NewMenuModel(nil, testConfig, minesweeper.Preset{})
	up := tea.KeyMsg{Type: tea.KeyUp}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	right := tea.KeyMsg{Type: tea.KeyRight}

	// Begin is selected first; two rows up is Size.
	next := sendKeys(m, up, up, right, right).(MenuModel)
	if next.Preset().Size != minesweeper.SizeBig {
		t.Errorf("Size = %v, want Big", next.Preset().Size)
	}

	next = sendKeys(next, left, left, left).(MenuModel)
	if next.Preset().Size != minesweeper.SizeHuge {
		t.Errorf("Size = %v, want Huge after wrapping back", next.Preset().Size)
	}

	next = sendKeys(next, tea.KeyMsg{Type: tea.KeyDown}, left).(MenuModel)
	if next.Preset().Difficulty != minesweeper.DifficultyDebug {
		t.Errorf("Difficulty = %v, want Debug", next.Preset().Difficulty)
	}
	if next.Started() || next.IsQuitting() {
		t.Error("cycling should not leave the menu")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig, minesweeper.Preset{})

	began := sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter}).(MenuModel)
	if !began.Started() {
		t.Error("enter on Begin should start a round")
	}

	scores := sendKeys(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}).(MenuModel)
	if !scores.WantsScoreboard() {
		t.Error("enter on Scores should open the scoreboard")
	}

	quit := sendKeys(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}).(MenuModel)
	if !quit.IsQuitting() {
		t.Error("enter on Quit should quit")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(nil, testConfig, minesweeper.Preset{Size: minesweeper.SizeMedium, Difficulty: minesweeper.DifficultyHard})
	view := m.View()
	for _, want := range []string{"Medium", "Hard", "Begin", "32x18, 115 mines"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMenuBestTime(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	preset := minesweeper.Preset{}
	if _, err := store.SaveResult(storage.Result{GameID: "minesweeper", Variant: preset.Variant(), Won: true, Duration: 83 * time.Second}); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}

	view := NewMenuModel(store, testConfig, preset).View()
	if !strings.Contains(view, "Best: 1:23") {
		t.Errorf("View() should show the best time, got:\n%s", view)
	}
}

func TestScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{GameID: "minesweeper", Variant: "medium/hard", Won: true, Duration: 90 * time.Second},
		{GameID: "minesweeper", Variant: "medium/hard", Won: true, Duration: 45 * time.Second},
		{GameID: "minesweeper", Variant: "medium/hard", Won: false, Duration: 10 * time.Second},
		{GameID: "minesweeper", Variant: "big/easy", Won: false, Duration: 5 * time.Second},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}

	current := minesweeper.Preset{Size: minesweeper.SizeMedium, Difficulty: minesweeper.DifficultyHard}
	m := NewScoreboardModel(store, 100, 30, current)

	if len(m.variants) != 2 {
		t.Fatalf("variants = %v, want medium/hard and big/easy", m.variants)
	}
	if p, _ := m.Selected(); p != current {
		t.Errorf("Selected() = %v, want %v", p, current)
	}
	if len(m.results) != 2 || m.results[0].Duration != 45*time.Second {
		t.Errorf("results = %+v, want the two wins fastest first", m.results)
	}
	if m.stats.Played != 3 || m.stats.Won != 2 {
		t.Errorf("stats = %+v", m.stats)
	}
	if !strings.Contains(m.View(), "Won 2 (67%)") {
		t.Error("View() should show the win rate")
	}

	next := sendKeys(m, tea.KeyMsg{Type: tea.KeyTab}).(ScoreboardModel)
	if p, _ := next.Selected(); p.Size != minesweeper.SizeBig {
		t.Errorf("tab should move to the next board, got %v", p)
	}
	if len(next.results) != 0 {
		t.Error("big/easy has no wins")
	}

	back := sendKeys(next, tea.KeyMsg{Type: tea.KeyEsc}).(ScoreboardModel)
	if !back.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	logger := NewLogger(io.Discard, "test")
	var m tea.Model = NewSessionModel(nil, testConfig, debugPreset, logger)

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	if s.game.game.ID() != "minesweeper_debug" {
		t.Errorf("game = %q, want the debug layout", s.game.game.ID())
	}

	m = sendKeys(m, keyRunes("m"))
	s = m.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", s.screen)
	}
	if s.menu.Preset() != debugPreset {
		t.Error("the menu should keep the last preset")
	}

	m, _ = m.Update(TickMsg{ID: 1})
	if m.(SessionModel).screen != screenMenu {
		t.Error("a stray tick should not leave the menu")
	}

	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	m = sendKeys(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).screen != screenMenu {
		t.Fatal("esc should return to the menu")
	}

	m, cmd := m.Update(keyRunes("q"))
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "ef", core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "ef") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestSaveScreenshot(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "BOOM")
	dir := filepath.Join(t.TempDir(), "shots")

	path, err := saveScreenshot(s, dir, "minesweeper", time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	if err != nil {
		t.Fatalf("saveScreenshot() error = %v", err)
	}
	if filepath.Base(path) != "minesweeper_20240506_070809.txt" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "BOOM") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestOpenLogFile(t *testing.T) {
	logger, closer, err := OpenLogFile("", "test")
	if err != nil || logger == nil {
		t.Fatalf("OpenLogFile(\"\") = %v, %v", logger, err)
	}
	closer.Close()

	path := filepath.Join(t.TempDir(), "logs", "sweeper.log")
	logger, closer, err = OpenLogFile(path, "test")
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	logger.Info("round started", "variant", "small/easy")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Errorf("log = %q", data)
	}
}

func TestANSICodesCoverPalette(t *testing.T) {
	if len(ansiCodes) != int(core.ColorDim)+1 {
		t.Fatalf("ansiCodes has %d entries, want one per colour", len(ansiCodes))
	}
	for c := core.ColorRed; c <= core.ColorDim; c++ {
		if ansiCodes[c] == "" {
			t.Errorf("no terminal colour for %v", c)
		}
	}
}
