package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/gui"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play one board with the mouse.

The board uses the same camera as the terminal: drag to pan, scroll to zoom
around the pointer, left click reveals, right click flags, middle click chords.
R restarts, P pauses and Q or Esc closes the window.

Examples:
  sweeper gui
  sweeper gui --size huge --difficulty hard
  sweeper gui --width 1600 --height 1000`,
	Run: runGUI,
}

func init() {
	addBoardFlags(guiCmd)
	guiCmd.Flags().IntVar(&flagWidth, "width", 1024, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagHeight, "height", 768, "Window height in pixels")
}

func runGUI(_ *cobra.Command, _ []string) {
	preset, err := resolvePreset()
	if err != nil {
		fatalf("%v", err)
	}

	game := minesweeper.New()
	if preset.Difficulty.IsDebug() {
		game = minesweeper.NewDebug()
	}
	game.SetPreset(preset)

	logger, closer, err := tui.OpenLogFile(flagLogFile, "sweeper-gui")
	if err != nil {
		fatalf("%v", err)
	}
	defer closer.Close()

	store := openStore()
	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	runErr := gui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closer.Close()
		fatalf("%v", runErr)
	}
}
