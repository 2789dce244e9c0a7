package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round in the terminal",
	Long: `Start a round of minesweeper in the terminal.

Mouse:
  Left click    - Reveal a cell (or chord a revealed number)
  Right click   - Flag or unflag a cell
  Middle click  - Chord
  Drag          - Pan the board
  Wheel         - Zoom around the pointer

Keys:
  Arrows/WASD/HJKL  - Pan
  +/-               - Zoom
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot
  Ctrl+Y            - Copy the screen
  ?                 - Help
  Q/Ctrl+C          - Quit

Examples:
  sweeper play
  sweeper play --size huge --difficulty extreme
  sweeper play minesweeper_debug
  sweeper play --config ./my-sweeper.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "minesweeper"
	if len(args) > 0 {
		gameID = args[0]
	}
	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available games.")
		os.Exit(1)
	}

	preset, err := resolvePreset()
	if err != nil {
		fatalf("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}
	if g, ok := game.(*minesweeper.Game); ok {
		g.SetPreset(preset)
	}

	logger, closer, err := tui.OpenLogFile(flagLogFile, "sweeper")
	if err != nil {
		fatalf("%v", err)
	}
	defer closer.Close()
	logger.Info("starting", "game", info.Title, "variant", preset.Variant())

	store := openStore()
	_, runErr := tui.Run(game, store, terminalConfig(), tui.Options{
		Logger:    logger,
		Clipboard: true,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closer.Close()
		fatalf("running game: %v", runErr)
	}
}
