package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start sweeper in interactive menu mode.

Choose a size and difficulty, then begin a round. Leaving a round with M or
Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change size or difficulty
  Enter/Space     - Select
  Tab             - Best times
  Q               - Quit

Examples:
  sweeper menu
  sweeper menu --size big
  sweeper menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	addBoardFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := resolvePreset()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closer, err := tui.OpenLogFile(flagLogFile, "sweeper")
	if err != nil {
		fatalf("%v", err)
	}
	defer closer.Close()

	store := openStore()
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, preset)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := tui.NewSweeper(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Every round from the menu gets a fresh board unless --seed pins it.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, tui.Options{
			Logger:    logger,
			Clipboard: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
