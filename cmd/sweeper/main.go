// sweeper is a minesweeper for the terminal, the desktop and SSH.
//
// Usage:
//
//	sweeper list              - List available games
//	sweeper play [game]       - Play a round in the terminal
//	sweeper menu              - Pick a board interactively
//	sweeper gui               - Play in a desktop window
//	sweeper serve             - Start SSH server for remote play
//	sweeper scores [variant]  - Show best times
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.arcade/sweeper.db)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string

	// Board flags shared by play, menu and gui
	flagConfig     string
	flagSize       string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper with a zoomable board",
	Long: `Sweeper is a minesweeper whose boards can be far larger than the screen.
Drag to pan, scroll to zoom, left click to reveal and right click to flag.

Available commands:
  list     - Show all available games
  play     - Play a round in the terminal
  menu     - Interactive board picker
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View best times

Examples:
  sweeper play --size big --difficulty hard
  sweeper menu
  sweeper gui --width 1280 --height 800
  sweeper serve --ssh :2222
  sweeper scores medium/hard`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addBoardFlags registers the board selection flags on cmd.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper config YAML")
	cmd.Flags().StringVar(&flagSize, "size", "", "Board size: small, medium, big, huge")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Mine density: easy, medium, hard, extreme, debug")
}

// resolvePreset loads the config file and applies the board flags over it.
func resolvePreset() (minesweeper.Preset, error) {
	cfg, err := config.LoadSweeper(flagConfig)
	if err != nil {
		return minesweeper.Preset{}, err
	}
	config.ApplySweeperPreset(&cfg, flagSize, flagDifficulty)
	minesweeper.SetConfigPath(flagConfig)
	return minesweeper.ParsePreset(cfg.Board.Size, cfg.Board.Difficulty)
}

// terminalConfig builds a runtime config sized to the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database. A failure is reported and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
