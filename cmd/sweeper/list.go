package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games and boards",
	Long:  `Shows the registered games and every board variant they can be played on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Boards:")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %s\n", "Variant", "Cells", "Mines")
	fmt.Printf("  %-16s  %-8s  %s\n", "-------", "-----", "-----")
	for _, p := range minesweeper.Presets() {
		cfg := p.Configuration()
		fmt.Printf("  %-16s  %-8s  %d\n", p.Variant(), fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), cfg.Mines)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play --size <size> --difficulty <difficulty>' to play.")
}
