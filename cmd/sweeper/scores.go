package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best times",
	Long: `Display the fastest wins and the win rate of a board variant.
Without a variant, every board that has results is listed.

Examples:
  sweeper scores
  sweeper scores small/easy
  sweeper scores huge/extreme --limit 20
  sweeper scores small/debug --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show per board")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the results of the variant (all boards without one)")
}

func runScores(cmd *cobra.Command, args []string) {
	var variants []string
	if len(args) > 0 {
		p, err := minesweeper.ParseVariant(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		variants = []string{p.Variant()}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening results database: %v", err)
	}
	defer store.Close()

	if flagClear {
		variant := ""
		if variants != nil {
			variant = variants[0]
		}
		if err := store.ClearResults(variant); err != nil {
			store.Close()
			fatalf("%v", err)
		}
		if variant == "" {
			variant = "all boards"
		}
		fmt.Printf("Cleared results for %s.\n", variant)
		return
	}

	if variants == nil {
		if variants, err = store.Variants(); err != nil {
			store.Close()
			fatalf("listing boards: %v", err)
		}
		if len(variants) == 0 {
			fmt.Println("No results recorded yet.")
			fmt.Println()
			fmt.Println("Play 'sweeper play' to set the first best time!")
			return
		}
	}

	for i, v := range variants {
		if i > 0 {
			fmt.Println()
		}
		if err := printBoard(store, v); err != nil {
			store.Close()
			fatalf("reading results for %s: %v", v, err)
		}
	}
}

func printBoard(store *storage.Store, variant string) error {
	results, err := store.BestTimes(variant, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(variant)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", variant)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("  No wins recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
		fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")
		for i, r := range results {
			fmt.Printf("  %-4d  %-8s  %s\n", i+1, minesweeper.FormatElapsed(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Printf("Played %d, won %d (%.0f%%)\n", stats.Played, stats.Won, stats.WinRate()*100)
	return nil
}
