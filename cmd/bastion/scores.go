package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ogrinko/bastion/internal/platform/tui"
	"github.com/ogrinko/bastion/internal/storage"
)

var flagScoresUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show battle history",
	Long: `Display recent battles and overall statistics.

With --ui, opens an interactive board with scrolling and a best-defenses
ranking.

Examples:
  bastion scores
  bastion scores --ui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresUI, "ui", false, "Open the interactive history board")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening battle database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	battles, err := store.RecentBattles(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving battles: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Battles")
	fmt.Println()

	if len(battles) == 0 {
		fmt.Println("No battles recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bastion play <scenario>' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-18s  %-18s  %-14s  %-6s  %-6s  %s\n",
		"Defender", "Attacker", "Outcome", "Shots", "City", "Date")
	fmt.Printf("  %-18s  %-18s  %-14s  %-6s  %-6s  %s\n",
		"--------", "--------", "-------", "-----", "----", "----")

	for _, b := range battles {
		fmt.Printf("  %-18s  %-18s  %-14s  %-6d  %-6d  %s\n",
			trim(b.Defender, 18), trim(b.Attacker, 18), trim(b.Outcome, 14),
			b.Projectiles, b.CityMass,
			b.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d battles, %d projectiles fired, best city %d cells\n",
			stats.Battles, stats.TotalProjectiles, stats.BestCityMass)
	}
}

// trim shortens a string to fit a column.
func trim(s string, max int) string {
	if len(s) > max {
		return s[:max-1] + "."
	}
	return s
}
