package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ogrinko/bastion/internal/scenario"
)

var checkCmd = &cobra.Command{
	Use:   "check <scenario>",
	Short: "Validate a scenario file",
	Long: `Parse the given scenario file and print a summary without playing.

Exits non-zero if the file is malformed.

Examples:
  bastion check siege.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	sc, err := scenario.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	budget := fmt.Sprintf("%d projectiles", sc.Budget)
	if sc.Unlimited() {
		budget = "unlimited projectiles"
	}

	fmt.Printf("Defender: %s\n", sc.DefenderName)
	fmt.Printf("Attacker: %s (%s)\n", sc.AttackerName, budget)
	fmt.Printf("Skyline:  %d columns, tallest %d\n", len(sc.Layout), sc.Tallest)
}
