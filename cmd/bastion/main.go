// bastion is a terminal siege game: an attacker rains projectiles on a
// city skyline while you slide a barrier to intercept them.
//
// Usage:
//
//	bastion play <scenario>  - Play a battle from a scenario file
//	bastion check <scenario> - Validate a scenario file
//	bastion scores           - Show battle history
//	bastion serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Display refresh rate (default: 30)
//	--seed <value>  - RNG seed for reproducible attacks
//	--db <path>     - Battle database path (default: ~/.bastion/battles.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bastion",
	Short: "Bastion - Defend a city skyline in your terminal",
	Long: `Bastion is a terminal siege game. An attacker launches waves of
projectiles at a city skyline; you slide a barrier left and right to
intercept them before they strike the structures below.

Available commands:
  play     - Play a battle from a scenario file
  check    - Validate a scenario file without playing
  scores   - View battle history
  serve    - Start SSH server for remote play

Examples:
  bastion play siege.txt
  bastion play siege.txt --difficulty hard
  bastion check siege.txt
  bastion scores
  bastion serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bastion/battles.db", "Path to battle database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
