package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ogrinko/bastion/internal/config"
	"github.com/ogrinko/bastion/internal/core"
	"github.com/ogrinko/bastion/internal/platform/tui"
	"github.com/ogrinko/bastion/internal/scenario"
	"github.com/ogrinko/bastion/internal/siege"
	"github.com/ogrinko/bastion/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <scenario>",
	Short: "Play a battle",
	Long: `Start a battle from the given scenario file.

The scenario file names the defender and the attacker, sets the
projectile budget (0 = unlimited), and lays out the city skyline as
column heights. Lines starting with '#' are comments.

Controls:
  Left/A     - Move barrier left
  Right/D    - Move barrier right
  Q          - End the defense
  Ctrl+C     - Abort immediately

Difficulty options:
  easy   - Slow projectiles, narrow attack waves
  normal - Default pacing
  hard   - Fast projectiles, wide attack waves

Examples:
  bastion play siege.txt
  bastion play siege.txt --difficulty hard
  bastion play siege.txt --config ./my-battle.yaml
  bastion play siege.txt --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom battle config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	sc, err := scenario.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadBattle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Get terminal size before entering the alternate screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	keys := core.NewKeys()
	engine, err := siege.New(sc, cfg, keys, width, height, seed)
	if err != nil {
		// Geometry failures are reported before any rendering starts
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open battle storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open battle database: %v\n", err)
		// Continue without storage - the battle still works
		store = nil
	}

	result, runErr := tui.Run(engine, keys, store, flagFPS)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running battle: %v\n", runErr)
		os.Exit(1)
	}

	if result != nil {
		fmt.Printf("%s vs %s: %d projectiles, %d city cells standing (%s)\n",
			result.DefenderName, result.AttackerName,
			result.Projectiles, result.CityMass,
			result.Duration.Round(time.Second))
	}
}
