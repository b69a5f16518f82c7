package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ogrinko/bastion/internal/config"
	"github.com/ogrinko/bastion/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagSSHScenario  string
	flagIdleTimeout  int
	flagSSHConfig    string
	flagSSHDifficult string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the battle SSH server",
	Long: `Start an SSH server that lets users connect and fight a battle.

Each SSH connection gets its own battle sized to its terminal. All
battles share one history database. Without --scenario every session
plays the built-in skyline.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bastion/host_key

Examples:
  bastion serve                            # Listen on :23235 with auto-generated key
  bastion serve --ssh :2222                # Listen on port 2222
  bastion serve --scenario siege.txt       # Serve a specific battle plan
  bastion serve --host-key ./my_host_key   # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHScenario, "scenario", "", "Scenario file served to every session")
	serveCmd.Flags().StringVar(&flagSSHConfig, "config", "", "Path to custom battle config YAML")
	serveCmd.Flags().StringVar(&flagSSHDifficult, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	battleCfg, err := config.LoadBattle(flagSSHConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSSHDifficult != "" {
		config.ApplyPreset(&battleCfg, config.DifficultyPreset(flagSSHDifficult))
	}

	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		ScenarioPath: flagSSHScenario,
		Battle:       battleCfg,
		FPS:          flagFPS,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting battle SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
