// mindbender is nested tic-tac-toe for two to four players in the terminal.
//
// Usage:
//
//	mindbender list                  - List available variants
//	mindbender play [variant]        - Play a variant
//	mindbender menu                  - Pick a variant interactively
//	mindbender simulate --moves ...  - Play scripted moves headlessly
//	mindbender config init|show      - Manage the config file
//
// Global flags:
//
//	--config <path>     - Config file (default: XDG config, then ./configs)
//	--log-file <path>   - Write logs to a file while the TUI runs
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mindbender/internal/config"
	// Import the game to register its variants
	_ "github.com/vovakirdan/mindbender/internal/games/mindbender"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mindbender",
	Short: "Mind-Bender - nested tic-tac-toe in your terminal",
	Long: `Mind-Bender is tic-tac-toe played on a board of boards.

Winning a small board claims its cell on the big board. Where you play
inside a small board decides which board the next player must use.
Two to four players take turns with the symbols Σ, I, α and β.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  simulate  - Play scripted moves without the TUI
  config    - Write or show the configuration

Examples:
  mindbender play
  mindbender play mindbender_3p
  mindbender play --players 4
  mindbender simulate --moves "4,4 1,1 resign"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies the --log-level flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
		cfg.Normalize()
	}
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
