package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindbender/internal/core"
	"github.com/vovakirdan/mindbender/internal/platform/tui"
	"github.com/vovakirdan/mindbender/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant.
Esc during a match returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg.LogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	return menuLoop(cfg.Runtime(width, height), logger)
}

// menuLoop alternates between the menu and matches until the player quits.
func menuLoop(rc core.RuntimeConfig, logger *log.Logger) error {
	for {
		res, err := tui.RunMenu(rc)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Keep any size change from the menu
		rc = res.Config
		if res.Quit {
			return nil
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		back, err := tui.Run(game, rc, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
