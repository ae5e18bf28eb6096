package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindbender/internal/config"
	"github.com/vovakirdan/mindbender/internal/platform/tui"
	"github.com/vovakirdan/mindbender/internal/registry"
)

var (
	flagPlayers int
	flagPreset  string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a match of the given variant. Without a variant the player
count from --players, --preset or the config picks one.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Enter/Space       - Place a token
  X                 - Resign
  R                 - New match (after game over)
  ?                 - All keys
  Ctrl+S            - Save a text screenshot
  Esc/B             - Back to the menu
  Q/Ctrl+C          - Quit

Presets:
  duel  - 2 players
  trio  - 3 players
  quad  - 4 players

Examples:
  mindbender play
  mindbender play mindbender_4p
  mindbender play --preset trio
  mindbender play mindbender --players 3 --log-file mb.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players (2-4), overrides the variant")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Player preset: duel, trio, quad")
}

// seatOverride applies --preset and --players to cfg and returns the
// requested player count, or 0 when neither flag was given.
func seatOverride(cfg *config.Config) (int, error) {
	requested := 0
	if flagPreset != "" {
		p, err := config.ParsePreset(flagPreset)
		if err != nil {
			return 0, err
		}
		if err := config.ApplyPreset(cfg, p); err != nil {
			return 0, err
		}
		requested = cfg.Players
	}
	if flagPlayers > 0 {
		cfg.Players = flagPlayers
		requested = flagPlayers
	}
	if requested == 0 {
		return 0, nil
	}
	cfg.Normalize()
	return cfg.Players, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	requested, err := seatOverride(&cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg.LogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	rc := cfg.Runtime(width, height)

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q, run 'mindbender list' to see them", gameID)
		}
		rc.Players = requested
	} else {
		var ok bool
		if gameID, ok = registry.ForPlayers(cfg.Players); !ok {
			return fmt.Errorf("no variants registered")
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", cfg.Source)

	back, err := tui.Run(game, rc, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if back {
		return menuLoop(rc, logger)
	}
	return nil
}
