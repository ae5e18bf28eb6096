package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mindbender/internal/games/mindbender"
)

var (
	flagSimPlayers int
	flagSimSize    int
	flagMoves      string
	flagStrict     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play scripted moves without the TUI",
	Long: `Plays a list of moves headlessly and prints the final board.

Moves are separated by whitespace. Each is "row,col" in the flattened grid
(0 to size*size-1 on both axes) or "resign" for the player to move.
Text after '#' is ignored. Use --moves - to read moves from stdin.

Rejected moves are reported and skipped, or end the run with --strict.
Logs go to stderr.

Examples:
  mindbender simulate --moves "4,4 4,3 3,1"
  mindbender simulate --players 3 --moves - < game.txt
  mindbender simulate --moves "0,0 resign" --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimPlayers, "players", 0, "Number of players (2-4), default from config")
	simulateCmd.Flags().IntVar(&flagSimSize, "board-size", 0, "Board side length (3-5), default from config")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", `Moves to play, or "-" for stdin`)
	simulateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail on the first rejected move")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSimPlayers > 0 {
		cfg.Players = flagSimPlayers
	}
	if flagSimSize > 0 {
		cfg.BoardSize = flagSimSize
	}
	cfg.Normalize()

	logger, closeLog, err := setupLogging(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var src io.Reader = strings.NewReader(flagMoves)
	if flagMoves == "-" {
		src = cmd.InOrStdin()
	}
	moves, err := mindbender.ParseScript(src)
	if err != nil {
		return err
	}

	game := mindbender.NewForPlayers(cfg.Players)
	rc := cfg.Runtime(0, 0)
	rc.Players = cfg.Players
	game.Reset(rc)
	logger.Debug("simulating", "moves", len(moves), "match", game.MatchID())

	out := cmd.OutOrStdout()
	if flagStrict {
		for i, mv := range moves {
			if rejected := game.Play(moves[i : i+1]); len(rejected) > 0 {
				fmt.Fprint(out, game.ASCII())
				return fmt.Errorf("move %d (%s) rejected: %s", i+1, mv, rejected[0].Reason)
			}
		}
	} else {
		for _, r := range game.Play(moves) {
			fmt.Fprintf(out, "move %d (%s) rejected: %s\n", r.Index+1, r.Move, r.Reason)
		}
	}

	fmt.Fprint(out, game.ASCII())
	fmt.Fprintln(out, "Result:", game.Result())
	return nil
}
