// Package mindbender provides the Mind-Bender nested tic-tac-toe game for the
// terminal platform. The rules live in the core subpackage; this package adds
// the cursor, the variants, logging and rendering.
package mindbender

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	platformcore "github.com/vovakirdan/mindbender/internal/core"
	"github.com/vovakirdan/mindbender/internal/games/mindbender/core"
	"github.com/vovakirdan/mindbender/internal/registry"
)

// Variant IDs.
const (
	VariantDuel = "mindbender"
	VariantTrio = "mindbender_3p"
	VariantQuad = "mindbender_4p"
)

type variant struct {
	id      string
	title   string
	players int
	summary string
}

var variants = []variant{
	{VariantDuel, "Mind-Bender", 2, "Sigma against Integral"},
	{VariantTrio, "Mind-Bender (3 players)", 3, "Sigma, Integral and Alpha"},
	{VariantQuad, "Mind-Bender (4 players)", 4, "all four symbols on one board"},
}

// Package-level logger, replaced by the platform at startup.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by every game instance created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, v := range variants {
		v := v
		registry.Register(registry.Info{
			ID:      v.id,
			Title:   v.title,
			Players: v.players,
			Summary: v.summary,
		}, func() registry.Game {
			return New(v.id)
		})
	}
}

// Game implements registry.Game for one Mind-Bender variant.
type Game struct {
	variant variant
	cfg     platformcore.RuntimeConfig
	match   *core.Match
	matchID uuid.UUID
	log     *log.Logger

	// Cursor in flattened grid coordinates, 0..size*size-1 on both axes
	cursorX int
	cursorY int

	status string
}

// New creates a game for the given variant ID. Unknown IDs fall back to the
// two-player variant.
func New(id string) *Game {
	v := variants[0]
	for _, cand := range variants {
		if cand.id == id {
			v = cand
		}
	}
	return &Game{variant: v}
}

// NewForPlayers creates the variant seating n players (clamped to 2..4).
func NewForPlayers(n int) *Game {
	n = core.ClampPlayers(n)
	for _, v := range variants {
		if v.players == n {
			return &Game{variant: v}
		}
	}
	return New(VariantDuel)
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.title
}

// Reset starts a new match. cfg.Players overrides the variant's seat count.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = cfg

	players := g.variant.players
	if cfg.Players > 0 {
		players = cfg.Players
	}
	size := cfg.BoardSize
	if size <= 0 {
		size = core.DefaultSize
	}

	g.match = core.NewSizedMatch(players, size)
	g.matchID = uuid.New()
	g.log = logger.With("match", g.shortID())
	g.status = ""

	span := g.span()
	g.cursorX = span / 2
	g.cursorY = span / 2

	g.log.Info("match started",
		"variant", g.variant.id,
		"players", len(g.match.Players()),
		"size", size,
	)
}

// span is the number of playable cells along one axis of the flattened grid.
func (g *Game) span() int {
	n := g.match.Size()
	return n * n
}

func (g *Game) shortID() string {
	return g.matchID.String()[:8]
}

// MatchID returns the identifier of the current match.
func (g *Game) MatchID() string {
	return g.matchID.String()
}

// Match exposes the underlying match for read access.
func (g *Game) Match() *core.Match {
	return g.match
}

// Cursor returns the cursor in flattened grid coordinates.
func (g *Game) Cursor() (x, y int) {
	return g.cursorX, g.cursorY
}

// Status returns the message describing the last action.
func (g *Game) Status() string {
	return g.status
}

// Resolve maps flattened grid coordinates to a board and a position in it by
// walking the cells from the root. A converted sub-board resolves to its
// token cell on the root.
func (g *Game) Resolve(gx, gy int) (core.NodeID, core.Pos, bool) {
	n := g.match.Size()
	span := n * n
	if gx < 0 || gy < 0 || gx >= span || gy >= span {
		return core.NoNode, core.Pos{}, false
	}

	tree := g.match.Tree()
	id := tree.Root()
	rootPos := core.P(gy/n, gx/n)
	sub, ok := tree.CellAt(id, rootPos).Board()
	if !ok {
		return id, rootPos, true
	}
	return sub, core.P(gy%n, gx%n), true
}

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	accepted := false

	switch {
	case in.Has(platformcore.ActionRestart):
		if g.match.GameOver() {
			g.Reset(g.cfg)
			accepted = true
		} else {
			g.status = "Finish or resign the match before restarting"
		}
	case in.Has(platformcore.ActionPlace):
		accepted = g.PlaceAt(g.cursorX, g.cursorY) == nil
	case in.Has(platformcore.ActionResign):
		accepted = g.Resign() == nil
	default:
		g.moveCursor(in)
	}

	return platformcore.StepResult{State: g.State(), Accepted: accepted}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	last := g.span() - 1
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursorY = platformcore.Clamp(g.cursorY-1, 0, last)
	case in.Has(platformcore.ActionDown):
		g.cursorY = platformcore.Clamp(g.cursorY+1, 0, last)
	case in.Has(platformcore.ActionLeft):
		g.cursorX = platformcore.Clamp(g.cursorX-1, 0, last)
	case in.Has(platformcore.ActionRight):
		g.cursorX = platformcore.Clamp(g.cursorX+1, 0, last)
	}
}

// Rejection reasons shown in the status line.
var rejectReasons = map[error]string{
	core.ErrGameOver:     "The match is over, press r for a new one",
	core.ErrWrongBoard:   "Play inside the highlighted board",
	core.ErrCellOccupied: "That cell is taken",
	core.ErrOutOfBounds:  "Not a cell",
	core.ErrUnknownBoard: "Not a cell",
}

func rejectReason(err error) string {
	for target, reason := range rejectReasons {
		if errors.Is(err, target) {
			return reason
		}
	}
	return err.Error()
}

// PlaceAt moves the cursor to flattened grid coordinates (gx, gy) and plays
// the current player's token there. A rejected move leaves the match as it
// was and is reported through the status line and the returned error.
func (g *Game) PlaceAt(gx, gy int) error {
	board, pos, ok := g.Resolve(gx, gy)
	if !ok {
		g.status = rejectReason(core.ErrOutOfBounds)
		g.log.Debug("move rejected", "x", gx, "y", gy, "err", core.ErrOutOfBounds)
		return core.ErrOutOfBounds
	}
	g.cursorX, g.cursorY = gx, gy

	if tok, taken := g.match.Tree().CellAt(board, pos).Token(); taken && board == g.match.Tree().Root() {
		g.status = fmt.Sprintf("That board already belongs to %s", tok.Player)
		g.log.Debug("move rejected", "x", gx, "y", gy, "err", core.ErrWrongBoard)
		return core.ErrWrongBoard
	}

	res, err := g.match.SubmitMove(board, pos.Row, pos.Col)
	if err != nil {
		g.status = rejectReason(err)
		g.log.Debug("move rejected", "x", gx, "y", gy, "err", err)
		return err
	}

	g.log.Debug("move",
		"player", res.Move.Player,
		"board", g.boardLabel(res.Move.Board),
		"row", res.Move.Pos.Row,
		"col", res.Move.Pos.Col,
	)
	for _, id := range res.Converted {
		g.log.Info("board won", "board", g.boardLabel(id), "player", g.match.Tree().Winner(id))
	}

	switch {
	case res.Draw:
		g.status = "Draw: no board is left to play"
		g.log.Info("match over", "result", "draw", "moves", g.match.Moves())
	case res.MatchOver:
		g.status = fmt.Sprintf("%s wins the match!", res.Winner)
		g.log.Info("match over", "winner", res.Winner, "moves", g.match.Moves())
	case len(res.Converted) > 0:
		g.status = fmt.Sprintf("%s takes board %s", res.Move.Player, g.boardLabel(res.Converted[0]))
	default:
		g.status = fmt.Sprintf("%s played %s", res.Move.Player, g.boardLabel(res.Move.Board))
	}

	g.followActive(res)
	return nil
}

// followActive moves the cursor into the next active board, keeping the
// local cell of the move just played.
func (g *Game) followActive(res core.MoveResult) {
	if res.NextActive == core.NoNode {
		return
	}
	_, rootPos, ok := g.match.Tree().Parent(res.NextActive)
	if !ok {
		return
	}
	n := g.match.Size()
	g.cursorX = rootPos.Col*n + res.Move.Pos.Col
	g.cursorY = rootPos.Row*n + res.Move.Pos.Row
}

// boardLabel names a sub-board by its root coordinates.
func (g *Game) boardLabel(id core.NodeID) string {
	if _, pos, ok := g.match.Tree().Parent(id); ok {
		return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	}
	return "root"
}

// Resign removes the player to move from the match.
func (g *Game) Resign() error {
	gone, err := g.match.ResignCurrentPlayer()
	if err != nil {
		g.status = rejectReason(err)
		return err
	}

	g.log.Info("player resigned", "player", gone, "remaining", len(g.match.Players()))
	g.status = fmt.Sprintf("%s resigned", gone)
	if g.match.GameOver() {
		g.status = fmt.Sprintf("%s resigned, %s wins the match!", gone, g.match.Winner())
		g.log.Info("match over", "winner", g.match.Winner(), "moves", g.match.Moves())
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Moves:    g.match.Moves(),
		GameOver: g.match.GameOver(),
		Status:   g.status,
	}
	if !st.GameOver {
		st.Turn = g.match.CurrentPlayer().String()
	}
	return st
}

// ASCII returns the plain-text board used for screenshots and the simulator.
func (g *Game) ASCII() string {
	return core.RenderASCII(g.match)
}
