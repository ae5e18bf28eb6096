package mindbender

import (
	platformcore "github.com/vovakirdan/mindbender/internal/core"
	"github.com/vovakirdan/mindbender/internal/games/mindbender/core"
)

// Snapshot captures the match and the UI state around it for tests.
type Snapshot struct {
	core.Snapshot
	Variant string
	MatchID string
	CursorX int
	CursorY int
	Status  string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snapshot: g.match.Snapshot(),
		Variant:  g.variant.id,
		MatchID:  g.matchID.String(),
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		Status:   g.status,
	}
}

// SeatStatus describes one seat of the roster.
type SeatStatus string

const (
	SeatToMove   SeatStatus = "to move"
	SeatWaiting  SeatStatus = "waiting"
	SeatResigned SeatStatus = "resigned"
	SeatWinner   SeatStatus = "winner"
	SeatDrawn    SeatStatus = "draw"
	SeatLost     SeatStatus = "lost"
)

// Seat is one row of the roster panel.
type Seat struct {
	Player core.Player
	Symbol rune
	Color  platformcore.Color
	Boards int // Sub-boards converted to this player's tokens
	Status SeatStatus
}

// Seats lists every player who started the match, in seating order.
func (g *Game) Seats() []Seat {
	snap := g.match.Snapshot()
	seated := make(map[core.Player]bool, len(snap.Players))
	for _, p := range snap.Players {
		seated[p] = true
	}
	boards := make(map[core.Player]int)
	for _, p := range snap.BoardWinners {
		boards[p]++
	}

	seats := make([]Seat, 0, g.startedWith())
	for _, p := range core.AllPlayers[:g.startedWith()] {
		s := Seat{
			Player: p,
			Symbol: g.symbol(p),
			Color:  g.color(p),
			Boards: boards[p],
		}
		switch {
		case !seated[p]:
			s.Status = SeatResigned
		case snap.Phase == core.PhaseGameOver && snap.Draw:
			s.Status = SeatDrawn
		case snap.Phase == core.PhaseGameOver && snap.Winner == p:
			s.Status = SeatWinner
		case snap.Phase == core.PhaseGameOver:
			s.Status = SeatLost
		case snap.Current == p:
			s.Status = SeatToMove
		default:
			s.Status = SeatWaiting
		}
		seats = append(seats, s)
	}
	return seats
}

// startedWith returns the seat count the match began with.
func (g *Game) startedWith() int {
	if g.cfg.Players > 0 {
		return core.ClampPlayers(g.cfg.Players)
	}
	return g.variant.players
}

var defaultColors = map[core.Player]platformcore.Color{
	core.Sigma:    platformcore.ColorRed,
	core.Integral: platformcore.ColorBlue,
	core.Alpha:    platformcore.ColorGreen,
	core.Beta:     platformcore.ColorYellow,
}

// symbol returns the themed glyph of p.
func (g *Game) symbol(p core.Player) rune {
	return g.cfg.Theme.Symbol(p.Index(), p.Glyph())
}

// color returns the themed colour of p.
func (g *Game) color(p core.Player) platformcore.Color {
	return g.cfg.Theme.Color(p.Index(), defaultColors[p])
}
