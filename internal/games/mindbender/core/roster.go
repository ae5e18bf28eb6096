package core

// ClampPlayers restricts a requested player count to the supported range.
func ClampPlayers(n int) int {
	return min(max(n, MinPlayers), MaxPlayers)
}

// Roster is the ordered list of players still in the match plus whose turn
// it is.
type Roster struct {
	players []Player
	turn    int
}

// NewRoster seats the first n players of AllPlayers, n clamped to 2..4.
func NewRoster(n int) Roster {
	n = ClampPlayers(n)
	players := make([]Player, n)
	copy(players, AllPlayers[:n])
	return Roster{players: players}
}

// Current returns the player to move.
func (r *Roster) Current() Player {
	if len(r.players) == 0 {
		return NoPlayer
	}
	return r.players[r.turn]
}

// Turn returns the index of the player to move.
func (r *Roster) Turn() int {
	return r.turn
}

// Len returns the number of players still seated.
func (r *Roster) Len() int {
	return len(r.players)
}

// Players returns a copy of the seated players in turn order.
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

// Contains reports whether p is still seated.
func (r *Roster) Contains(p Player) bool {
	for _, q := range r.players {
		if q == p {
			return true
		}
	}
	return false
}

// Advance passes the turn to the next player, wrapping around.
func (r *Roster) Advance() {
	if len(r.players) == 0 {
		return
	}
	r.turn = (r.turn + 1) % len(r.players)
}

// RemoveCurrent unseats the player to move and returns them. The turn index
// stays put so the following player moves next, wrapping to 0 past the end.
func (r *Roster) RemoveCurrent() Player {
	if len(r.players) == 0 {
		return NoPlayer
	}
	gone := r.players[r.turn]
	r.players = append(r.players[:r.turn], r.players[r.turn+1:]...)
	if r.turn >= len(r.players) {
		r.turn = 0
	}
	return gone
}
