package core

import "errors"

// Errors returned for rejected moves. A rejected move never changes the match.
var (
	ErrGameOver     = errors.New("match is over")
	ErrUnknownBoard = errors.New("unknown board")
	ErrWrongBoard   = errors.New("move must be played on the active board")
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
)

// Phase is the state of the match controller.
type Phase uint8

const (
	// PhaseAwaitingFirstMove allows a move on any leaf board. The match
	// starts here and returns here whenever the active board is lifted.
	PhaseAwaitingFirstMove Phase = iota
	// PhaseAwaitingActiveBoard allows moves only on the active board.
	PhaseAwaitingActiveBoard
	// PhaseGameOver rejects every move.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingFirstMove:
		return "AwaitingFirstMove"
	case PhaseAwaitingActiveBoard:
		return "AwaitingMoveInActiveBoard"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Move is an accepted placement.
type Move struct {
	Board  NodeID
	Pos    Pos
	Player Player
}

// MoveResult describes everything an accepted move changed.
type MoveResult struct {
	Move        Move
	BoardWinner Player   // winner of the board the move landed on, if it was won
	Converted   []NodeID // boards turned into tokens, innermost first
	NextActive  NodeID   // NoNode when any leaf board may be played
	MatchOver   bool
	Winner      Player
	Draw        bool
}

// Match runs a nested tic-tac-toe game: the root board, the seated players
// and the active-board constraint.
type Match struct {
	size    int
	tree    *Tree
	roster  Roster
	active  NodeID
	over    bool
	winner  Player
	draw    bool
	moves   int
	last    Move
	hasLast bool
}

// NewMatch starts a standard 3x3-of-3x3 match for the given number of players.
func NewMatch(players int) *Match {
	return NewSizedMatch(players, DefaultSize)
}

// NewSizedMatch starts a match whose boards have the given side length.
func NewSizedMatch(players, size int) *Match {
	if size < 1 {
		size = DefaultSize
	}
	m := &Match{size: size}
	m.Reset(players)
	return m
}

// Reset discards the whole match and starts a new one. The player count is
// clamped to 2..4.
func (m *Match) Reset(players int) {
	*m = Match{
		size:   m.size,
		tree:   NewTree(m.size),
		roster: NewRoster(players),
		active: NoNode,
		winner: NoPlayer,
		last:   Move{Board: NoNode},
	}
}

// Tree exposes the board arena for read access by renderers.
func (m *Match) Tree() *Tree {
	return m.tree
}

// Size returns the side length of every board in the match.
func (m *Match) Size() int {
	return m.size
}

// CurrentPlayer returns the player to move.
func (m *Match) CurrentPlayer() Player {
	return m.roster.Current()
}

// Players returns the seated players in turn order.
func (m *Match) Players() []Player {
	return m.roster.Players()
}

// TurnIndex returns the roster index of the player to move.
func (m *Match) TurnIndex() int {
	return m.roster.Turn()
}

// ActiveBoard returns the board the next move is constrained to, or NoNode
// when any leaf board is allowed.
func (m *Match) ActiveBoard() NodeID {
	return m.active
}

// GameOver reports whether the match has ended.
func (m *Match) GameOver() bool {
	return m.over
}

// Winner returns the match winner, or NoPlayer if there is none (yet).
func (m *Match) Winner() Player {
	return m.winner
}

// IsDraw reports whether the match ended with no legal move left and no winner.
func (m *Match) IsDraw() bool {
	return m.draw
}

// Moves returns the number of accepted moves.
func (m *Match) Moves() int {
	return m.moves
}

// LastMove returns the most recent accepted move.
func (m *Match) LastMove() (Move, bool) {
	return m.last, m.hasLast
}

// Phase returns the current controller state.
func (m *Match) Phase() Phase {
	switch {
	case m.over:
		return PhaseGameOver
	case m.active == NoNode:
		return PhaseAwaitingFirstMove
	default:
		return PhaseAwaitingActiveBoard
	}
}

// BoardAt returns the sub-board at root position p, if it has not been
// converted yet.
func (m *Match) BoardAt(p Pos) (NodeID, bool) {
	return m.tree.CellAt(m.tree.Root(), p).Board()
}

// Allowed reports whether a move on board would pass the active-board check.
func (m *Match) Allowed(board NodeID) bool {
	if m.over || !m.tree.Valid(board) {
		return false
	}
	if m.active == NoNode {
		return m.tree.IsLeaf(board)
	}
	return board == m.active
}

// SubmitMove places the current player's token at (row, col) of board.
// Illegal moves return an error and leave the match untouched.
func (m *Match) SubmitMove(board NodeID, row, col int) (MoveResult, error) {
	if m.over {
		return MoveResult{}, ErrGameOver
	}
	if !m.tree.Valid(board) {
		return MoveResult{}, ErrUnknownBoard
	}
	if !m.Allowed(board) {
		return MoveResult{}, ErrWrongBoard
	}
	pos := P(row, col)
	if !m.tree.InBounds(board, pos) {
		return MoveResult{}, ErrOutOfBounds
	}
	player := m.roster.Current()
	if !m.tree.PlaceToken(board, pos, player) {
		return MoveResult{}, ErrCellOccupied
	}

	move := Move{Board: board, Pos: pos, Player: player}
	m.moves++
	m.last = move
	m.hasLast = true

	result := MoveResult{Move: move, NextActive: NoNode, Winner: NoPlayer}
	result.BoardWinner, result.Converted = m.resolveWins(board)

	if w := m.tree.EvaluateWinner(m.tree.Root()); w != NoPlayer {
		m.over = true
		m.winner = w
		result.MatchOver = true
		result.Winner = w
		return result, nil
	}

	m.active = m.nextActive(board, pos)
	result.NextActive = m.active

	if m.active == NoNode && !m.anyPlayable() {
		m.over = true
		m.draw = true
		result.MatchOver = true
		result.Draw = true
		return result, nil
	}

	m.roster.Advance()
	return result, nil
}

// resolveWins converts board into a token on its parent if it was just won,
// then repeats for each parent that the conversion completed. The root is
// never converted.
func (m *Match) resolveWins(board NodeID) (Player, []NodeID) {
	boardWinner := m.tree.EvaluateWinner(board)
	var converted []NodeID
	id := board
	for {
		w := m.tree.EvaluateWinner(id)
		if w == NoPlayer {
			break
		}
		parent, _, ok := m.tree.Parent(id)
		if !ok {
			break
		}
		m.tree.ConvertToToken(id, w)
		converted = append(converted, id)
		id = parent
	}
	return boardWinner, converted
}

// nextActive mirrors pos into the parent of board. If the mirrored cell is
// not a playable board, the parent's cells are scanned row-major with
// wraparound from pos. NoNode means no playable board is left.
func (m *Match) nextActive(board NodeID, pos Pos) NodeID {
	parent, _, ok := m.tree.Parent(board)
	if !ok {
		return NoNode
	}
	n := m.tree.Size(parent)
	if !m.tree.InBounds(parent, pos) {
		return NoNode
	}
	start := pos.Row*n + pos.Col
	for offset := 0; offset < n*n; offset++ {
		i := (start + offset) % (n * n)
		if id, isBoard := m.tree.CellAt(parent, P(i/n, i%n)).Board(); isBoard && m.tree.IsPlayable(id) {
			return id
		}
	}
	return NoNode
}

// anyPlayable reports whether some leaf board still accepts a token.
func (m *Match) anyPlayable() bool {
	for _, id := range m.tree.LeafBoards() {
		if m.tree.IsPlayable(id) {
			return true
		}
	}
	return false
}

// ResignCurrentPlayer removes the player to move. When one player remains
// they win; otherwise play continues with the active board unchanged.
func (m *Match) ResignCurrentPlayer() (Player, error) {
	if m.over {
		return NoPlayer, ErrGameOver
	}
	gone := m.roster.RemoveCurrent()
	if m.roster.Len() == 1 {
		m.over = true
		m.winner = m.roster.Current()
	}
	return gone, nil
}

// Snapshot captures the match state for tests and display.
type Snapshot struct {
	Phase        Phase
	Players      []Player
	Current      Player
	TurnIndex    int
	ActiveBoard  NodeID
	ActivePos    Pos // root position of the active board, valid when ActiveBoard != NoNode
	Winner       Player
	Draw         bool
	Moves        int
	LastMove     Move
	HasLastMove  bool
	BoardWinners map[Pos]Player // root positions already converted into tokens
}

// Snapshot returns the current match snapshot.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        m.Phase(),
		Players:      m.roster.Players(),
		Current:      m.roster.Current(),
		TurnIndex:    m.roster.Turn(),
		ActiveBoard:  m.active,
		Winner:       m.winner,
		Draw:         m.draw,
		Moves:        m.moves,
		LastMove:     m.last,
		HasLastMove:  m.hasLast,
		BoardWinners: make(map[Pos]Player),
	}
	if _, pos, ok := m.tree.Parent(m.active); ok {
		s.ActivePos = pos
	}
	root := m.tree.Root()
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			if tok, ok := m.tree.CellAt(root, P(row, col)).Token(); ok {
				s.BoardWinners[P(row, col)] = tok.Player
			}
		}
	}
	return s
}
