// Package core provides the board and match logic for Mind-Bender, a nested
// tic-tac-toe variant for 2 to 4 players.
// This package is UI-agnostic and deterministic.
package core

// Player identifies a participant. The zero value means "no player".
type Player uint8

const (
	NoPlayer Player = iota
	Sigma
	Integral
	Alpha
	Beta
)

// AllPlayers lists players in seating order.
var AllPlayers = []Player{Sigma, Integral, Alpha, Beta}

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// String returns the player's name.
func (p Player) String() string {
	switch p {
	case Sigma:
		return "Sigma"
	case Integral:
		return "Integral"
	case Alpha:
		return "Alpha"
	case Beta:
		return "Beta"
	default:
		return "None"
	}
}

// Glyph returns the symbol drawn for the player's tokens.
func (p Player) Glyph() rune {
	switch p {
	case Sigma:
		return 'Σ'
	case Integral:
		return 'I'
	case Alpha:
		return 'α'
	case Beta:
		return 'β'
	default:
		return ' '
	}
}

// Letter returns a plain ASCII letter for the player.
func (p Player) Letter() rune {
	switch p {
	case Sigma:
		return 'S'
	case Integral:
		return 'I'
	case Alpha:
		return 'A'
	case Beta:
		return 'B'
	default:
		return '.'
	}
}

// Index returns the player's 0-based seat, or -1 for NoPlayer.
func (p Player) Index() int {
	if p == NoPlayer || int(p) > len(AllPlayers) {
		return -1
	}
	return int(p) - 1
}

// Pos is a (row, column) position inside a single board.
type Pos struct {
	Row int
	Col int
}

// P is a shorthand constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Token is a placed mark. Tokens are never mutated after creation.
type Token struct {
	Player Player
	Pos    Pos
}

// NodeID addresses a board inside a Tree.
type NodeID int

// NoNode is the absent board reference.
const NoNode NodeID = -1

// CellKind tags the content of a cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindToken
	KindBoard
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindToken:
		return "Token"
	case KindBoard:
		return "Board"
	default:
		return "Unknown"
	}
}

// Cell holds exactly one of: nothing, a Token, or a nested board.
// Build cells with EmptyCell, TokenCell or BoardCell and switch on Kind.
type Cell struct {
	kind  CellKind
	token Token
	board NodeID
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{kind: KindEmpty, board: NoNode}
}

// TokenCell returns a cell holding t.
func TokenCell(t Token) Cell {
	return Cell{kind: KindToken, token: t, board: NoNode}
}

// BoardCell returns a cell holding the nested board id.
func BoardCell(id NodeID) Cell {
	return Cell{kind: KindBoard, board: id}
}

// Kind returns which variant the cell holds.
func (c Cell) Kind() CellKind {
	return c.kind
}

// Token returns the token and true if the cell holds one.
func (c Cell) Token() (Token, bool) {
	return c.token, c.kind == KindToken
}

// Board returns the nested board and true if the cell holds one.
func (c Cell) Board() (NodeID, bool) {
	if c.kind != KindBoard {
		return NoNode, false
	}
	return c.board, true
}

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty
}
