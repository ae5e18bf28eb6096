package core

// DefaultSize is the side length of every board in a standard match.
const DefaultSize = 3

// node is one board in the arena. Cells are stored in row-major order.
type node struct {
	size      int
	cells     []Cell
	winner    Player
	full      bool
	parent    NodeID
	parentPos Pos
}

// Tree is an arena of boards. The root board holds sub-boards, each sub-board
// holds tokens. The arena owns every board; parent links are plain indices.
type Tree struct {
	nodes []node
	root  NodeID
}

// NewTree builds a root board of the given size whose cells are all fresh
// sub-boards of the same size.
func NewTree(size int) *Tree {
	if size < 1 {
		size = DefaultSize
	}
	t := &Tree{}
	t.root = t.newNode(size, NoNode, Pos{})
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			child := t.newNode(size, t.root, P(row, col))
			t.nodes[t.root].cells[t.index(t.root, P(row, col))] = BoardCell(child)
		}
	}
	return t
}

func (t *Tree) newNode(size int, parent NodeID, pos Pos) NodeID {
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = EmptyCell()
	}
	t.nodes = append(t.nodes, node{
		size:      size,
		cells:     cells,
		parent:    parent,
		parentPos: pos,
	})
	return NodeID(len(t.nodes) - 1)
}

// index converts a position to a flat cell index.
func (t *Tree) index(id NodeID, p Pos) int {
	return p.Row*t.nodes[id].size + p.Col
}

// Valid reports whether id refers to a board in this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// InBounds reports whether p lies inside board id.
func (t *Tree) InBounds(id NodeID, p Pos) bool {
	if !t.Valid(id) {
		return false
	}
	n := t.nodes[id].size
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

// Root returns the root board.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of boards ever created, converted ones included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Size returns the side length of board id, or 0 for an unknown id.
func (t *Tree) Size(id NodeID) int {
	if !t.Valid(id) {
		return 0
	}
	return t.nodes[id].size
}

// Winner returns the settled winner of board id, or NoPlayer.
func (t *Tree) Winner(id NodeID) Player {
	if !t.Valid(id) {
		return NoPlayer
	}
	return t.nodes[id].winner
}

// IsFull returns the fullness recorded at the last placement.
func (t *Tree) IsFull(id NodeID) bool {
	if !t.Valid(id) {
		return false
	}
	return t.nodes[id].full
}

// Parent returns the owning board and this board's position in it.
// ok is false for the root.
func (t *Tree) Parent(id NodeID) (parent NodeID, pos Pos, ok bool) {
	if !t.Valid(id) || t.nodes[id].parent == NoNode {
		return NoNode, Pos{}, false
	}
	n := t.nodes[id]
	return n.parent, n.parentPos, true
}

// CellAt returns the content of board id at p.
// Returns an empty cell for unknown boards or out-of-bounds positions.
func (t *Tree) CellAt(id NodeID, p Pos) Cell {
	if !t.InBounds(id, p) {
		return EmptyCell()
	}
	return t.nodes[id].cells[t.index(id, p)]
}

// PlaceToken stores a token for player at p if that cell is empty.
// On success the board's winner and fullness are recomputed.
func (t *Tree) PlaceToken(id NodeID, p Pos, player Player) bool {
	if player == NoPlayer || !t.InBounds(id, p) {
		return false
	}
	i := t.index(id, p)
	if !t.nodes[id].cells[i].IsEmpty() {
		return false
	}
	t.nodes[id].cells[i] = TokenCell(Token{Player: player, Pos: p})
	t.EvaluateWinner(id)
	t.EvaluateFullness(id)
	return true
}

// EvaluateWinner returns the winner of board id, scanning rows, columns and
// both diagonals if none is settled yet. A line wins only when every cell on
// it holds a token of the same player. Once set the winner never changes.
func (t *Tree) EvaluateWinner(id NodeID) Player {
	if !t.Valid(id) {
		return NoPlayer
	}
	if w := t.nodes[id].winner; w != NoPlayer {
		return w
	}

	for _, line := range t.lines(id) {
		if w := t.lineOwner(id, line); w != NoPlayer {
			t.nodes[id].winner = w
			return w
		}
	}
	return NoPlayer
}

// lines returns every winning line of board id: rows, columns, the main
// diagonal and the anti-diagonal, in that order.
func (t *Tree) lines(id NodeID) [][]Pos {
	n := t.nodes[id].size
	lines := make([][]Pos, 0, 2*n+2)
	for row := 0; row < n; row++ {
		line := make([]Pos, n)
		for col := 0; col < n; col++ {
			line[col] = P(row, col)
		}
		lines = append(lines, line)
	}
	for col := 0; col < n; col++ {
		line := make([]Pos, n)
		for row := 0; row < n; row++ {
			line[row] = P(row, col)
		}
		lines = append(lines, line)
	}
	diag := make([]Pos, n)
	anti := make([]Pos, n)
	for i := 0; i < n; i++ {
		diag[i] = P(i, i)
		anti[i] = P(i, n-1-i)
	}
	return append(lines, diag, anti)
}

// lineOwner returns the player owning every cell of line, or NoPlayer.
func (t *Tree) lineOwner(id NodeID, line []Pos) Player {
	owner := NoPlayer
	for _, p := range line {
		tok, ok := t.CellAt(id, p).Token()
		if !ok {
			return NoPlayer
		}
		if owner == NoPlayer {
			owner = tok.Player
		} else if tok.Player != owner {
			return NoPlayer
		}
	}
	return owner
}

// EvaluateFullness recomputes and returns whether every cell of board id is
// occupied, by a token or by a nested board whether resolved or not.
func (t *Tree) EvaluateFullness(id NodeID) bool {
	if !t.Valid(id) {
		return false
	}
	full := !t.hasEmpty(id)
	t.nodes[id].full = full
	return full
}

func (t *Tree) hasEmpty(id NodeID) bool {
	for _, c := range t.nodes[id].cells {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

// ConvertToToken replaces this board's slot in its parent with a token for
// player. Does nothing for the root.
func (t *Tree) ConvertToToken(id NodeID, player Player) {
	parent, pos, ok := t.Parent(id)
	if !ok || player == NoPlayer {
		return
	}
	t.nodes[parent].cells[t.index(parent, pos)] = TokenCell(Token{Player: player, Pos: pos})
	t.EvaluateFullness(parent)
}

// IsAttached reports whether board id is still reachable from the root,
// i.e. it is the root or its parent's cell still holds it.
func (t *Tree) IsAttached(id NodeID) bool {
	if !t.Valid(id) {
		return false
	}
	for id != t.root {
		parent, pos, ok := t.Parent(id)
		if !ok {
			return false
		}
		if child, isBoard := t.CellAt(parent, pos).Board(); !isBoard || child != id {
			return false
		}
		id = parent
	}
	return true
}

// Children returns the boards nested directly in board id, row-major.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}
	var out []NodeID
	for _, c := range t.nodes[id].cells {
		if child, ok := c.Board(); ok {
			out = append(out, child)
		}
	}
	return out
}

// MaxDepth returns the number of board levels currently reachable from the
// root. A root with no nested boards has depth 1.
func (t *Tree) MaxDepth() int {
	var walk func(id NodeID) int
	walk = func(id NodeID) int {
		deepest := 0
		for _, child := range t.Children(id) {
			deepest = max(deepest, walk(child))
		}
		return deepest + 1
	}
	return walk(t.root)
}

// LeafBoards returns every attached board at the deepest level that holds no
// nested boards, in row-major order. The scan runs on each call because
// conversions change which boards are deepest.
func (t *Tree) LeafBoards() []NodeID {
	target := t.MaxDepth()
	var out []NodeID
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		children := t.Children(id)
		if len(children) == 0 {
			if depth == target {
				out = append(out, id)
			}
			return
		}
		for _, child := range children {
			walk(child, depth+1)
		}
	}
	walk(t.root, 1)
	return out
}

// IsLeaf reports whether id is one of the current leaf boards.
func (t *Tree) IsLeaf(id NodeID) bool {
	for _, leaf := range t.LeafBoards() {
		if leaf == id {
			return true
		}
	}
	return false
}

// IsPlayable reports whether a token can still be placed on board id:
// it is attached, holds no nested boards, has no winner and is not full.
func (t *Tree) IsPlayable(id NodeID) bool {
	if !t.IsAttached(id) || len(t.Children(id)) > 0 {
		return false
	}
	return t.nodes[id].winner == NoPlayer && t.hasEmpty(id)
}
