package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mindbender/internal/games/mindbender/core"
)

// subBoard returns the sub-board at root position (row, col).
func subBoard(t *testing.T, tree *core.Tree, row, col int) core.NodeID {
	t.Helper()
	id, ok := tree.CellAt(tree.Root(), core.P(row, col)).Board()
	require.True(t, ok, "root cell (%d,%d) should hold a board", row, col)
	return id
}

// fill places tokens for the given rows of player letters ('S', 'I', 'A',
// 'B', '.' for empty) on board id.
func fill(t *testing.T, tree *core.Tree, id core.NodeID, rows ...string) {
	t.Helper()
	byLetter := map[rune]core.Player{
		'S': core.Sigma, 'I': core.Integral, 'A': core.Alpha, 'B': core.Beta,
	}
	for r, line := range rows {
		for c, ch := range []rune(line) {
			if ch == '.' {
				continue
			}
			require.True(t, tree.PlaceToken(id, core.P(r, c), byLetter[ch]),
				"placing %c at (%d,%d)", ch, r, c)
		}
	}
}

func TestNewTreeStructure(t *testing.T) {
	tree := core.NewTree(3)
	root := tree.Root()

	_, _, hasParent := tree.Parent(root)
	assert.False(t, hasParent, "root must not have a parent")
	assert.Equal(t, 10, tree.Len())
	assert.Equal(t, 2, tree.MaxDepth())

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			id := subBoard(t, tree, row, col)
			parent, pos, ok := tree.Parent(id)
			require.True(t, ok)
			assert.Equal(t, root, parent)
			assert.Equal(t, core.P(row, col), pos)
			assert.Equal(t, 3, tree.Size(id))
			assert.True(t, tree.IsAttached(id))
			assert.True(t, tree.IsPlayable(id))
		}
	}

	assert.Len(t, tree.LeafBoards(), 9)
	assert.False(t, tree.IsLeaf(root))
}

func TestPlaceToken(t *testing.T) {
	tree := core.NewTree(3)
	id := subBoard(t, tree, 0, 0)

	require.True(t, tree.PlaceToken(id, core.P(1, 2), core.Sigma))

	tok, ok := tree.CellAt(id, core.P(1, 2)).Token()
	require.True(t, ok)
	assert.Equal(t, core.Token{Player: core.Sigma, Pos: core.P(1, 2)}, tok)

	// Occupied cell is rejected and left unchanged
	assert.False(t, tree.PlaceToken(id, core.P(1, 2), core.Integral))
	tok, _ = tree.CellAt(id, core.P(1, 2)).Token()
	assert.Equal(t, core.Sigma, tok.Player)
}

func TestPlaceTokenRejectsBadInput(t *testing.T) {
	tree := core.NewTree(3)
	id := subBoard(t, tree, 0, 0)

	tests := []struct {
		name   string
		board  core.NodeID
		pos    core.Pos
		player core.Player
	}{
		{"negative row", id, core.P(-1, 0), core.Sigma},
		{"column past edge", id, core.P(0, 3), core.Sigma},
		{"unknown board", core.NodeID(99), core.P(0, 0), core.Sigma},
		{"no board", core.NoNode, core.P(0, 0), core.Sigma},
		{"no player", id, core.P(0, 0), core.NoPlayer},
		{"nested board cell", tree.Root(), core.P(0, 0), core.Sigma},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tree.PlaceToken(tc.board, tc.pos, tc.player))
		})
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.True(t, tree.CellAt(id, core.P(r, c)).IsEmpty())
		}
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	tree := core.NewTree(3)
	assert.Equal(t, core.KindEmpty, tree.CellAt(tree.Root(), core.P(5, 5)).Kind())
	assert.Equal(t, core.KindEmpty, tree.CellAt(core.NodeID(42), core.P(0, 0)).Kind())
	assert.Equal(t, core.KindBoard, tree.CellAt(tree.Root(), core.P(2, 2)).Kind())
}

func TestEvaluateWinnerLines(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want core.Player
	}{
		{"top row", []string{"SSS", "...", "..."}, core.Sigma},
		{"middle row", []string{"...", "III", "..."}, core.Integral},
		{"bottom row", []string{"...", "...", "AAA"}, core.Alpha},
		{"left column", []string{"B..", "B..", "B.."}, core.Beta},
		{"middle column", []string{".S.", ".S.", ".S."}, core.Sigma},
		{"right column", []string{"..I", "..I", "..I"}, core.Integral},
		{"main diagonal", []string{"A..", ".A.", "..A"}, core.Alpha},
		{"anti diagonal", []string{"..S", ".S.", "S.."}, core.Sigma},
		{"mixed line", []string{"SIS", "...", "..."}, core.NoPlayer},
		{"incomplete line", []string{"SS.", "...", "..."}, core.NoPlayer},
		{"full draw", []string{"SIS", "SII", "ISS"}, core.NoPlayer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := core.NewTree(3)
			id := subBoard(t, tree, 1, 1)
			fill(t, tree, id, tc.rows...)

			assert.Equal(t, tc.want, tree.EvaluateWinner(id))
			assert.Equal(t, tc.want, tree.Winner(id))
		})
	}
}

func TestEvaluateWinnerIgnoresNestedBoards(t *testing.T) {
	tree := core.NewTree(3)
	root := tree.Root()

	// Every root cell holds an unresolved board
	assert.Equal(t, core.NoPlayer, tree.EvaluateWinner(root))

	// Two converted cells plus one nested board in a row is not a win
	tree.ConvertToToken(subBoard(t, tree, 0, 0), core.Sigma)
	tree.ConvertToToken(subBoard(t, tree, 0, 1), core.Sigma)
	assert.Equal(t, core.NoPlayer, tree.EvaluateWinner(root))

	tree.ConvertToToken(subBoard(t, tree, 0, 2), core.Sigma)
	assert.Equal(t, core.Sigma, tree.EvaluateWinner(root))
}

func TestEvaluateWinnerIsIdempotent(t *testing.T) {
	tree := core.NewTree(3)
	id := subBoard(t, tree, 0, 0)
	fill(t, tree, id, "SSS", "...", "...")

	first := tree.EvaluateWinner(id)
	second := tree.EvaluateWinner(id)
	assert.Equal(t, core.Sigma, first)
	assert.Equal(t, first, second)

	// A later line for another player never overwrites a settled winner
	fill(t, tree, id, "...", "III", "...")
	assert.Equal(t, core.Sigma, tree.EvaluateWinner(id))
}

func TestWinningLineHasNoEmptyCells(t *testing.T) {
	tree := core.NewTree(3)
	id := subBoard(t, tree, 2, 0)
	fill(t, tree, id, "I..", "SI.", "S.I")

	require.Equal(t, core.Integral, tree.EvaluateWinner(id))
	for i := 0; i < 3; i++ {
		tok, ok := tree.CellAt(id, core.P(i, i)).Token()
		require.True(t, ok, "diagonal cell (%d,%d) must hold a token", i, i)
		assert.Equal(t, core.Integral, tok.Player)
	}
}

func TestEvaluateFullness(t *testing.T) {
	tree := core.NewTree(3)
	id := subBoard(t, tree, 0, 2)

	assert.False(t, tree.EvaluateFullness(id))
	fill(t, tree, id, "SIS", "SII", "IS.")
	assert.False(t, tree.IsFull(id))

	require.True(t, tree.PlaceToken(id, core.P(2, 2), core.Sigma))
	assert.True(t, tree.IsFull(id))
	assert.Equal(t, core.NoPlayer, tree.Winner(id), "full board without a line is a draw")
	assert.False(t, tree.IsPlayable(id))

	// The root is full of nested boards from the start
	assert.True(t, tree.EvaluateFullness(tree.Root()))
}

func TestConvertToTokenReplacesOnlyParentCell(t *testing.T) {
	tree := core.NewTree(3)
	root := tree.Root()
	id := subBoard(t, tree, 1, 2)
	fill(t, tree, id, "AAA", "...", "...")
	require.Equal(t, core.Alpha, tree.EvaluateWinner(id))

	before := make(map[core.Pos]core.Cell)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			before[core.P(r, c)] = tree.CellAt(root, core.P(r, c))
		}
	}

	tree.ConvertToToken(id, core.Alpha)

	for pos, cell := range before {
		got := tree.CellAt(root, pos)
		if pos == core.P(1, 2) {
			tok, ok := got.Token()
			require.True(t, ok)
			assert.Equal(t, core.Token{Player: core.Alpha, Pos: core.P(1, 2)}, tok)
			continue
		}
		assert.Equal(t, cell, got, "cell %v must be untouched", pos)
	}

	assert.False(t, tree.IsAttached(id))
	assert.False(t, tree.IsPlayable(id))
	assert.Len(t, tree.LeafBoards(), 8)
}

func TestConvertRootIsNoop(t *testing.T) {
	tree := core.NewTree(3)
	root := tree.Root()

	tree.ConvertToToken(root, core.Sigma)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, core.KindBoard, tree.CellAt(root, core.P(r, c)).Kind())
		}
	}
}

func TestLeafBoardsAfterAllConverted(t *testing.T) {
	tree := core.NewTree(3)
	root := tree.Root()

	players := []core.Player{core.Sigma, core.Integral}
	i := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			tree.ConvertToToken(subBoard(t, tree, r, c), players[i%2])
			i++
		}
	}

	assert.Equal(t, 1, tree.MaxDepth())
	assert.Equal(t, []core.NodeID{root}, tree.LeafBoards())
	assert.False(t, tree.IsPlayable(root), "a root full of tokens accepts no move")
}

func TestSizeGenericBoard(t *testing.T) {
	tree := core.NewTree(4)
	id := subBoard(t, tree, 3, 3)
	fill(t, tree, id, "...S", "..S.", ".S..", "S...")

	assert.Equal(t, 17, tree.Len())
	assert.Equal(t, core.Sigma, tree.EvaluateWinner(id))
}
