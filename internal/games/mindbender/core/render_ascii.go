package core

import (
	"fmt"
	"strings"
	"unicode"
)

// RenderASCII creates a plain-text view of the match.
// This is used by the headless simulator and for golden outputs in tests.
//
// Format:
//   - Header: move count, phase, player to move, active board
//   - Grid: '.' empty, ASCII player letter for tokens, a converted
//     sub-board is filled with the lowercase letter of its winner
//   - Sub-boards separated by " | " and "-+-" rules
func RenderASCII(m *Match) string {
	var sb strings.Builder

	sb.WriteString(renderHeader(m))
	sb.WriteString("\n")
	sb.WriteString(RenderGrid(m.Tree()))
	return sb.String()
}

func renderHeader(m *Match) string {
	letters := make([]string, 0, len(m.Players()))
	for _, p := range m.Players() {
		letters = append(letters, string(p.Letter()))
	}
	head := fmt.Sprintf("Moves: %d | Players: %s | ", m.Moves(), strings.Join(letters, " "))

	switch {
	case m.IsDraw():
		return head + "Draw"
	case m.GameOver():
		return head + fmt.Sprintf("Winner: %s (%c)", m.Winner(), m.Winner().Letter())
	}

	active := "any"
	if _, pos, ok := m.Tree().Parent(m.ActiveBoard()); ok {
		active = fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	}
	cur := m.CurrentPlayer()
	return head + fmt.Sprintf("To move: %s (%c) | Active: %s", cur, cur.Letter(), active)
}

// RenderGrid renders the root board and its sub-boards without a header.
func RenderGrid(t *Tree) string {
	var sb strings.Builder
	root := t.Root()
	n := t.Size(root)

	rule := make([]string, n)
	for i := range rule {
		w := n + 2
		if i == 0 || i == n-1 {
			w = n + 1
		}
		rule[i] = strings.Repeat("-", w)
	}

	for br := 0; br < n; br++ {
		if br > 0 {
			sb.WriteString(strings.Join(rule, "+"))
			sb.WriteString("\n")
		}
		for r := 0; r < n; r++ {
			blocks := make([]string, n)
			for bc := 0; bc < n; bc++ {
				blocks[bc] = renderBlockRow(t, t.CellAt(root, P(br, bc)), r, n)
			}
			sb.WriteString(strings.Join(blocks, " | "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderBlockRow renders row r of one root cell.
func renderBlockRow(t *Tree, c Cell, r, n int) string {
	row := make([]rune, n)
	switch c.Kind() {
	case KindBoard:
		id, _ := c.Board()
		for col := 0; col < n; col++ {
			row[col] = cellRune(t.CellAt(id, P(r, col)))
		}
	case KindToken:
		tok, _ := c.Token()
		for col := range row {
			row[col] = unicode.ToLower(tok.Player.Letter())
		}
	default:
		for col := range row {
			row[col] = '.'
		}
	}
	return string(row)
}

func cellRune(c Cell) rune {
	switch c.Kind() {
	case KindToken:
		tok, _ := c.Token()
		return tok.Player.Letter()
	case KindBoard:
		return '#'
	default:
		return '.'
	}
}
