package mindbender

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/mindbender/internal/core"
	"github.com/vovakirdan/mindbender/internal/games/mindbender/core"
)

const (
	hudAbove = 2 // Title and turn lines
	hudBelow = 2 // Status and roster lines
)

// layout positions the flattened grid on the screen. Each sub-board is
// drawn as " a b c " between box-drawing separators.
type layout struct {
	n      int // Board size
	blockW int // Inner width of one sub-board
	x0, y0 int // Top-left corner of the outer frame
	w, h   int // Outer frame size
}

func newLayout(n, screenW int) layout {
	blockW := 2*n + 1
	w := n*blockW + n + 1
	h := n*n + n + 1
	return layout{
		n:      n,
		blockW: blockW,
		x0:     max((screenW-w)/2, 0),
		y0:     hudAbove,
		w:      w,
		h:      h,
	}
}

// cellXY returns the screen position of flattened grid cell (gx, gy).
func (l layout) cellXY(gx, gy int) (int, int) {
	bc, c := gx/l.n, gx%l.n
	br, r := gy/l.n, gy%l.n
	x := l.x0 + bc*(l.blockW+1) + 2 + c*2
	y := l.y0 + br*(l.n+1) + 1 + r
	return x, y
}

// blockFrame returns the rectangle of a sub-board including its separators.
func (l layout) blockFrame(br, bc int) platformcore.Rect {
	return platformcore.NewRect(l.x0+bc*(l.blockW+1), l.y0+br*(l.n+1), l.blockW+2, l.n+2)
}

// MinScreenSize returns the smallest screen that fits a board of size n.
func MinScreenSize(n int) (w, h int) {
	l := newLayout(n, 0)
	return max(l.w, 44), hudAbove + l.h + hudBelow
}

// Render draws the match to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	n := g.match.Size()
	minW, minH := MinScreenSize(n)
	if dst.Width() < minW || dst.Height() < minH {
		g.renderTooSmall(dst, minW, minH)
		return
	}

	l := newLayout(n, dst.Width())
	g.renderHUD(dst, l)
	g.renderGrid(dst, l)
	g.renderHighlight(dst, l)
	g.renderCells(dst, l)
	g.renderFooter(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

type segment struct {
	text  string
	color platformcore.Color
}

// drawCentered writes coloured segments as one line centered at y.
func drawCentered(dst *platformcore.Screen, y int, segs ...segment) {
	total := 0
	for _, s := range segs {
		total += utf8.RuneCountInString(s.text)
	}
	x := max((dst.Width()-total)/2, 0)
	for _, s := range segs {
		dst.DrawTextColor(x, y, s.text, s.color)
		x += utf8.RuneCountInString(s.text)
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen, l layout) {
	drawCentered(dst, 0,
		segment{text: g.Title(), color: platformcore.ColorBrightWhite},
		segment{text: "  match " + g.shortID(), color: platformcore.ColorGray},
	)

	m := g.match
	switch {
	case m.IsDraw():
		drawCentered(dst, 1, segment{text: "Draw: no board is left to play", color: platformcore.ColorWhite})
	case m.GameOver():
		w := m.Winner()
		drawCentered(dst, 1,
			segment{text: string(g.symbol(w)) + " " + w.String(), color: g.color(w)},
			segment{text: " wins the match!  Press r to play again"},
		)
	default:
		p := m.CurrentPlayer()
		where := "any board"
		if _, pos, ok := m.Tree().Parent(m.ActiveBoard()); ok {
			where = fmt.Sprintf("board (%d,%d)", pos.Row, pos.Col)
		}
		drawCentered(dst, 1,
			segment{text: string(g.symbol(p)) + " " + p.String(), color: g.color(p)},
			segment{text: " to move, " + where},
		)
	}
}

// junction returns the box-drawing rune where separator row i meets
// separator column j.
func junction(i, j, n int) rune {
	switch {
	case i == 0 && j == 0:
		return '┌'
	case i == 0 && j == n:
		return '┐'
	case i == n && j == 0:
		return '└'
	case i == n && j == n:
		return '┘'
	case i == 0:
		return '┬'
	case i == n:
		return '┴'
	case j == 0:
		return '├'
	case j == n:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderGrid(dst *platformcore.Screen, l layout) {
	for i := 0; i <= l.n; i++ {
		dst.DrawHLine(l.x0, l.y0+i*(l.n+1), l.w, '─')
	}
	for j := 0; j <= l.n; j++ {
		dst.DrawVLine(l.x0+j*(l.blockW+1), l.y0, l.h, '│')
	}
	for i := 0; i <= l.n; i++ {
		for j := 0; j <= l.n; j++ {
			dst.Set(l.x0+j*(l.blockW+1), l.y0+i*(l.n+1), junction(i, j, l.n))
		}
	}
	dst.ColorRect(platformcore.NewRect(l.x0, l.y0, l.w, l.h), platformcore.ColorGray)
}

// renderHighlight colours the frame of the active board. With no active
// board every playable board is framed.
func (g *Game) renderHighlight(dst *platformcore.Screen, l layout) {
	if g.match.GameOver() {
		return
	}
	tree := g.match.Tree()
	hl := g.cfg.Theme.Highlight
	if hl == platformcore.ColorDefault {
		hl = platformcore.ColorBrightCyan
	}

	frame := func(id core.NodeID) {
		_, pos, ok := tree.Parent(id)
		if !ok {
			return
		}
		r := l.blockFrame(pos.Row, pos.Col)
		dst.ColorRect(platformcore.NewRect(r.X, r.Y, r.W, 1), hl)
		dst.ColorRect(platformcore.NewRect(r.X, r.Bottom()-1, r.W, 1), hl)
		dst.ColorRect(platformcore.NewRect(r.X, r.Y, 1, r.H), hl)
		dst.ColorRect(platformcore.NewRect(r.Right()-1, r.Y, 1, r.H), hl)
	}

	if active := g.match.ActiveBoard(); active != core.NoNode {
		frame(active)
		return
	}
	for _, id := range tree.LeafBoards() {
		if tree.IsPlayable(id) {
			frame(id)
		}
	}
}

func (g *Game) renderCells(dst *platformcore.Screen, l layout) {
	tree := g.match.Tree()
	last, hasLast := g.match.LastMove()
	span := l.n * l.n

	for gy := 0; gy < span; gy++ {
		for gx := 0; gx < span; gx++ {
			x, y := l.cellXY(gx, gy)
			board, pos, _ := g.Resolve(gx, gy)
			cell := tree.CellAt(board, pos)

			switch cell.Kind() {
			case core.KindToken:
				tok, _ := cell.Token()
				converted := board == tree.Root()
				bold := converted || (hasLast && last.Board == board && last.Pos == pos)
				dst.SetCell(x, y, platformcore.Cell{
					Rune:  g.symbol(tok.Player),
					Color: g.color(tok.Player),
					Bold:  bold,
				})
			default:
				dst.SetCell(x, y, platformcore.Cell{Rune: '·', Color: platformcore.ColorGray})
			}
		}
	}

	if !g.match.GameOver() {
		x, y := l.cellXY(g.cursorX, g.cursorY)
		dst.SetReverse(x, y, true)
		dst.SetCell(x-1, y, platformcore.Cell{Rune: '[', Color: platformcore.ColorBrightWhite})
		dst.SetCell(x+1, y, platformcore.Cell{Rune: ']', Color: platformcore.ColorBrightWhite})
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen, l layout) {
	y := l.y0 + l.h
	if g.status != "" {
		drawCentered(dst, y, segment{text: g.status, color: platformcore.ColorWhite})
	}

	var segs []segment
	for i, s := range g.Seats() {
		if i > 0 {
			segs = append(segs, segment{text: "   "})
		}
		label := string(s.Symbol) + " " + s.Player.String()
		switch s.Status {
		case SeatResigned:
			segs = append(segs, segment{text: label + " (out)", color: platformcore.ColorGray})
		case SeatToMove:
			segs = append(segs, segment{text: "▸" + label, color: s.Color})
		default:
			segs = append(segs, segment{text: label, color: s.Color})
		}
		if s.Boards > 0 {
			segs = append(segs, segment{text: fmt.Sprintf(" %d", s.Boards), color: platformcore.ColorGray})
		}
	}
	drawCentered(dst, y+1, segs...)
}
