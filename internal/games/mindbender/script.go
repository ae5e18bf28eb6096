package mindbender

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScriptMove is one step of a headless game: a placement at flattened grid
// coordinates, or a resignation of the player to move.
type ScriptMove struct {
	Resign bool
	Row    int
	Col    int
}

// String formats the move the way ParseScript reads it.
func (m ScriptMove) String() string {
	if m.Resign {
		return "resign"
	}
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// ParseScript reads whitespace-separated moves: "row,col" or "resign".
// Text after '#' on a line is ignored.
func ParseScript(r io.Reader) ([]ScriptMove, error) {
	var moves []ScriptMove
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, tok := range strings.Fields(text) {
			mv, err := parseMove(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			moves = append(moves, mv)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading moves: %w", err)
	}
	return moves, nil
}

func parseMove(tok string) (ScriptMove, error) {
	if strings.EqualFold(tok, "resign") {
		return ScriptMove{Resign: true}, nil
	}
	rs, cs, ok := strings.Cut(tok, ",")
	if !ok {
		return ScriptMove{}, fmt.Errorf("bad move %q (want row,col or resign)", tok)
	}
	row, err := strconv.Atoi(rs)
	if err != nil {
		return ScriptMove{}, fmt.Errorf("bad row in %q: %w", tok, err)
	}
	col, err := strconv.Atoi(cs)
	if err != nil {
		return ScriptMove{}, fmt.Errorf("bad column in %q: %w", tok, err)
	}
	return ScriptMove{Row: row, Col: col}, nil
}

// Rejection records a scripted move the match refused.
type Rejection struct {
	Index  int // 0-based position in the script
	Move   ScriptMove
	Err    error
	Reason string
}

// Play applies moves in order and returns the ones that were rejected.
// Rejected moves change nothing, so the rest of the script still runs.
func (g *Game) Play(moves []ScriptMove) []Rejection {
	var rejected []Rejection
	for i, mv := range moves {
		var err error
		if mv.Resign {
			err = g.Resign()
		} else {
			err = g.PlaceAt(mv.Col, mv.Row)
		}
		if err != nil {
			rejected = append(rejected, Rejection{Index: i, Move: mv, Err: err, Reason: g.status})
		}
	}
	return rejected
}

// Result describes the outcome of the match so far in one line.
func (g *Game) Result() string {
	m := g.match
	switch {
	case m.IsDraw():
		return "Draw"
	case m.GameOver():
		return fmt.Sprintf("%s wins after %d moves", m.Winner(), m.Moves())
	default:
		return fmt.Sprintf("In progress, %s to move", m.CurrentPlayer())
	}
}
