package fairy

import (
	"sort"
	"testing"
)

func mustParse(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := ParsePosition(nil, fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return g
}

func mustSquare(t *testing.T, text string, size int) Square {
	t.Helper()
	sq, err := ParseSquare(text, size)
	if err != nil {
		t.Fatalf("square %q: %v", text, err)
	}
	return sq
}

func mustMove(t *testing.T, g *Game, coord string) {
	t.Helper()
	m, err := ParseCoord(coord, g.Board.Size)
	if err != nil {
		t.Fatalf("parse move %q: %v", coord, err)
	}
	if err := g.MakeMove(m); err != nil {
		t.Fatalf("move %q: %v", coord, err)
	}
}

func coords(moves []Move, size int) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Coord(size)
	}
	sort.Strings(out)
	return out
}

func notations(squares []Square, size int) []string {
	seen := map[string]bool{}
	var out []string
	for _, sq := range squares {
		n := sq.Notation(size)
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func hasCoord(moves []Move, size int, coord string) bool {
	for _, m := range moves {
		if m.Coord(size) == coord {
			return true
		}
	}
	return false
}
