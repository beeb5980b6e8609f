package engine

import (
	"testing"

	"fairychess/internal/fairy"
)

func mustParse(t *testing.T, fen string) *fairy.Game {
	t.Helper()
	g, err := fairy.ParsePosition(nil, fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return g
}

func mustCoord(t *testing.T, g *fairy.Game, text string) fairy.Move {
	t.Helper()
	m, err := fairy.ParseCoord(text, g.Board.Size)
	if err != nil {
		t.Fatalf("parse move %q: %v", text, err)
	}
	return m
}

func isLegal(g *fairy.Game, m fairy.Move) bool {
	for _, lm := range g.LegalMoves() {
		if lm.Equal(m) {
			return true
		}
	}
	return false
}
