package engine

import (
	"testing"
	"time"

	"fairychess/internal/fairy"
)

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Fatalf("parse %q: got=%v err=%v", d.String(), got, err)
		}
	}
	if _, err := ParseDifficulty("grandmaster"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestOpponentPlaysLegalMoves(t *testing.T) {
	for _, level := range []Difficulty{Easy, Medium, Hard, Expert} {
		t.Run(level.String(), func(t *testing.T) {
			g := fairy.MustNewGame("standard")
			opp := NewOpponent(level, 7)
			opp.TimeLimit = 50 * time.Millisecond
			for ply := 0; ply < 4 && !g.IsOver(); ply++ {
				m, _, ok := opp.ChooseMove(g)
				if !ok {
					t.Fatalf("ply %d: no move", ply)
				}
				if !isLegal(g, m) {
					t.Fatalf("ply %d: illegal move %s", ply, m.Coord(8))
				}
				if err := g.MakeMove(m); err != nil {
					t.Fatalf("ply %d: %v", ply, err)
				}
			}
		})
	}
}

func TestOpponentWithoutMoves(t *testing.T) {
	g := mustParse(t, "k7/8/1QK5/8/8/8/8/8 b - - 0 1")
	if _, _, ok := NewOpponent(Hard, 1).ChooseMove(g); ok {
		t.Fatalf("expected no move in stalemate")
	}
}

func TestOpponentTakesFreeQueen(t *testing.T) {
	g := mustParse(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	m, _, ok := NewOpponent(Hard, 1).ChooseMove(g)
	if !ok || m.Coord(8) != "e4d5" {
		t.Fatalf("got=%s want=e4d5", m.Coord(8))
	}
}
