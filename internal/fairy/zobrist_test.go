package fairy

import "testing"

func TestHashMatchesReparsedPosition(t *testing.T) {
	for _, name := range VariantNames() {
		g := MustNewGame(name)
		for ply := 0; ply < 16 && !g.IsOver(); ply++ {
			moves := g.LegalMoves()
			if err := g.MakeMove(moves[len(moves)/2]); err != nil {
				t.Fatalf("%s ply %d: %v", name, ply, err)
			}
			back, err := ParsePosition(g.Variant, g.Position())
			if err != nil {
				t.Fatalf("%s ply %d: reparse: %v", name, ply, err)
			}
			if got, want := back.Hash(), g.Hash(); got != want {
				t.Fatalf("%s ply %d: hash mismatch got=%d want=%d", name, ply, got, want)
			}
		}
	}
}

func TestHashDistinguishesSideAndEnPassant(t *testing.T) {
	w := mustParse(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b := mustParse(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if w.Hash() == b.Hash() {
		t.Fatalf("side to move not hashed")
	}
	ep := mustParse(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	noEP := mustParse(t, "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 2")
	if ep.Hash() == noEP.Hash() {
		t.Fatalf("en passant file not hashed")
	}
}

func TestHashIgnoresMoveOrder(t *testing.T) {
	a := MustNewGame("standard")
	for _, m := range []string{"g1f3", "g8f6", "b1c3"} {
		mustMove(t, a, m)
	}
	b := MustNewGame("standard")
	for _, m := range []string{"b1c3", "g8f6", "g1f3"} {
		mustMove(t, b, m)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("transposed positions hash differently")
	}
}
