package fairy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGameForEveryVariant(t *testing.T) {
	for _, name := range VariantNames() {
		t.Run(name, func(t *testing.T) {
			g, err := NewGame(name)
			if err != nil {
				t.Fatalf("NewGame: %v", err)
			}
			if g.Turn != White || g.Result() != Ongoing {
				t.Fatalf("turn=%v result=%v", g.Turn, g.Result())
			}
			if len(g.LegalMoves()) == 0 {
				t.Fatalf("no legal moves at start")
			}
			if _, ok := g.Board.FindKing(White); !ok {
				t.Fatalf("no white royal piece")
			}
			back, err := ParsePosition(g.Variant, g.Position())
			if err != nil {
				t.Fatalf("reparse: %v", err)
			}
			if back.Position() != g.Position() {
				t.Fatalf("position round trip: got=%q want=%q", back.Position(), g.Position())
			}
		})
	}
}

func TestUnknownVariantAndPiece(t *testing.T) {
	if _, err := NewGame("nope"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("got %v want ErrUnknownVariant", err)
	}
	bad := &Variant{Name: "broken", Size: 8, Layout: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNZ"}
	if err := RegisterVariant(bad); !errors.Is(err, ErrUnknownPiece) {
		t.Fatalf("got %v want ErrUnknownPiece", err)
	}
	if _, err := LookupVariant("broken"); err == nil {
		t.Fatalf("broken variant must not be registered")
	}
}

func TestStandardStartPosition(t *testing.T) {
	g := MustNewGame("standard")
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got := g.Position(); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
	mustMove(t, g, "e2e4")
	want = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := g.Position(); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
	mustMove(t, g, "g8f6")
	want = "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2"
	if got := g.Position(); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestTenByTenPosition(t *testing.T) {
	g := MustNewGame("capablanca")
	want := "rncbqkbmnr/pppppppppp/10/10/10/10/10/10/PPPPPPPPPP/RNCBQKBMNR w KQkq - 0 1"
	if got := g.Position(); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
	mustMove(t, g, "e2e4")
	if got := g.Board.EnPassant.Notation(10); got != "e3" {
		t.Fatalf("en passant got=%q want=e3", got)
	}
}

func TestMakeMoveRejections(t *testing.T) {
	g := MustNewGame("standard")
	before := g.Position()

	cases := []struct {
		name  string
		coord string
		want  error
	}{
		{"empty square", "e4e5", ErrNoPiece},
		{"wrong color", "e7e5", ErrWrongTurn},
		{"illegal pattern", "e2e5", ErrIllegalMove},
		{"knight blocked by own", "b1d2", ErrIllegalMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseCoord(tc.coord, 8)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := g.MakeMove(m); !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
			if g.Position() != before {
				t.Fatalf("rejected move mutated the game")
			}
		})
	}
	if err := g.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("undo on fresh game: got %v", err)
	}
}

func TestCheckmateWithTwoRooks(t *testing.T) {
	g := mustParse(t, "k7/8/8/8/8/8/7R/1R4K1 w - - 0 1")
	mustMove(t, g, "h2a2")
	if g.Result() != WhiteWins {
		t.Fatalf("result got=%v want=%v", g.Result(), WhiteWins)
	}
	if n := len(g.Board.AllLegalMoves(Black)); n != 0 {
		t.Fatalf("black should have no legal moves, got %d", n)
	}
	if got := g.SAN()[0]; got != "Ra2#" {
		t.Fatalf("san got=%q want=Ra2#", got)
	}

	// 终局后任何走法都被拒绝，且不改变局面
	pos := g.Position()
	if err := g.MakeMove(Move{From: mustSquare(t, "a8", 8), To: mustSquare(t, "b8", 8)}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after mate: got %v", err)
	}
	if g.Position() != pos {
		t.Fatalf("terminal game mutated")
	}

	if err := g.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if g.Result() != Ongoing {
		t.Fatalf("undo should reopen the game")
	}
}

func TestStalemate(t *testing.T) {
	g := mustParse(t, "k7/8/2K5/8/8/8/8/1Q6 w - - 0 1")
	mustMove(t, g, "b1b6")
	if g.Result() != Stalemate {
		t.Fatalf("result got=%v want=%v", g.Result(), Stalemate)
	}
	if g.IsInCheck() {
		t.Fatalf("stalemated king must not be in check")
	}
	if got := g.Result().Code(); got != "1/2-1/2" {
		t.Fatalf("code got=%q", got)
	}
}

func TestEnPassant(t *testing.T) {
	g := mustParse(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	mustMove(t, g, "d7d5")
	e5 := mustSquare(t, "e5", 8)

	var ep Move
	for _, m := range g.Board.PseudoLegalMoves(e5) {
		if m.EnPassant {
			ep = m
		}
	}
	if ep.IsZero() || ep.To.Notation(8) != "d6" {
		t.Fatalf("en passant capture missing: %v", coords(g.Board.PseudoLegalMoves(e5), 8))
	}

	before := g.Position()
	if err := g.MakeMove(ep); err != nil {
		t.Fatalf("en passant: %v", err)
	}
	if !g.Board.At(mustSquare(t, "d5", 8)).IsEmpty() {
		t.Fatalf("passed pawn still on d5")
	}
	if pc := g.Board.At(mustSquare(t, "d6", 8)); pc.Kind != KindPawn || pc.Color != White {
		t.Fatalf("white pawn not on d6: %+v", pc)
	}
	if len(g.Captures[White]) != 1 {
		t.Fatalf("capture list got=%d want=1", len(g.Captures[White]))
	}
	if got := g.SAN()[1]; got != "exd6" {
		t.Fatalf("san got=%q want=exd6", got)
	}

	if err := g.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if g.Position() != before {
		t.Fatalf("undo en passant: got=%q want=%q", g.Position(), before)
	}
	if len(g.Captures[White]) != 0 {
		t.Fatalf("capture list not restored")
	}
}

func TestEnPassantExpiresAfterOnePly(t *testing.T) {
	g := mustParse(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	mustMove(t, g, "d7d5")
	mustMove(t, g, "e1e2")
	mustMove(t, g, "e8e7")
	if hasCoord(g.LegalMoves(), 8, "e5d6") {
		t.Fatalf("en passant must expire")
	}
}

func TestCastling(t *testing.T) {
	t.Run("both sides available", func(t *testing.T) {
		g := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		if !hasCoord(g.LegalMoves(), 8, "e1g1") || !hasCoord(g.LegalMoves(), 8, "e1c1") {
			t.Fatalf("castles missing: %v", coords(g.LegalMoves(), 8))
		}
	})
	t.Run("transit square attacked", func(t *testing.T) {
		g := mustParse(t, "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
		if hasCoord(g.LegalMoves(), 8, "e1g1") {
			t.Fatalf("castled through attacked f1")
		}
		if !hasCoord(g.LegalMoves(), 8, "e1c1") {
			t.Fatalf("queenside castle should remain")
		}
	})
	t.Run("in check", func(t *testing.T) {
		g := mustParse(t, "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
		if hasCoord(g.LegalMoves(), 8, "e1g1") || hasCoord(g.LegalMoves(), 8, "e1c1") {
			t.Fatalf("castled out of check")
		}
	})
	t.Run("blocked", func(t *testing.T) {
		g := mustParse(t, "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
		if hasCoord(g.LegalMoves(), 8, "e1c1") {
			t.Fatalf("castled through b1 knight")
		}
	})
	t.Run("rook moved", func(t *testing.T) {
		g := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		mustMove(t, g, "h1g1")
		mustMove(t, g, "a8b8")
		mustMove(t, g, "g1h1")
		mustMove(t, g, "b8a8")
		if hasCoord(g.LegalMoves(), 8, "e1g1") {
			t.Fatalf("castled with a moved rook")
		}
		if !hasCoord(g.LegalMoves(), 8, "e1c1") {
			t.Fatalf("queenside castle should remain")
		}
		if got := g.Position(); got != "r3k2r/8/8/8/8/8/8/R3K2R w Qk - 4 3" {
			t.Fatalf("position got=%q", got)
		}
	})
	t.Run("apply and undo", func(t *testing.T) {
		g := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		before := g.Position()
		mustMove(t, g, "e1c1")
		if pc := g.Board.At(mustSquare(t, "d1", 8)); pc.Kind != KindRook {
			t.Fatalf("rook not relocated to d1")
		}
		if got := g.SAN()[0]; got != "O-O-O" {
			t.Fatalf("san got=%q", got)
		}
		if err := g.Undo(); err != nil {
			t.Fatalf("undo: %v", err)
		}
		if g.Position() != before {
			t.Fatalf("undo castle: got=%q want=%q", g.Position(), before)
		}
	})
	t.Run("ten by ten", func(t *testing.T) {
		g := mustParse10(t, "capablanca", "r4k3r/10/10/10/10/10/10/10/10/R4K3R w KQkq - 0 1")
		mustMove(t, g, "f1h1")
		if pc := g.Board.At(mustSquare(t, "g1", 10)); pc.Kind != KindRook || pc.Color != White {
			t.Fatalf("rook not on g1 after 10x10 castle")
		}
	})
}

func mustParse10(t *testing.T, variant, fen string) *Game {
	t.Helper()
	v, err := LookupVariant(variant)
	if err != nil {
		t.Fatalf("variant: %v", err)
	}
	g, err := ParsePosition(v, fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return g
}

func TestPromotionChoiceIsPartOfTheMove(t *testing.T) {
	g := mustParse(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	var promos []string
	for _, m := range g.LegalMovesFrom(mustSquare(t, "e7", 8)) {
		promos = append(promos, m.Coord(8))
	}
	want := []string{"e7e8q", "e7e8r", "e7e8b", "e7e8n"}
	if diff := cmp.Diff(want, promos); diff != "" {
		t.Fatalf("promotion moves (-want +got):\n%s", diff)
	}

	plain := Move{From: mustSquare(t, "e7", 8), To: mustSquare(t, "e8", 8)}
	if err := g.MakeMove(plain); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("promotion without choice: got %v", err)
	}
	mustMove(t, g, "e7e8n")
	if pc := g.Board.At(mustSquare(t, "e8", 8)); pc.Kind != KindKnight {
		t.Fatalf("promoted to %v want Knight", pc.Kind)
	}
	if err := g.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if pc := g.Board.At(mustSquare(t, "e7", 8)); pc.Kind != KindPawn {
		t.Fatalf("undo promotion left %v", pc.Kind)
	}
}

func TestFiftyMoveRuleAndMaterial(t *testing.T) {
	g := mustParse(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	mustMove(t, g, "a1a2")
	if g.Result() != Draw {
		t.Fatalf("fifty-move: got=%v want=draw", g.Result())
	}

	g = mustParse(t, "4k3/8/8/8/8/8/8/3BK3 w - - 0 1")
	if g.Result() != Draw {
		t.Fatalf("K+B vs K: got=%v want=draw", g.Result())
	}
	g = mustParse(t, "4k3/8/8/8/8/8/3r4/3NK3 w - - 0 1")
	mustMove(t, g, "e1d2")
	if g.Result() != Draw {
		t.Fatalf("K+N vs K after capture: got=%v want=draw", g.Result())
	}
	g = mustParse(t, "4k3/8/8/8/8/8/8/2BBK3 w - - 0 1")
	if g.Result() != Ongoing {
		t.Fatalf("two bishops can mate: got=%v", g.Result())
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	for _, name := range VariantNames() {
		t.Run(name, func(t *testing.T) {
			g := MustNewGame(name)
			var positions []string
			for ply := 0; ply < 40 && !g.IsOver(); ply++ {
				moves := g.LegalMoves()
				positions = append(positions, g.Position())
				m := moves[(ply*7+3)%len(moves)]
				if err := g.MakeMove(m); err != nil {
					t.Fatalf("ply %d %s: %v", ply, m.Coord(g.Board.Size), err)
				}
			}
			for i := len(positions) - 1; i >= 0; i-- {
				if err := g.Undo(); err != nil {
					t.Fatalf("undo %d: %v", i, err)
				}
				if got := g.Position(); got != positions[i] {
					t.Fatalf("undo to ply %d: got=%q want=%q", i, got, positions[i])
				}
			}
			if g.CanUndo() {
				t.Fatalf("history should be empty")
			}
		})
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := MustNewGame("standard")
	mustMove(t, g, "e2e4")
	c := g.Copy()
	mustMove(t, c, "e7e5")
	if g.Turn != Black || len(g.Moves()) != 1 {
		t.Fatalf("copy aliased the original")
	}
	if !g.Board.At(mustSquare(t, "e5", 8)).IsEmpty() {
		t.Fatalf("copy shares the board")
	}

	p, err := g.Preview(Move{From: mustSquare(t, "d7", 8), To: mustSquare(t, "d5", 8)})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if p.Turn != White || g.Turn != Black {
		t.Fatalf("preview mutated the original")
	}
}
