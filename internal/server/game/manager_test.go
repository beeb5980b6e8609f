package game

import (
	"errors"
	"testing"
	"time"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
)

func move(t *testing.T, s *GameState, text string) fairy.Move {
	t.Helper()
	m, err := fairy.ParseCoord(text, s.Game.Board.Size)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return m
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("", "", engine.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if s.Variant != "standard" {
		t.Fatalf("variant got=%s want=standard", s.Variant)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("get: %v", err)
	}
	if ids := m.IDs(); len(ids) != 1 || ids[0] != s.ID {
		t.Fatalf("ids got=%v", ids)
	}

	m.Delete(s.ID)
	if _, err := m.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err got=%v want ErrNotFound", err)
	}
}

func TestManagerRejectsUnknownVariant(t *testing.T) {
	_, err := NewManager().NewGame("xiangqi", "", engine.Easy)
	if !errors.Is(err, fairy.ErrUnknownVariant) {
		t.Fatalf("err got=%v", err)
	}
}

func TestManagerStartsFromPosition(t *testing.T) {
	fen := "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"
	s, err := NewManager().NewGame("standard", fen, engine.Hard)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().Position; got != fen {
		t.Fatalf("position got=%s want=%s", got, fen)
	}
	if _, err := NewManager().NewGame("standard", "not a position", engine.Hard); !errors.Is(err, fairy.ErrInvalidFEN) {
		t.Fatalf("bad fen err got=%v", err)
	}
}

func TestPlayUndo(t *testing.T) {
	s, err := NewManager().NewGame("capablanca", "", engine.Easy)
	if err != nil {
		t.Fatal(err)
	}
	start := s.Snapshot()

	snap, err := s.Play(move(t, s, "e2e4"))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Turn != fairy.Black || len(snap.SAN) != 1 || !snap.CanUndo {
		t.Fatalf("after play: %+v", snap)
	}
	if _, err := s.Play(move(t, s, "e2e4")); !errors.Is(err, fairy.ErrNoPiece) && !errors.Is(err, fairy.ErrWrongTurn) {
		t.Fatalf("replay err got=%v", err)
	}
	if _, err := s.Play(move(t, s, "a10a6")); !errors.Is(err, fairy.ErrIllegalMove) {
		t.Fatalf("illegal err got=%v", err)
	}

	// 多悔的步数被忽略
	snap, err = s.Undo(5)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Position != start.Position {
		t.Fatalf("position got=%s want=%s", snap.Position, start.Position)
	}
	if _, err := s.Undo(1); !errors.Is(err, fairy.ErrNoHistory) {
		t.Fatalf("undo err got=%v", err)
	}
}

func TestAIMove(t *testing.T) {
	s, err := NewManager().NewGame("standard", "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1", engine.Hard)
	if err != nil {
		t.Fatal(err)
	}
	mv, res, snap, err := s.AIMove(engine.SearchConfig{MaxDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if mv.Coord(8) != "e4d5" || res.Depth != 1 {
		t.Fatalf("ai move got=%s depth=%d", mv.Coord(8), res.Depth)
	}
	if snap.Turn != fairy.Black || len(snap.Captures[fairy.White]) != 1 {
		t.Fatalf("snapshot after ai move: %+v", snap)
	}

	// 按档位再走一步，一定合法
	before := s.Snapshot()
	mv, _, _, err = s.AIMove(engine.SearchConfig{})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, lm := range before.Legal {
		if lm.Equal(mv) {
			found = true
		}
	}
	if !found {
		t.Fatalf("ai played illegal move %s", mv.Coord(8))
	}
}

func TestAIMoveOnFinishedGame(t *testing.T) {
	s, err := NewManager().NewGame("standard", "k7/8/1QK5/8/8/8/8/8 b - - 0 1", engine.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := s.AIMove(engine.SearchConfig{}); !errors.Is(err, fairy.ErrGameOver) {
		t.Fatalf("err got=%v want ErrGameOver", err)
	}
}

func TestPrune(t *testing.T) {
	m := NewManager()
	old, _ := m.NewGame("standard", "", engine.Easy)
	fresh, _ := m.NewGame("standard", "", engine.Easy)
	old.UpdatedAt = time.Now().Add(-2 * time.Hour)

	if n := m.Prune(time.Hour); n != 1 {
		t.Fatalf("pruned got=%d want=1", n)
	}
	if _, err := m.Get(fresh.ID); err != nil {
		t.Fatalf("fresh game pruned: %v", err)
	}
}
