package game

import (
	"sync"
	"time"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
)

// GameState 一局对局及其电脑对手。所有访问都经过 mu。
type GameState struct {
	ID        string
	Variant   string
	Game      *fairy.Game
	Opponent  *engine.Opponent
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// Snapshot 某一时刻的只读视图，给接口层序列化用。
type Snapshot struct {
	ID       string
	Variant  string
	Size     int
	Position string
	Turn     fairy.Color
	Result   fairy.Result
	InCheck  bool
	Legal    []fairy.Move
	SAN      []string
	Captures [2][]fairy.Piece
	CanUndo  bool
	Light    [][]bool // 按行从上到下，true 为浅色格
}

func (s *GameState) snapshot() Snapshot {
	g := s.Game
	legal := make([]fairy.Move, len(g.LegalMoves()))
	copy(legal, g.LegalMoves())
	return Snapshot{
		ID:       s.ID,
		Variant:  s.Variant,
		Size:     g.Board.Size,
		Position: g.Position(),
		Turn:     g.Turn,
		Result:   g.Result(),
		InCheck:  g.IsInCheck(),
		Legal:    legal,
		SAN:      g.SAN(),
		Captures: [2][]fairy.Piece{
			append([]fairy.Piece(nil), g.Captures[fairy.White]...),
			append([]fairy.Piece(nil), g.Captures[fairy.Black]...),
		},
		CanUndo: g.CanUndo(),
		Light:   squareColors(g.Board.Variant()),
	}
}

func squareColors(v *fairy.Variant) [][]bool {
	out := make([][]bool, v.Size)
	for r := range out {
		out[r] = make([]bool, v.Size)
		for c := range out[r] {
			out[r][c] = v.SquareLight(fairy.Sq(r, c))
		}
	}
	return out
}

func (s *GameState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Play 人类走一步。失败时局面不变。
func (s *GameState) Play(m fairy.Move) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Game.MakeMove(m); err != nil {
		return Snapshot{}, err
	}
	s.UpdatedAt = time.Now()
	return s.snapshot(), nil
}

// Undo 悔 plies 步（至少一步）。中途没有历史就停下并返回错误，已经悔掉的不恢复。
func (s *GameState) Undo(plies int) (Snapshot, error) {
	if plies < 1 {
		plies = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < plies; i++ {
		if err := s.Game.Undo(); err != nil {
			if i == 0 {
				return Snapshot{}, err
			}
			break
		}
	}
	s.UpdatedAt = time.Now()
	return s.snapshot(), nil
}

// LegalFrom 某格棋子的合法走法，用于高亮。
func (s *GameState) LegalFrom(sq fairy.Square) []fairy.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.LegalMovesFrom(sq)
}

// AIMove 让电脑替当前走子方走一步并落子。cfg 为零值时按对手档位选着，
// 否则直接用给定的深度和时间搜索。
func (s *GameState) AIMove(cfg engine.SearchConfig) (fairy.Move, engine.SearchResult, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Game.IsOver() {
		return fairy.Move{}, engine.SearchResult{}, Snapshot{}, fairy.ErrGameOver
	}

	var (
		mv  fairy.Move
		res engine.SearchResult
		ok  bool
	)
	if cfg == (engine.SearchConfig{}) {
		mv, res, ok = s.Opponent.ChooseMove(s.Game)
	} else {
		res = s.Opponent.Engine().Think(s.Game, cfg)
		mv, ok = res.BestMove, res.HasMove
	}
	if !ok {
		return fairy.Move{}, res, Snapshot{}, fairy.ErrGameOver
	}
	if err := s.Game.MakeMove(mv); err != nil {
		return fairy.Move{}, res, Snapshot{}, err
	}
	s.UpdatedAt = time.Now()
	return mv, res, s.snapshot(), nil
}

// Export 返回局面串和完整棋谱。
func (s *GameState) Export() (position, record string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Position(), s.Game.Record()
}
