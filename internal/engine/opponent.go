package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fairychess/internal/fairy"
)

// Difficulty 电脑对手的强度档位。
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Expert 不给时间时的默认思考上限
const defaultExpertTime = 3 * time.Second

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Depth 每档的搜索深度。
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	}
	return 4
}

// 随机走子的概率：Easy 完全随机，Medium 走启发式第二好的一步。
func (d Difficulty) blunderRate() float64 {
	switch d {
	case Easy:
		return 0.3
	case Medium:
		return 0.1
	}
	return 0
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium":
		return Medium, nil
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// Opponent 按档位选着法。持有自己的 Engine 和随机源，不能并发使用。
type Opponent struct {
	Level     Difficulty
	TimeLimit time.Duration // 只对 Expert 生效

	engine *Engine
	rng    *rand.Rand
}

func NewOpponent(level Difficulty, seed int64) *Opponent {
	return &Opponent{
		Level:  level,
		engine: NewEngine(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (o *Opponent) Engine() *Engine { return o.engine }

func (o *Opponent) config() SearchConfig {
	cfg := SearchConfig{MaxDepth: o.Level.Depth()}
	if o.Level == Expert {
		cfg.TimeLimit = o.TimeLimit
		if cfg.TimeLimit <= 0 {
			cfg.TimeLimit = defaultExpertTime
		}
	}
	return cfg
}

// ChooseMove 给当前走子方选一步。ok 为 false 表示没有合法走法。
// 返回的着法一定在 g.LegalMoves() 里。
func (o *Opponent) ChooseMove(g *fairy.Game) (fairy.Move, SearchResult, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return fairy.Move{}, SearchResult{}, false
	}

	rate := o.Level.blunderRate()
	if o.Level == Easy && o.rng.Float64() < rate {
		m := moves[o.rng.Intn(len(moves))]
		return m, SearchResult{BestMove: m, HasMove: true}, true
	}

	res := o.engine.Think(g, o.config())
	if !res.HasMove {
		return fairy.Move{}, res, false
	}
	if o.Level == Medium && len(moves) > 1 && o.rng.Float64() < rate {
		// 换成启发式排序里的第二步
		res.BestMove = orderMoves(g.Board, moves, res.BestMove, true)[1]
	}
	return res.BestMove, res, true
}
