package engine

import (
	"sort"
	"time"

	"fairychess/internal/fairy"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000

	defaultDepth = 3
)

// 搜索配置
type SearchConfig struct {
	MaxDepth  int           // 最大搜索深度（ply）
	TimeLimit time.Duration // 0 表示不限时，只按 MaxDepth 定深搜索
}

// 搜索结果
type SearchResult struct {
	BestMove  fairy.Move
	HasMove   bool // 无子可动或已终局时为 false
	Score     int  // 白方视角
	Depth     int  // 完整搜完的深度
	Nodes     int64
	CacheHits int64
	TimeUsed  time.Duration
}

// Search 定深 alpha-beta。白方取极大，黑方取极小。
func (e *Engine) Search(g *fairy.Game, depth int) SearchResult {
	if depth < 1 {
		depth = 1
	}
	start := time.Now()
	e.nodes, e.hits = 0, 0
	e.tt.NewSearch()

	score, mv, ok := e.minimax(g, depth, 0, -scoreInf, scoreInf)
	return SearchResult{
		BestMove:  mv,
		HasMove:   ok,
		Score:     score,
		Depth:     depth,
		Nodes:     e.nodes,
		CacheHits: e.hits,
		TimeUsed:  time.Since(start),
	}
}

// SearchWithTimeLimit 迭代加深。只在两层之间看时间，已经开始的一层总会搜完，
// 所以至少会完成深度 1。找到杀棋就提前停。
func (e *Engine) SearchWithTimeLimit(g *fairy.Game, limit time.Duration, maxDepth int) SearchResult {
	if maxDepth < 1 {
		maxDepth = 1
	}
	start := time.Now()
	deadline := start.Add(limit)

	var best SearchResult
	var nodes, hits int64
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && limit > 0 && time.Now().After(deadline) {
			break
		}
		res := e.Search(g, depth)
		nodes += res.Nodes
		hits += res.CacheHits
		best = res
		if !res.HasMove || abs(res.Score) > mateThreshold {
			break
		}
	}
	best.Nodes = nodes
	best.CacheHits = hits
	best.TimeUsed = time.Since(start)
	return best
}

// Think 按配置选择限时或定深。
func (e *Engine) Think(g *fairy.Game, cfg SearchConfig) SearchResult {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultDepth
	}
	if cfg.TimeLimit > 0 {
		return e.SearchWithTimeLimit(g, cfg.TimeLimit, cfg.MaxDepth)
	}
	return e.Search(g, cfg.MaxDepth)
}

// minimax 返回白方视角分数和本节点最佳着法。ply 是离根的距离，用来让近杀优于远杀。
func (e *Engine) minimax(g *fairy.Game, depth, ply, alpha, beta int) (int, fairy.Move, bool) {
	e.nodes++

	if depth <= 0 || g.IsOver() {
		return mateDistance(Evaluate(g), ply), fairy.Move{}, false
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return mateDistance(Evaluate(g), ply), fairy.Move{}, false
	}

	key := g.Hash()
	var ttMove fairy.Move
	hasTTMove := false
	if entry, ok := e.tt.Probe(key); ok {
		ttMove, hasTTMove = entry.Move, entry.HasMove
		// 根节点必须真的给出一个着法，不走 TT 截断
		if ply > 0 && entry.Depth >= depth {
			switch {
			case entry.Bound == BoundExact,
				entry.Bound == BoundLower && entry.Score >= beta,
				entry.Bound == BoundUpper && entry.Score <= alpha:
				e.hits++
				return entry.Score, entry.Move, entry.HasMove
			}
		}
	}

	ordered := orderMoves(g.Board, moves, ttMove, hasTTMove)
	alphaOrig, betaOrig := alpha, beta
	maximizing := g.Turn == fairy.White

	best := scoreInf
	if maximizing {
		best = -scoreInf
	}
	var bestMove fairy.Move
	for _, m := range ordered {
		score, _, _ := e.minimax(g.Child(m), depth-1, ply+1, alpha, beta)
		if maximizing {
			if score > best {
				best, bestMove = score, m
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best, bestMove = score, m
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}

	bound := BoundExact
	switch {
	case best <= alphaOrig:
		bound = BoundUpper
	case best >= betaOrig:
		bound = BoundLower
	}
	e.tt.Store(key, depth, best, bound, bestMove, true)
	return best, bestMove, true
}

// orderMoves 返回排好序的新切片：TT 着法在最前（必须是合法走法），其余按 EvaluateMove 降序。
// 稳定排序，同分保持生成顺序，结果可复现。
func orderMoves(b *fairy.Board, moves []fairy.Move, ttMove fairy.Move, hasTTMove bool) []fairy.Move {
	ordered := make([]fairy.Move, len(moves))
	copy(ordered, moves)
	scores := make(map[fairy.Move]int, len(ordered))
	for _, m := range ordered {
		s := EvaluateMove(m, b)
		if hasTTMove && m.Equal(ttMove) {
			s = scoreInf
		}
		scores[m] = s
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})
	return ordered
}

// 杀棋分按离根距离打折：早杀分更高，晚被杀分更高。
func mateDistance(score, ply int) int {
	switch {
	case score > mateThreshold:
		return score - ply
	case score < -mateThreshold:
		return score + ply
	}
	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
