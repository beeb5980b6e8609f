package engine

import "fairychess/internal/fairy"

const (
	// MateScore 将死时的评估分（白方视角取正负）。
	MateScore = 10000
	// 超过这个绝对值就认为是杀棋分，迭代加深可以提前停。
	mateThreshold = 9000

	mobilityWeight = 5
	checkPenalty   = 50

	promotionBonus = 800
	// MVV-LVA 里王类棋子当攻击者时的估值，排在同价值目标的最后。
	royalAttackerValue = 1000
)

// Evaluate 静态评估，白方视角：正数白方好，负数黑方好。
// 终局直接给分：白胜 +MateScore，黑胜 -MateScore，和棋与逼和为 0。
func Evaluate(g *fairy.Game) int {
	switch g.Result() {
	case fairy.WhiteWins:
		return MateScore
	case fairy.BlackWins:
		return -MateScore
	case fairy.Draw, fairy.Stalemate:
		return 0
	}

	b := g.Board
	score := evaluateMaterialPositional(b)
	score += evaluateMobility(g)

	if b.IsInCheck(fairy.White) {
		score -= checkPenalty
	}
	if b.IsInCheck(fairy.Black) {
		score += checkPenalty
	}
	return score
}

// 子力 + 位置分
func evaluateMaterialPositional(b *fairy.Board) int {
	score := 0
	for _, c := range [...]fairy.Color{fairy.White, fairy.Black} {
		side := 0
		for _, sq := range b.Pieces(c) {
			pc := b.At(sq)
			side += pc.Value() + positionalBonus(pc.Kind, c, sq, b.Size)
		}
		if c == fairy.White {
			score += side
		} else {
			score -= side
		}
	}
	return score
}

// 双方合法走法数之差。走子方的走法用 Game 的缓存。
func evaluateMobility(g *fairy.Game) int {
	own := len(g.LegalMoves())
	other := len(g.Board.AllLegalMoves(g.Turn.Opponent()))
	if g.Turn == fairy.White {
		return (own - other) * mobilityWeight
	}
	return (other - own) * mobilityWeight
}

// EvaluateMove 排序用的启发分：吃子按 MVV-LVA，升变额外加分。
func EvaluateMove(m fairy.Move, b *fairy.Board) int {
	score := 0
	if m.Capture {
		victim := b.At(m.To).Value()
		if m.EnPassant {
			victim = fairy.NewPiece(fairy.KindPawn, fairy.White).Value()
		}
		attacker := b.At(m.From)
		av := attacker.Value()
		if attacker.Info().Royal {
			av = royalAttackerValue
		}
		score += victim*10 - av
	}
	if m.Promotion != fairy.KindNone {
		score += promotionBonus
	}
	return score
}
