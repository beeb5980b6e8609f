package engine

import "fairychess/internal/fairy"

// 子力位置表，白方视角，第 0 行是对方底线。黑方按行镜像查表。

var pawnTable8 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable8 = [][]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable8 = [][]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable8 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable8 = [][]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable8 = [][]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var pawnTable10 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50, 50, 50},
	{20, 20, 25, 30, 35, 35, 30, 25, 20, 20},
	{10, 10, 15, 20, 30, 30, 20, 15, 10, 10},
	{5, 5, 10, 20, 25, 25, 20, 10, 5, 5},
	{0, 0, 5, 15, 20, 20, 15, 5, 0, 0},
	{0, 0, 0, 10, 15, 15, 10, 0, 0, 0},
	{5, -5, -10, 0, 5, 5, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable10 = [][]int{
	{-50, -40, -30, -30, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 25, 25, 20, 15, 0, -30},
	{-30, 5, 15, 20, 25, 25, 20, 15, 5, -30},
	{-30, 0, 10, 15, 20, 20, 15, 10, 0, -30},
	{-30, 5, 10, 15, 15, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -30, -30, -40, -50},
}

var bishopTable10 = [][]int{
	{-20, -10, -10, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 15, 15, 10, 10, 0, -10},
	{-10, 0, 10, 10, 15, 15, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 10, 10, 5, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable10 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 0, 5, 5, 0, 0, 0, 0},
}

var queenTable10 = [][]int{
	{-20, -10, -10, -5, -5, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 10, 10, 5, 5, 0, -5},
	{-5, 0, 5, 10, 10, 10, 10, 5, 0, -5},
	{0, 0, 5, 10, 10, 10, 10, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -5, -5, -10, -10, -20},
}

var kingTable10 = [][]int{
	{-30, -40, -40, -50, -50, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 0, 0, 10, 30, 20},
}

type pstRef struct {
	small, large [][]int
	num, den     int // 复合子按比例复用组成部分的表
}

var (
	pawnPST   = pstRef{pawnTable8, pawnTable10, 1, 1}
	knightPST = pstRef{knightTable8, knightTable10, 1, 1}
	bishopPST = pstRef{bishopTable8, bishopTable10, 1, 1}
	rookPST   = pstRef{rookTable8, rookTable10, 1, 1}
	queenPST  = pstRef{queenTable8, queenTable10, 1, 1}
	kingPST   = pstRef{kingTable8, kingTable10, 1, 1}
)

func half(r pstRef) pstRef { return pstRef{r.small, r.large, 1, 2} }

// 没有表的棋子只算子力。
var pieceTables = map[fairy.PieceKind]pstRef{
	fairy.KindPawn:   pawnPST,
	fairy.KindKnight: knightPST,
	fairy.KindBishop: bishopPST,
	fairy.KindRook:   rookPST,
	fairy.KindQueen:  queenPST,
	fairy.KindKing:   kingPST,
	fairy.KindChief:  kingPST,

	fairy.KindMarshal:  half(rookPST),
	fairy.KindCardinal: half(bishopPST),
	fairy.KindAmazon:   half(queenPST),
	fairy.KindFalcon:   half(bishopPST),
	fairy.KindHunter:   half(rookPST),
	fairy.KindChampion: half(knightPST),
	fairy.KindWizard:   half(knightPST),
	fairy.KindThoat:    knightPST,
	fairy.KindDwar:     half(rookPST),
	fairy.KindWarrior:  half(rookPST),
	fairy.KindPadwar:   half(bishopPST),
	fairy.KindFlier:    half(bishopPST),
	fairy.KindPanthan:  pawnPST,
}

// positionalBonus 从该子所属一方视角的位置分。越界下标一律夹到表内。
func positionalBonus(kind fairy.PieceKind, c fairy.Color, sq fairy.Square, size int) int {
	ref, ok := pieceTables[kind]
	if !ok {
		return 0
	}
	table := ref.small
	if size > 8 {
		table = ref.large
	}
	row := sq.Row
	if c == fairy.Black {
		row = size - 1 - row
	}
	row = clamp(row, 0, len(table)-1)
	col := clamp(sq.Col, 0, len(table[row])-1)
	return table[row][col] * ref.num / ref.den
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
