package fairy

// royalMovement 王类棋子：普通走法由 Step 给出；Castle 为 true 时额外生成王车易位。
// Attacks 不含易位，否则攻击判断会递归。
type royalMovement struct {
	Step   Movement
	Castle bool
}

func (r royalMovement) Moves(b *Board, from Square, c Color, out []Move) []Move {
	out = r.Step.Moves(b, from, c, out)
	if r.Castle && b.castling() {
		out = b.castlingMoves(from, c, out)
	}
	return out
}

func (r royalMovement) Attacks(b *Board, from Square, c Color, out []Square) []Square {
	return r.Step.Attacks(b, from, c, out)
}

// castlingMoves 王和同一行角落的车都没动过、中间全空、王经过的格子（含起点终点）不被攻击。
// 王走两格，车跳到王经过的那一格。
func (b *Board) castlingMoves(from Square, c Color, out []Move) []Move {
	king := b.At(from)
	if king.Moved {
		return out
	}
	opp := c.Opponent()
	if b.IsSquareAttacked(from, opp) {
		return out
	}
	for _, rookCol := range []int{b.Size - 1, 0} {
		rookSq := Square{Row: from.Row, Col: rookCol}
		rook := b.At(rookSq)
		if rook.Kind != KindRook || rook.Color != c || rook.Moved {
			continue
		}
		dir := 1
		if rookCol < from.Col {
			dir = -1
		}
		// 王走两格，车至少要在三格外
		if (rookCol-from.Col)*dir < 3 {
			continue
		}
		clear := true
		for col := from.Col + dir; col != rookCol; col += dir {
			if !b.At(Square{Row: from.Row, Col: col}).IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		safe := true
		for step := 1; step <= 2; step++ {
			if b.IsSquareAttacked(Square{Row: from.Row, Col: from.Col + dir*step}, opp) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		out = append(out, Move{From: from, To: Square{Row: from.Row, Col: from.Col + 2*dir}, Castle: true})
	}
	return out
}

// castleRookSquares 返回易位时车的起点和终点。
func castleRookSquares(m Move, size int) (Square, Square) {
	if m.To.Col > m.From.Col {
		return Square{Row: m.From.Row, Col: size - 1}, Square{Row: m.From.Row, Col: m.To.Col - 1}
	}
	return Square{Row: m.From.Row, Col: 0}, Square{Row: m.From.Row, Col: m.To.Col + 1}
}
