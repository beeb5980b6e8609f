package fairy

// FindKing 返回 c 方第一个王类棋子的位置。
func (b *Board) FindKing(c Color) (Square, bool) {
	for i, pc := range b.squares {
		if !pc.IsEmpty() && pc.Color == c && pc.Info().Royal {
			return Square{Row: i / b.Size, Col: i % b.Size}, true
		}
	}
	return NoSquare, false
}

// IsSquareAttacked 判断 sq 是否被 by 方攻击：只要 by 方任一子的攻击格包含 sq。
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	var buf [64]Square
	for i, pc := range b.squares {
		if pc.IsEmpty() || pc.Color != by {
			continue
		}
		from := Square{Row: i / b.Size, Col: i % b.Size}
		for _, to := range pc.Info().Move.Attacks(b, from, by, buf[:0]) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck 没有王时视为未被将军。
func (b *Board) IsInCheck(c Color) bool {
	king, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, c.Opponent())
}

// isLegal 在副本上走一步，看自己王是否仍被将军。
func (b *Board) isLegal(m Move, c Color) bool {
	nb := b.Copy()
	nb.Apply(m)
	return !nb.IsInCheck(c)
}

// LegalMoves 过滤掉走完后自己王被将军的伪合法走法。
func (b *Board) LegalMoves(from Square) []Move {
	pc := b.At(from)
	if pc.IsEmpty() {
		return nil
	}
	pseudo := b.PseudoLegalMoves(from)
	out := pseudo[:0]
	for _, m := range pseudo {
		if b.isLegal(m, pc.Color) {
			out = append(out, m)
		}
	}
	return out
}

func (b *Board) AllLegalMoves(c Color) []Move {
	var out []Move
	for _, from := range b.Pieces(c) {
		out = append(out, b.LegalMoves(from)...)
	}
	return out
}
