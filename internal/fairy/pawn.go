package fairy

// pawnMovement 兵：前进一格（起始行可走两格，途经格必须为空），斜前方吃子（含吃过路兵），
// 到达升变行时每个可选升变子各生成一步。
type pawnMovement struct{}

func (pawnMovement) Moves(b *Board, from Square, c Color, out []Move) []Move {
	fwd := Square{Row: c.Forward()}
	promoRow := b.promotionRow(c)

	add := func(m Move) {
		if m.To.Row != promoRow {
			out = append(out, m)
			return
		}
		for _, k := range b.promotions() {
			pm := m
			pm.Promotion = k
			out = append(out, pm)
		}
	}

	one := from.Add(fwd)
	if one.In(b.Size) && b.At(one).IsEmpty() {
		add(Move{From: from, To: one})
		if from.Row == b.pawnStartRow(c) {
			two := one.Add(fwd)
			if two.In(b.Size) && b.At(two).IsEmpty() {
				add(Move{From: from, To: two})
			}
		}
	}

	for _, dc := range []int{-1, +1} {
		to := from.Add(Square{Row: fwd.Row, Col: dc})
		if !to.In(b.Size) {
			continue
		}
		pc := b.At(to)
		if pc.isEnemy(c) {
			add(Move{From: from, To: to, Capture: true})
			continue
		}
		if pc.IsEmpty() && b.EnPassant.Valid() && to == b.EnPassant {
			// 被吃的兵在 from 行、to 列
			victim := b.At(Square{Row: from.Row, Col: to.Col})
			if victim.Kind == KindPawn && victim.Color != c {
				out = append(out, Move{From: from, To: to, Capture: true, EnPassant: true})
			}
		}
	}
	return out
}

// Attacks 兵只攻击斜前方两格，不管上面有没有子。
func (pawnMovement) Attacks(b *Board, from Square, c Color, out []Square) []Square {
	for _, dc := range []int{-1, +1} {
		to := from.Add(Square{Row: c.Forward(), Col: dc})
		if to.In(b.Size) {
			out = append(out, to)
		}
	}
	return out
}
