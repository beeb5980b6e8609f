package fairy

// Movement 是一个棋子种类的走法能力。
// Moves 追加伪合法走法；Attacks 追加被攻击的格子（对兵来说与可落点不同）。
type Movement interface {
	Moves(b *Board, from Square, c Color, out []Move) []Move
	Attacks(b *Board, from Square, c Color, out []Square) []Square
}

var (
	orthogonal = []Square{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	diagonal   = []Square{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
	allDirs    = append(append([]Square{}, orthogonal...), diagonal...)
	knightJump = []Square{
		{-2, -1}, {-2, +1}, {-1, -2}, {-1, +2},
		{+1, -2}, {+1, +2}, {+2, -1}, {+2, +1},
	}
	camelJump = []Square{
		{-3, -1}, {-3, +1}, {-1, -3}, {-1, +3},
		{+1, -3}, {+1, +3}, {+3, -1}, {+3, +1},
	}
)

// scaled 把每个方向按 1..n 倍展开，得到跳跃偏移集合。
func scaled(dirs []Square, from, to int) []Square {
	out := make([]Square, 0, len(dirs)*(to-from+1))
	for k := from; k <= to; k++ {
		for _, d := range dirs {
			out = append(out, d.Scale(k))
		}
	}
	return out
}

func concat(sets ...[]Square) []Square {
	var out []Square
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// Slide 沿方向一直走：遇己方子停在前一格，遇敌子吃掉后停。Max 为 0 表示不限步数。
type Slide struct {
	Dirs []Square
	Max  int
}

func (s Slide) Moves(b *Board, from Square, c Color, out []Move) []Move {
	for _, d := range s.Dirs {
		to := from.Add(d)
		for step := 1; to.In(b.Size); step++ {
			if s.Max > 0 && step > s.Max {
				break
			}
			pc := b.At(to)
			if pc.IsEmpty() {
				out = append(out, Move{From: from, To: to})
			} else {
				if pc.Color != c {
					out = append(out, Move{From: from, To: to, Capture: true})
				}
				break
			}
			to = to.Add(d)
		}
	}
	return out
}

func (s Slide) Attacks(b *Board, from Square, c Color, out []Square) []Square {
	for _, d := range s.Dirs {
		to := from.Add(d)
		for step := 1; to.In(b.Size); step++ {
			if s.Max > 0 && step > s.Max {
				break
			}
			pc := b.At(to)
			if pc.IsEmpty() {
				out = append(out, to)
			} else {
				if pc.Color != c {
					out = append(out, to)
				}
				break
			}
			to = to.Add(d)
		}
	}
	return out
}

// Leap 固定偏移跳跃，不受中间棋子阻挡。
type Leap struct {
	Offsets []Square
}

func (l Leap) Moves(b *Board, from Square, c Color, out []Move) []Move {
	for _, d := range l.Offsets {
		to := from.Add(d)
		if !to.In(b.Size) {
			continue
		}
		pc := b.At(to)
		if pc.IsEmpty() {
			out = append(out, Move{From: from, To: to})
		} else if pc.Color != c {
			out = append(out, Move{From: from, To: to, Capture: true})
		}
	}
	return out
}

func (l Leap) Attacks(b *Board, from Square, c Color, out []Square) []Square {
	for _, d := range l.Offsets {
		to := from.Add(d)
		if !to.In(b.Size) {
			continue
		}
		if pc := b.At(to); pc.IsEmpty() || pc.Color != c {
			out = append(out, to)
		}
	}
	return out
}

// Union 复合棋子：多个走法能力的并集。
type Union []Movement

func (u Union) Moves(b *Board, from Square, c Color, out []Move) []Move {
	for _, m := range u {
		out = m.Moves(b, from, c, out)
	}
	return out
}

func (u Union) Attacks(b *Board, from Square, c Color, out []Square) []Square {
	for _, m := range u {
		out = m.Attacks(b, from, c, out)
	}
	return out
}

// Split 方向不对称棋子：朝己方前进方向用 Forward，后退用 Backward，横向两者都不取。
// 任一侧可以为 nil。
type Split struct {
	Forward  Movement
	Backward Movement
}

func towards(from, to Square, c Color) int {
	return (to.Row - from.Row) * c.Forward()
}

func (s Split) Moves(b *Board, from Square, c Color, out []Move) []Move {
	if s.Forward != nil {
		n := len(out)
		out = s.Forward.Moves(b, from, c, out)
		out = keepMoves(out, n, func(m Move) bool { return towards(from, m.To, c) > 0 })
	}
	if s.Backward != nil {
		n := len(out)
		out = s.Backward.Moves(b, from, c, out)
		out = keepMoves(out, n, func(m Move) bool { return towards(from, m.To, c) < 0 })
	}
	return out
}

func (s Split) Attacks(b *Board, from Square, c Color, out []Square) []Square {
	if s.Forward != nil {
		n := len(out)
		out = s.Forward.Attacks(b, from, c, out)
		out = keepSquares(out, n, func(to Square) bool { return towards(from, to, c) > 0 })
	}
	if s.Backward != nil {
		n := len(out)
		out = s.Backward.Attacks(b, from, c, out)
		out = keepSquares(out, n, func(to Square) bool { return towards(from, to, c) < 0 })
	}
	return out
}

// keepMoves 原地过滤 out[start:]，前面已有的走法不动。
func keepMoves(out []Move, start int, keep func(Move) bool) []Move {
	j := start
	for i := start; i < len(out); i++ {
		if keep(out[i]) {
			out[j] = out[i]
			j++
		}
	}
	return out[:j]
}

func keepSquares(out []Square, start int, keep func(Square) bool) []Square {
	j := start
	for i := start; i < len(out); i++ {
		if keep(out[i]) {
			out[j] = out[i]
			j++
		}
	}
	return out[:j]
}
