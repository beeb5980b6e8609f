package fairy

// Board 是 size×size 的扁平格子数组加过路兵目标格。
// 复制时只做一次切片拷贝，棋子本身是值。
type Board struct {
	Size      int
	EnPassant Square // 只在双步兵之后的那一手有效

	squares []Piece
	variant *Variant
}

func NewBoard(size int, v *Variant) *Board {
	return &Board{
		Size:      size,
		EnPassant: NoSquare,
		squares:   make([]Piece, size*size),
		variant:   v,
	}
}

func (b *Board) indexOf(sq Square) int { return sq.Row*b.Size + sq.Col }

// At 越界返回空格。
func (b *Board) At(sq Square) Piece {
	if !sq.In(b.Size) {
		return Piece{}
	}
	return b.squares[b.indexOf(sq)]
}

// Set 越界时什么也不做。
func (b *Board) Set(sq Square, p Piece) {
	if !sq.In(b.Size) {
		return
	}
	b.squares[b.indexOf(sq)] = p
}

func (b *Board) Remove(sq Square) Piece {
	if !sq.In(b.Size) {
		return Piece{}
	}
	i := b.indexOf(sq)
	p := b.squares[i]
	b.squares[i] = Piece{}
	return p
}

func (b *Board) Variant() *Variant { return b.variant }

func (b *Board) Copy() *Board {
	nb := *b
	nb.squares = make([]Piece, len(b.squares))
	copy(nb.squares, b.squares)
	return &nb
}

// Apply 在格子层面执行走法：处理吃过路兵、易位移车、升变，标记已动，并重算过路兵格。
// 返回被吃掉的子以及它原来所在的格子（过路兵时不是 m.To）。
func (b *Board) Apply(m Move) (Piece, Square) {
	pc := b.Remove(m.From)
	capturedAt := m.To
	if m.EnPassant {
		capturedAt = Square{Row: m.From.Row, Col: m.To.Col}
	}
	captured := b.Remove(capturedAt)

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m, b.Size)
		rook := b.Remove(rookFrom)
		rook.Moved = true
		b.Set(rookTo, rook)
	}

	if m.Promotion != KindNone {
		pc.Kind = m.Promotion
	}
	pc.Moved = true
	b.Set(m.To, pc)

	b.EnPassant = NoSquare
	if pc.Kind == KindPawn && abs(m.To.Row-m.From.Row) == 2 {
		b.EnPassant = Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}
	return captured, capturedAt
}

// Pieces 返回 c 方所有棋子所在格，按行列顺序。
func (b *Board) Pieces(c Color) []Square {
	var out []Square
	for i, pc := range b.squares {
		if !pc.IsEmpty() && pc.Color == c {
			out = append(out, Square{Row: i / b.Size, Col: i % b.Size})
		}
	}
	return out
}

// PseudoLegalMoves 不考虑自己王是否被将军。
func (b *Board) PseudoLegalMoves(from Square) []Move {
	pc := b.At(from)
	if pc.IsEmpty() {
		return nil
	}
	return pc.Info().Move.Moves(b, from, pc.Color, nil)
}

func (b *Board) AttackedSquares(from Square) []Square {
	pc := b.At(from)
	if pc.IsEmpty() {
		return nil
	}
	return pc.Info().Move.Attacks(b, from, pc.Color, nil)
}

func (b *Board) variantOrDefault() *Variant {
	if b.variant != nil {
		return b.variant
	}
	return &defaultVariant
}

func (b *Board) pawnStartRow(c Color) int {
	if rows := b.variantOrDefault().PawnRows; rows != nil {
		return rows[c]
	}
	if c == White {
		return b.Size - 2
	}
	return 1
}

func (b *Board) promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return b.Size - 1
}

func (b *Board) promotions() []PieceKind { return b.variantOrDefault().Promotions }

func (b *Board) castling() bool { return b.variantOrDefault().Castling }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
