package fairy

import (
	"fmt"
	"strconv"
	"strings"
)

// castlingRights 依次为 K Q k q：王未动且同一行对应角落的车未动。
func (b *Board) castlingRights() [4]bool {
	var rights [4]bool
	if !b.castling() {
		return rights
	}
	for _, c := range []Color{White, Black} {
		king, ok := b.findUnmovedKing(c)
		if !ok {
			continue
		}
		for i, col := range []int{b.Size - 1, 0} {
			rook := b.At(Square{Row: king.Row, Col: col})
			if rook.Kind == KindRook && rook.Color == c && !rook.Moved {
				rights[int(c)*2+i] = true
			}
		}
	}
	return rights
}

func (b *Board) findUnmovedKing(c Color) (Square, bool) {
	for i, pc := range b.squares {
		if pc.Kind == KindKing && pc.Color == c && !pc.Moved {
			return Square{Row: i / b.Size, Col: i % b.Size}, true
		}
	}
	return NoSquare, false
}

// placement 行从上到下用“/”隔开，空格数用十进制数字压缩（10x10 时可能是 10）。
func (b *Board) placement() string {
	var sb strings.Builder
	for r := 0; r < b.Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < b.Size; c++ {
			pc := b.At(Square{Row: r, Col: c})
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Code())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

// parsePlacement 解析棋子摆放部分，未知字母返回 ErrUnknownPiece。
func parsePlacement(text string, size int, v *Variant) (*Board, error) {
	rows := strings.Split(text, "/")
	if len(rows) != size {
		return nil, fmt.Errorf("%w: %d rows for a %dx%d board", ErrInvalidFEN, len(rows), size, size)
	}
	b := NewBoard(size, v)
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '0' && ch <= '9' {
				j := i
				for j < len(row) && row[j] >= '0' && row[j] <= '9' {
					j++
				}
				n, _ := strconv.Atoi(row[i:j])
				c += n
				i = j - 1
				continue
			}
			pc, err := PieceByCode(ch)
			if err != nil {
				return nil, err
			}
			if c >= size {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidFEN, r+1)
			}
			b.Set(Square{Row: r, Col: c}, pc)
			c++
		}
		if c != size {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidFEN, r+1, c)
		}
	}
	return b, nil
}

// Position 广义 FEN：摆放、走子方、易位权、过路兵格、半回合计数、回合数。
func (g *Game) Position() string {
	var sb strings.Builder
	sb.WriteString(g.Board.placement())
	sb.WriteByte(' ')
	if g.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	rights := g.Board.castlingRights()
	some := false
	for i, letter := range "KQkq" {
		if rights[i] {
			sb.WriteRune(letter)
			some = true
		}
	}
	if !some {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.Board.EnPassant.Notation(g.Board.Size))
	fmt.Fprintf(&sb, " %d %d", g.HalfMove, g.FullMove)
	return sb.String()
}

// ParsePosition 从广义 FEN 建立对局。缺省的计数字段按 0 和 1 处理。
// 已动标志根据易位权和兵的起始行推断。
func ParsePosition(v *Variant, fen string) (*Game, error) {
	if v == nil {
		v = &defaultVariant
	}
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	b, err := parsePlacement(parts[0], v.Size, v)
	if err != nil {
		return nil, err
	}

	var turn Color
	switch parts[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}

	rights := "-"
	if len(parts) > 2 {
		rights = parts[2]
	}
	markMoved(b, rights)

	if len(parts) > 3 && parts[3] != "-" {
		ep, err := ParseSquare(parts[3], v.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
		b.EnPassant = ep
	}

	half, full := 0, 1
	if len(parts) > 4 {
		if half, err = strconv.Atoi(parts[4]); err != nil {
			return nil, fmt.Errorf("%w: half-move clock %q", ErrInvalidFEN, parts[4])
		}
	}
	if len(parts) > 5 {
		if full, err = strconv.Atoi(parts[5]); err != nil {
			return nil, fmt.Errorf("%w: full-move number %q", ErrInvalidFEN, parts[5])
		}
	}

	g := newGame(v, b, turn)
	g.HalfMove = half
	g.FullMove = full
	g.startFEN = fen
	g.updateResult()
	return g, nil
}

func markMoved(b *Board, rights string) {
	for i, pc := range b.squares {
		if pc.IsEmpty() {
			continue
		}
		sq := Square{Row: i / b.Size, Col: i % b.Size}
		switch pc.Kind {
		case KindPawn:
			pc.Moved = sq.Row != b.pawnStartRow(pc.Color)
		case KindKing:
			k, q := castleLetters(pc.Color)
			pc.Moved = !strings.ContainsRune(rights, k) && !strings.ContainsRune(rights, q)
		case KindRook:
			k, q := castleLetters(pc.Color)
			switch sq.Col {
			case b.Size - 1:
				pc.Moved = !strings.ContainsRune(rights, k)
			case 0:
				pc.Moved = !strings.ContainsRune(rights, q)
			default:
				pc.Moved = true
			}
		}
		b.squares[i] = pc
	}
}

func castleLetters(c Color) (rune, rune) {
	if c == White {
		return 'K', 'Q'
	}
	return 'k', 'q'
}
