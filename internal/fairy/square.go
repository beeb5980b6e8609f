package fairy

import (
	"fmt"
	"strconv"
)

// Square 既表示格子 (row, col)，也表示方向向量。
// row 0 是黑方底线（最上方），白方从最后一行出发。
type Square struct {
	Row int
	Col int
}

var NoSquare = Square{Row: -1, Col: -1}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Add(d Square) Square { return Square{s.Row + d.Row, s.Col + d.Col} }

func (s Square) Sub(d Square) Square { return Square{s.Row - d.Row, s.Col - d.Col} }

func (s Square) Scale(k int) Square { return Square{s.Row * k, s.Col * k} }

func (s Square) In(size int) bool {
	return s.Row >= 0 && s.Row < size && s.Col >= 0 && s.Col < size
}

func (s Square) Valid() bool { return s != NoSquare }

// Light 棋盘格颜色：左下角 a1 为深色。
func (s Square) Light(size int) bool {
	return (size-1-s.Row+s.Col)%2 == 1
}

// Notation 文件字母 + 从 1 开始的行号，10x10 时行号可以是两位数。
func (s Square) Notation(size int) string {
	if !s.In(size) {
		return "-"
	}
	return string(rune('a'+s.Col)) + strconv.Itoa(size-s.Row)
}

func (s Square) File() byte { return byte('a' + s.Col) }

func ParseSquare(text string, size int) (Square, error) {
	if len(text) < 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	col := int(text[0]) - 'a'
	rank, err := strconv.Atoi(text[1:])
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	sq := Square{Row: size - rank, Col: col}
	if !sq.In(size) {
		return NoSquare, fmt.Errorf("%w: %q off a %dx%d board", ErrInvalidSquare, text, size, size)
	}
	return sq, nil
}
