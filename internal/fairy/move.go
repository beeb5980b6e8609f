package fairy

import "strings"

type Move struct {
	From      Square
	To        Square
	Capture   bool
	Castle    bool
	EnPassant bool
	Promotion PieceKind // KindNone 表示不升变
}

// Equal 以 (from, to, promotion) 作为匹配键，标志位由走法生成决定。
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) IsZero() bool { return m == Move{} }

// Coord 坐标记法，如 e2e4、a7a8q、j9j10c。
func (m Move) Coord(size int) string {
	var sb strings.Builder
	sb.WriteString(m.From.Notation(size))
	sb.WriteString(m.To.Notation(size))
	if m.Promotion != KindNone {
		sb.WriteByte(m.Promotion.Info().Code + ('a' - 'A'))
	}
	return sb.String()
}

// ParseCoord 解析坐标记法。只解析格子和升变子，标志位由 Game 匹配合法走法后补齐。
func ParseCoord(text string, size int) (Move, error) {
	text = strings.TrimSpace(text)
	// 行号可能是两位数，按“字母+数字”切分
	split := func(s string) (string, string) {
		i := 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return s[:i], s[i:]
	}
	a, rest := split(text)
	if rest == "" {
		return Move{}, ErrIllegalMove
	}
	b, tail := split(rest)
	from, err := ParseSquare(a, size)
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(b, size)
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if tail != "" {
		if len(tail) != 1 {
			return Move{}, ErrIllegalMove
		}
		kind, err := KindByCode(tail[0])
		if err != nil {
			return Move{}, err
		}
		m.Promotion = kind
	}
	return m, nil
}
