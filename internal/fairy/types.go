package fairy

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// Forward 前进方向（行增量）：白向上(-1)，黑向下(+1)
func (c Color) Forward() int {
	switch c {
	case White:
		return -1
	case Black:
		return +1
	}
	return 0
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type PieceKind int8

const (
	KindNone PieceKind = iota
	KindKing
	KindQueen
	KindRook
	KindBishop
	KindKnight
	KindPawn
	KindMarshal  // 车+马
	KindCardinal // 象+马
	KindAmazon   // 后+马
	KindChampion
	KindWizard
	KindFalcon // 前象后车
	KindHunter // 前车后象
	KindChief  // Jetan 王
	KindPrincess
	KindFlier
	KindDwar
	KindPadwar
	KindWarrior
	KindThoat
	KindPanthan

	numKinds
)

// Piece 是棋盘格上的小值对象，零值表示空格。
type Piece struct {
	Kind  PieceKind
	Color Color
	Moved bool
}

func NewPiece(kind PieceKind, c Color) Piece {
	return Piece{Kind: kind, Color: c}
}

func (p Piece) IsEmpty() bool { return p.Kind == KindNone }

// Copy 棋子本身是值类型，复制即独立。
func (p Piece) Copy() Piece { return p }

func (p Piece) Info() *KindInfo { return p.Kind.Info() }

func (p Piece) Name() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Kind.Info().Name
}

func (p Piece) Value() int {
	if p.IsEmpty() {
		return 0
	}
	return p.Kind.Info().Value
}

// Code 白方大写、黑方小写；空格返回 0。
func (p Piece) Code() byte {
	if p.IsEmpty() {
		return 0
	}
	c := p.Kind.Info().Code
	if p.Color == Black {
		return c + ('a' - 'A')
	}
	return c
}

func (p Piece) isEnemy(c Color) bool {
	return !p.IsEmpty() && p.Color != c
}
