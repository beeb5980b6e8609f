package fairy

import "fmt"

// KindInfo 描述一个棋子种类：记法字母、名称、子力价值和走法能力。
type KindInfo struct {
	Kind  PieceKind
	Code  byte // 大写字母
	Name  string
	Value int
	Royal bool // 被将死即输的子
	Minor bool // 单个轻子不足以将杀
	Move  Movement
}

var (
	rookMove   = Slide{Dirs: orthogonal}
	bishopMove = Slide{Dirs: diagonal}
	queenMove  = Slide{Dirs: allDirs}
	knightMove = Leap{Offsets: knightJump}
)

var kindInfos = [numKinds]KindInfo{
	KindKing:   {Code: 'K', Name: "King", Royal: true, Move: royalMovement{Step: Leap{Offsets: allDirs}, Castle: true}},
	KindQueen:  {Code: 'Q', Name: "Queen", Value: 900, Move: queenMove},
	KindRook:   {Code: 'R', Name: "Rook", Value: 500, Move: rookMove},
	KindBishop: {Code: 'B', Name: "Bishop", Value: 330, Minor: true, Move: bishopMove},
	KindKnight: {Code: 'N', Name: "Knight", Value: 320, Minor: true, Move: knightMove},
	KindPawn:   {Code: 'P', Name: "Pawn", Value: 100, Move: pawnMovement{}},

	KindMarshal:  {Code: 'M', Name: "Marshal", Value: 850, Move: Union{rookMove, knightMove}},
	KindCardinal: {Code: 'C', Name: "Cardinal", Value: 800, Move: Union{bishopMove, knightMove}},
	KindAmazon:   {Code: 'A', Name: "Amazon", Value: 1200, Move: Union{queenMove, knightMove}},
	KindChampion: {Code: 'H', Name: "Champion", Value: 450,
		Move: Leap{Offsets: concat(orthogonal, scaled(orthogonal, 2, 2), scaled(diagonal, 2, 2))}},
	KindWizard: {Code: 'W', Name: "Wizard", Value: 400, Move: Leap{Offsets: concat(diagonal, camelJump)}},
	KindFalcon: {Code: 'F', Name: "Falcon", Value: 550, Move: Split{Forward: bishopMove, Backward: rookMove}},
	KindHunter: {Code: 'U', Name: "Hunter", Value: 550, Move: Split{Forward: rookMove, Backward: bishopMove}},

	KindChief:    {Code: 'J', Name: "Chief", Royal: true, Move: royalMovement{Step: Slide{Dirs: allDirs, Max: 3}}},
	KindPrincess: {Code: 'S', Name: "Princess", Value: 600, Move: Leap{Offsets: scaled(allDirs, 1, 3)}},
	KindFlier:    {Code: 'L', Name: "Flier", Value: 350, Move: Leap{Offsets: scaled(diagonal, 1, 3)}},
	KindDwar:     {Code: 'D', Name: "Dwar", Value: 400, Move: Slide{Dirs: orthogonal, Max: 3}},
	KindPadwar:   {Code: 'E', Name: "Padwar", Value: 250, Move: Slide{Dirs: diagonal, Max: 2}},
	KindWarrior:  {Code: 'G', Name: "Warrior", Value: 250, Move: Slide{Dirs: orthogonal, Max: 2}},
	KindThoat:    {Code: 'T', Name: "Thoat", Value: 300, Move: knightMove},
	KindPanthan: {Code: 'Y', Name: "Panthan", Value: 100,
		Move: Union{Split{Forward: Leap{Offsets: allDirs}}, Leap{Offsets: []Square{{0, -1}, {0, +1}}}}},
}

var codeToKind = map[byte]PieceKind{}

func init() {
	for k := KindKing; k < numKinds; k++ {
		kindInfos[k].Kind = k
		codeToKind[kindInfos[k].Code] = k
	}
}

func (k PieceKind) Info() *KindInfo {
	if k <= KindNone || k >= numKinds {
		return &kindInfos[KindNone]
	}
	return &kindInfos[k]
}

func (k PieceKind) String() string {
	if k <= KindNone || k >= numKinds {
		return "none"
	}
	return kindInfos[k].Name
}

// KindByCode 按记法字母查棋子种类，大小写均可。
func KindByCode(code byte) (PieceKind, error) {
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	k, ok := codeToKind[code]
	if !ok {
		return KindNone, fmt.Errorf("%w: %q", ErrUnknownPiece, code)
	}
	return k, nil
}

// PieceByCode 大写为白，小写为黑。
func PieceByCode(code byte) (Piece, error) {
	k, err := KindByCode(code)
	if err != nil {
		return Piece{}, err
	}
	c := White
	if code >= 'a' && code <= 'z' {
		c = Black
	}
	return NewPiece(k, c), nil
}
