package fairy

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Variant 是外部提供的变体定义：棋盘大小、初始摆放、升变选择。
type Variant struct {
	Name       string
	Size       int
	Layout     string // FEN 摆放段，白方在下
	Promotions []PieceKind
	Castling   bool
	PawnRows   []int // 兵的起始行 [白, 黑]；nil 表示倒数第二行和第二行
}

var defaultVariant = Variant{
	Name:       "standard",
	Size:       8,
	Layout:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	Promotions: []PieceKind{KindQueen, KindRook, KindBishop, KindKnight},
	Castling:   true,
}

var variants = map[string]*Variant{
	"standard": &defaultVariant,
	"amazon": {
		Name:       "amazon",
		Size:       8,
		Layout:     "rnbakbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBAKBNR",
		Promotions: []PieceKind{KindAmazon, KindRook, KindBishop, KindKnight},
		Castling:   true,
	},
	"capablanca": {
		Name:       "capablanca",
		Size:       10,
		Layout:     "rncbqkbmnr/pppppppppp/10/10/10/10/10/10/PPPPPPPPPP/RNCBQKBMNR",
		Promotions: []PieceKind{KindQueen, KindMarshal, KindCardinal, KindRook, KindBishop, KindKnight},
		Castling:   true,
	},
	"omega": {
		Name:       "omega",
		Size:       10,
		Layout:     "rnwbqkbhnr/pppppppppp/10/10/10/10/10/10/PPPPPPPPPP/RNWBQKBHNR",
		Promotions: []PieceKind{KindQueen, KindRook, KindBishop, KindKnight, KindChampion, KindWizard},
		Castling:   true,
	},
	"falcon": {
		Name:       "falcon",
		Size:       10,
		Layout:     "rnbfqkubnr/pppppppppp/10/10/10/10/10/10/PPPPPPPPPP/RNBFQKUBNR",
		Promotions: []PieceKind{KindQueen, KindFalcon, KindHunter, KindRook, KindBishop, KindKnight},
		Castling:   true,
	},
	"jetan": {
		Name:   "jetan",
		Size:   10,
		Layout: "gedljsldeg/tyyyyyyyyt/10/10/10/10/10/10/TYYYYYYYYT/GEDLJSLDEG",
	},
}

// LookupVariant 按名字查变体。
func LookupVariant(name string) (*Variant, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

func VariantNames() []string {
	names := maps.Keys(variants)
	sort.Strings(names)
	return names
}

// RegisterVariant 在加入目录前先摆一遍棋盘，布局有未知棋子时直接报错。
func RegisterVariant(v *Variant) error {
	if v.Size < 8 || v.Size > 10 {
		return fmt.Errorf("variant %q: board size %d out of range", v.Name, v.Size)
	}
	if _, err := v.Setup(); err != nil {
		return fmt.Errorf("variant %q: %w", v.Name, err)
	}
	variants[v.Name] = v
	return nil
}

// Setup 按布局摆出初始棋盘。
func (v *Variant) Setup() (*Board, error) {
	return parsePlacement(v.Layout, v.Size, v)
}

func (v *Variant) SquareLight(sq Square) bool { return sq.Light(v.Size) }

// NewGame 按变体名开新局。
func NewGame(name string) (*Game, error) {
	v, err := LookupVariant(name)
	if err != nil {
		return nil, err
	}
	return NewGameFromVariant(v)
}

func NewGameFromVariant(v *Variant) (*Game, error) {
	b, err := v.Setup()
	if err != nil {
		return nil, err
	}
	g := newGame(v, b, White)
	g.updateResult()
	return g, nil
}

func MustNewGame(name string) *Game {
	g, err := NewGame(name)
	if err != nil {
		panic(err)
	}
	return g
}
