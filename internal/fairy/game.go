package fairy

import "fmt"

type Result int8

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
	Stalemate
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "white_wins"
	case BlackWins:
		return "black_wins"
	case Draw:
		return "draw"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Code 棋谱结果记号。
func (r Result) Code() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw, Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

func (r Result) Winner() Color {
	switch r {
	case WhiteWins:
		return White
	case BlackWins:
		return Black
	}
	return NoColor
}

// record 撤销一步所需的全部信息。
type record struct {
	Move       Move
	Piece      Piece // 走之前的棋子：原“已动”标志、升变前种类
	Captured   Piece
	CapturedAt Square
	EnPassant  Square
	HalfMove   int
	FullMove   int
	SAN        string
}

// Game 是一局棋的权威状态。推演时一律在 Copy/Child 上进行。
type Game struct {
	Variant  *Variant
	Board    *Board
	Turn     Color
	HalfMove int // 吃子或走兵清零，满 100 判和
	FullMove int // 黑方走完后加一
	Captures [2][]Piece
	Tags     map[string]string

	history  []record
	result   Result
	startFEN string
	legal    []Move // 当前走子方的合法走法缓存
}

func newGame(v *Variant, b *Board, turn Color) *Game {
	return &Game{
		Variant:  v,
		Board:    b,
		Turn:     turn,
		FullMove: 1,
		Tags:     map[string]string{},
	}
}

func (g *Game) Result() Result { return g.result }

func (g *Game) Winner() Color { return g.result.Winner() }

func (g *Game) IsOver() bool { return g.result != Ongoing }

func (g *Game) IsInCheck() bool { return g.Board.IsInCheck(g.Turn) }

func (g *Game) Hash() uint64 { return g.Board.Hash(g.Turn) }

// LegalMoves 当前走子方的合法走法；终局后为空。
func (g *Game) LegalMoves() []Move {
	if g.result != Ongoing {
		return nil
	}
	return g.legal
}

// LegalMovesFrom 给界面高亮用。
func (g *Game) LegalMovesFrom(sq Square) []Move {
	var out []Move
	for _, m := range g.LegalMoves() {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}

func (g *Game) Moves() []Move {
	out := make([]Move, len(g.history))
	for i, r := range g.history {
		out[i] = r.Move
	}
	return out
}

func (g *Game) CanUndo() bool { return len(g.history) > 0 }

// MakeMove 校验并执行一步。失败时不改动任何状态。
// 走法按 (from, to, promotion) 匹配，标志位取自生成的合法走法。
func (g *Game) MakeMove(m Move) error {
	if g.result != Ongoing {
		return ErrGameOver
	}
	pc := g.Board.At(m.From)
	if pc.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrNoPiece, m.From.Notation(g.Board.Size))
	}
	if pc.Color != g.Turn {
		return fmt.Errorf("%w: %s to move", ErrWrongTurn, g.Turn)
	}
	for _, lm := range g.legal {
		if lm.Equal(m) {
			g.apply(lm, g.san(lm))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, m.Coord(g.Board.Size))
}

// Preview 在副本上试走一步，不影响本局。
func (g *Game) Preview(m Move) (*Game, error) {
	c := g.Copy()
	if err := c.MakeMove(m); err != nil {
		return nil, err
	}
	return c, nil
}

// Child 搜索用：复制棋盘走一步，不记历史、不校验合法性。m 必须来自 LegalMoves。
func (g *Game) Child(m Move) *Game {
	c := &Game{
		Variant:  g.Variant,
		Board:    g.Board.Copy(),
		Turn:     g.Turn,
		HalfMove: g.HalfMove,
		FullMove: g.FullMove,
	}
	c.apply(m, "")
	return c
}

// apply 执行已知合法的走法。san 为空时不记录历史（搜索子节点）。
func (g *Game) apply(m Move, san string) {
	b := g.Board
	pc := b.At(m.From)
	rec := record{
		Move:      m,
		Piece:     pc,
		EnPassant: b.EnPassant,
		HalfMove:  g.HalfMove,
		FullMove:  g.FullMove,
	}

	captured, at := b.Apply(m)
	rec.Captured, rec.CapturedAt = captured, at

	if !captured.IsEmpty() && san != "" {
		g.Captures[pc.Color] = append(g.Captures[pc.Color], captured)
	}
	if !captured.IsEmpty() || pc.Kind == KindPawn {
		g.HalfMove = 0
	} else {
		g.HalfMove++
	}
	if g.Turn == Black {
		g.FullMove++
	}
	g.Turn = g.Turn.Opponent()
	g.updateResult()

	if san == "" {
		return
	}
	switch {
	case g.result == WhiteWins || g.result == BlackWins:
		san += "#"
	case g.Board.IsInCheck(g.Turn):
		san += "+"
	}
	rec.SAN = san
	g.history = append(g.history, rec)
}

// Undo 撤销最后一步，结果总是回到进行中。
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrNoHistory
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	b := g.Board
	m := rec.Move
	b.Remove(m.To)
	b.Set(m.From, rec.Piece)
	if !rec.Captured.IsEmpty() {
		b.Set(rec.CapturedAt, rec.Captured)
		list := g.Captures[rec.Piece.Color]
		if n := len(list); n > 0 {
			g.Captures[rec.Piece.Color] = list[:n-1]
		}
	}
	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m, b.Size)
		rook := b.Remove(rookTo)
		rook.Moved = false
		b.Set(rookFrom, rook)
	}
	b.EnPassant = rec.EnPassant

	g.Turn = rec.Piece.Color
	g.HalfMove = rec.HalfMove
	g.FullMove = rec.FullMove
	g.result = Ongoing
	g.legal = b.AllLegalMoves(g.Turn)
	return nil
}

// updateResult 每步之后重算终局状态，这是 result 唯一的写入点（Undo 除外）。
func (g *Game) updateResult() {
	g.legal = g.Board.AllLegalMoves(g.Turn)
	switch {
	case len(g.legal) == 0 && g.Board.IsInCheck(g.Turn):
		if g.Turn == White {
			g.result = BlackWins
		} else {
			g.result = WhiteWins
		}
	case len(g.legal) == 0:
		g.result = Stalemate
	case g.HalfMove >= 100:
		g.result = Draw
	case g.Board.insufficientMaterial():
		g.result = Draw
	default:
		g.result = Ongoing
	}
}

// insufficientMaterial 只剩王，或王加一个轻子对王。
func (b *Board) insufficientMaterial() bool {
	minors := 0
	for _, pc := range b.squares {
		if pc.IsEmpty() || pc.Info().Royal {
			continue
		}
		if !pc.Info().Minor {
			return false
		}
		minors++
		if minors > 1 {
			return false
		}
	}
	return true
}

// Copy 深拷贝棋盘，历史和吃子列表按值复制。
func (g *Game) Copy() *Game {
	c := *g
	c.Board = g.Board.Copy()
	c.history = append([]record(nil), g.history...)
	c.legal = append([]Move(nil), g.legal...)
	for i := range g.Captures {
		c.Captures[i] = append([]Piece(nil), g.Captures[i]...)
	}
	c.Tags = make(map[string]string, len(g.Tags))
	for k, v := range g.Tags {
		c.Tags[k] = v
	}
	return &c
}
