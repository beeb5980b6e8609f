package fairy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// san 生成走之前的代数记法（不含 +/#）。m 必须是当前合法走法。
func (g *Game) san(m Move) string {
	if m.Castle {
		if m.To.Col > m.From.Col {
			return "O-O"
		}
		return "O-O-O"
	}
	b := g.Board
	size := b.Size
	pc := b.At(m.From)

	var sb strings.Builder
	if pc.Kind != KindPawn {
		sb.WriteByte(pc.Info().Code)
		ambiguous, sameFile, sameRank := false, false, false
		for _, o := range g.legal {
			if o.To != m.To || o.From == m.From || b.At(o.From).Kind != pc.Kind {
				continue
			}
			ambiguous = true
			if o.From.Col == m.From.Col {
				sameFile = true
			}
			if o.From.Row == m.From.Row {
				sameRank = true
			}
		}
		if ambiguous {
			switch {
			case !sameFile:
				sb.WriteByte(m.From.File())
			case !sameRank:
				sb.WriteString(strconv.Itoa(size - m.From.Row))
			default:
				sb.WriteString(m.From.Notation(size))
			}
		}
	} else if m.Capture {
		sb.WriteByte(m.From.File())
	}
	if m.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.Notation(size))
	if m.Promotion != KindNone {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Info().Code)
	}
	return sb.String()
}

// SAN 返回已走各步的代数记法。
func (g *Game) SAN() []string {
	out := make([]string, len(g.history))
	for i, r := range g.history {
		out[i] = r.SAN
	}
	return out
}

var rosterTags = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Record 导出完整棋谱：标签头、编号走法、结果记号。Tags 中的同名标签覆盖默认值。
// 对局未结束时可以用 Tags["Result"] 写入裁定结果；已结束的对局总是用实际结果。
func (g *Game) Record() string {
	size := g.Board.Size
	tags := map[string]string{
		"Event":     "Casual game",
		"Site":      "?",
		"Date":      "????.??.??",
		"Round":     "?",
		"White":     "?",
		"Black":     "?",
		"Variant":   g.variantName(),
		"BoardSize": fmt.Sprintf("%dx%d", size, size),
	}
	if g.startFEN != "" {
		tags["SetUp"] = "1"
		tags["FEN"] = g.startFEN
	}
	for k, v := range g.Tags {
		tags[k] = v
	}
	result := g.result.Code()
	if adj, ok := g.Tags["Result"]; ok && g.result == Ongoing {
		result = adj
	}
	tags["Result"] = result

	var sb strings.Builder
	written := map[string]bool{}
	writeTag := func(k string) {
		if v, ok := tags[k]; ok && !written[k] {
			fmt.Fprintf(&sb, "[%s %q]\n", k, v)
			written[k] = true
		}
	}
	for _, k := range rosterTags {
		writeTag(k)
	}
	for _, k := range []string{"Variant", "BoardSize", "SetUp", "FEN"} {
		writeTag(k)
	}
	rest := make([]string, 0, len(tags))
	for k := range tags {
		if !written[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		writeTag(k)
	}
	sb.WriteByte('\n')

	var tokens []string
	for i, r := range g.history {
		if r.Piece.Color == White {
			tokens = append(tokens, strconv.Itoa(r.FullMove)+".")
		} else if i == 0 {
			tokens = append(tokens, strconv.Itoa(r.FullMove)+"...")
		}
		tokens = append(tokens, r.SAN)
	}
	tokens = append(tokens, result)

	// 每行不超过 80 字符
	line := 0
	for i, t := range tokens {
		if i > 0 {
			if line+1+len(t) > 80 {
				sb.WriteByte('\n')
				line = 0
			} else {
				sb.WriteByte(' ')
				line++
			}
		}
		sb.WriteString(t)
		line += len(t)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (g *Game) variantName() string {
	if g.Variant == nil {
		return "standard"
	}
	return g.Variant.Name
}

// Perft 统计 depth 层内的叶子节点数，用于校验走法生成。
func Perft(g *Game, depth int) int64 {
	return perft(g.Board, g.Turn, depth)
}

func perft(b *Board, turn Color, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := b.AllLegalMoves(turn)
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, m := range moves {
		nb := b.Copy()
		nb.Apply(m)
		n += perft(nb, turn.Opponent(), depth-1)
	}
	return n
}
