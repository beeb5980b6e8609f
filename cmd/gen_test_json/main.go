package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"fairychess/internal/fairy"
)

// TestCase 一个局面的走法掩码：Stage 0 是可以拿起的棋子，Stage 1 是选中 From 后的落点。
// 前端高亮和其他实现的走法生成可以拿这份数据对照。
type TestCase struct {
	Variant string   `json:"variant"`
	FEN     string   `json:"fen"`
	Stage   int      `json:"stage"`
	From    string   `json:"from,omitempty"`
	Mask    []string `json:"mask"`
}

func main() {
	out := flag.String("out", "move_gen_test_data.json", "output file")
	numGames := flag.Int("games", 10, "random games per variant")
	maxPlies := flag.Int("maxplies", 200, "max plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var cases []TestCase
	for _, name := range fairy.VariantNames() {
		for i := 0; i < *numGames; i++ {
			cases = append(cases, randomGame(name, rng, *maxPlies)...)
		}
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases to %s\n", len(cases), *out)
}

func randomGame(variant string, rng *rand.Rand, maxPlies int) []TestCase {
	g := fairy.MustNewGame(variant)
	size := g.Board.Size
	var cases []TestCase
	for ply := 0; ply < maxPlies && !g.IsOver(); ply++ {
		legal := g.LegalMoves()
		fen := g.Position()

		froms := map[string]bool{}
		for _, m := range legal {
			froms[m.From.Notation(size)] = true
		}
		cases = append(cases, TestCase{Variant: variant, FEN: fen, Stage: 0, Mask: sortedKeys(froms)})

		chosen := legal[rng.Intn(len(legal))]
		tos := map[string]bool{}
		for _, m := range g.LegalMovesFrom(chosen.From) {
			tos[m.To.Notation(size)] = true
		}
		cases = append(cases, TestCase{
			Variant: variant,
			FEN:     fen,
			Stage:   1,
			From:    chosen.From.Notation(size),
			Mask:    sortedKeys(tos),
		})

		if err := g.MakeMove(chosen); err != nil {
			log.Fatalf("%s: %v", variant, err)
		}
	}
	return cases
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
