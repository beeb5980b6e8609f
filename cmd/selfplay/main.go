package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
)

// Player 一方的搜索设置
type Player struct {
	Name string
	Cfg  engine.SearchConfig
}

type outcome struct {
	index  int
	result fairy.Result
	record string
	plies  int
	took   time.Duration
}

func main() {
	variant := flag.String("variant", "standard", "variant name")
	games := flag.Int("games", 4, "number of games to play")
	parallel := flag.Int("parallel", 2, "games played at the same time")
	depthA := flag.Int("depth-a", 2, "search depth of player A")
	depthB := flag.Int("depth-b", 3, "search depth of player B")
	thinkTime := flag.Duration("time", 0, "time limit per move (0 = fixed depth)")
	maxPlies := flag.Int("maxplies", 300, "adjudicate a draw after this many plies")
	quiet := flag.Bool("quiet", false, "only print the final score")
	flag.Parse()

	if _, err := fairy.LookupVariant(*variant); err != nil {
		log.Fatalf("%v (known: %s)", err, strings.Join(fairy.VariantNames(), ", "))
	}

	a := Player{Name: fmt.Sprintf("A (depth %d)", *depthA), Cfg: engine.SearchConfig{MaxDepth: *depthA, TimeLimit: *thinkTime}}
	b := Player{Name: fmt.Sprintf("B (depth %d)", *depthB), Cfg: engine.SearchConfig{MaxDepth: *depthB, TimeLimit: *thinkTime}}

	results := make([]outcome, *games)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallel)
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// 轮流执白
			white, black := a, b
			if i%2 == 1 {
				white, black = b, a
			}
			out, err := playGame(*variant, white, black, *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			out.index = i
			results[i] = out
			log.Printf("game %d: %s vs %s -> %s in %d plies (%v)", i+1, white.Name, black.Name, out.result.Code(), out.plies, out.took)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	var aWins, bWins, draws int
	for _, out := range results {
		if !*quiet {
			fmt.Println(out.record)
		}
		aWhite := out.index%2 == 0
		switch out.result.Winner() {
		case fairy.White:
			if aWhite {
				aWins++
			} else {
				bWins++
			}
		case fairy.Black:
			if aWhite {
				bWins++
			} else {
				aWins++
			}
		default:
			draws++
		}
	}

	fmt.Printf("=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, aWins)
	fmt.Printf("%s: %d\n", b.Name, bWins)
	fmt.Printf("Draws: %d\n", draws)
	os.Exit(0)
}

// playGame 每局各自的 Engine，置换表不共享。
func playGame(variant string, white, black Player, maxPlies int) (outcome, error) {
	start := time.Now()
	g, err := fairy.NewGame(variant)
	if err != nil {
		return outcome{}, err
	}
	g.Tags["White"] = white.Name
	g.Tags["Black"] = black.Name
	g.Tags["Event"] = "selfplay"
	g.Tags["Date"] = start.Format("2006.01.02")

	engines := [2]*engine.Engine{engine.NewEngine(), engine.NewEngine()}
	players := [2]Player{white, black}

	plies := 0
	for ; plies < maxPlies && !g.IsOver(); plies++ {
		side := g.Turn
		res := engines[side].Think(g, players[side].Cfg)
		if !res.HasMove {
			break
		}
		if err := g.MakeMove(res.BestMove); err != nil {
			return outcome{}, fmt.Errorf("engine move %s: %w", res.BestMove.Coord(g.Board.Size), err)
		}
	}
	if !g.IsOver() {
		g.Tags["Termination"] = "adjudicated draw"
		g.Tags["Result"] = fairy.Draw.Code()
	}

	result := g.Result()
	if result == fairy.Ongoing {
		result = fairy.Draw
	}
	return outcome{result: result, record: g.Record(), plies: plies, took: time.Since(start)}, nil
}
