package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"fairychess/internal/fairy"
)

func main() {
	variant := flag.String("variant", "standard", "variant name")
	fen := flag.String("fen", "", "start position (default: the variant's start)")
	depth := flag.Int("depth", 3, "perft depth")
	divide := flag.Bool("divide", false, "print node counts per root move")
	flag.Parse()

	v, err := fairy.LookupVariant(*variant)
	if err != nil {
		log.Fatal(err)
	}
	var g *fairy.Game
	if *fen == "" {
		g, err = fairy.NewGameFromVariant(v)
	} else {
		g, err = fairy.ParsePosition(v, *fen)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("FEN:", g.Position())
	fmt.Println("Legal moves:", len(g.LegalMoves()))

	if *divide && *depth > 1 {
		lines := make([]string, 0, len(g.LegalMoves()))
		var total int64
		for _, m := range g.LegalMoves() {
			n := fairy.Perft(g.Child(m), *depth-1)
			total += n
			lines = append(lines, fmt.Sprintf("%s: %d", m.Coord(g.Board.Size), n))
		}
		sort.Strings(lines)
		for _, l := range lines {
			fmt.Println(l)
		}
		fmt.Println("Total:", total)
		return
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := fairy.Perft(g, d)
		took := time.Since(start)
		fmt.Printf("perft(%d) = %d  (%v, %.0f nps)\n", d, n, took, float64(n)/took.Seconds())
	}
}
