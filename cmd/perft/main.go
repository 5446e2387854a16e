// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/zeegomo/weakmind/pkg/game"
)

var (
	depth         = flag.Int("depth", 4, "Search depth")
	defenderFirst = flag.Bool("defender_first", true, "Start position side to move")
	divide        = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	flag.Parse()

	p := game.NewPosition(*defenderFirst)

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(p, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
}

func search(p *game.Position, depth int, d bool) int64 {
	if depth == 0 || p.State() != game.Going {
		return 1
	}

	var nodes int64
	for _, m := range p.GetMoves() {
		rb := p.MoveWithRollback(m)
		count := search(p, depth-1, false)
		p.Rollback(rb)

		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
