// perft is a move generator debugging tool. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/fatih/color"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "search depth")
	position = flag.String("fen", "", "start position (default: standard)")
	divide   = flag.Bool("divide", false, "print per-move counts at the final depth")
	expect   = flag.Uint64("expect", 0, "known-good leaf count at -depth, for pass/fail coloring")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	e := engine.New(ctx)
	if *position != "" {
		if err := e.SetPositionFromFEN(ctx, *position); err != nil {
			logw.Exitf(ctx, "invalid fen %q: %v", *position, err)
		}
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()

		var nodes uint64
		if *divide && d == *depth {
			byMove := e.PerftDivide(d)
			for _, mv := range sortedKeys(byMove) {
				fmt.Printf("%v: %v\n", mv, byMove[mv])
				nodes += byMove[mv]
			}
		} else {
			nodes = e.Perft(d)
		}

		elapsed := time.Since(start)
		line := fmt.Sprintf("perft depth=%v nodes=%v time=%v", d, nodes, elapsed)

		if d == *depth && *expect > 0 {
			if nodes == *expect {
				color.New(color.FgGreen).Println(line + " PASS")
			} else {
				color.New(color.FgRed).Println(line + fmt.Sprintf(" FAIL want=%v", *expect))
			}
			continue
		}
		fmt.Println(line)
	}
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
