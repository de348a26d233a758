// corvid is a minimal line-oriented driver over pkg/engine: position, go depth N / go
// movetime N, perft N, quit. It is boundary plumbing, not part of the engine itself.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/seekerror/logw"
)

func main() {
	ctx := context.Background()
	e := engine.New(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit":
			return

		case "position":
			handlePosition(ctx, e, fields[1:])

		case "go":
			handleGo(ctx, e, fields[1:])

		case "perft":
			handlePerft(e, fields[1:])

		case "d":
			fmt.Println(e.ExportFEN())
			if result := e.Result(); result != (board.Result{}) {
				fmt.Println(result)
			}

		default:
			logw.Warningf(ctx, "unknown command: %v", line)
		}
	}
}

func handlePosition(ctx context.Context, e *engine.Engine, args []string) {
	if len(args) == 0 {
		return
	}

	rest := args[1:]
	switch args[0] {
	case "startpos":
		e.NewGame(ctx)
	case "fen":
		if len(rest) < 6 {
			logw.Errorf(ctx, "invalid position: too few fen fields")
			return
		}
		if err := e.SetPositionFromFEN(ctx, strings.Join(rest[:6], " ")); err != nil {
			logw.Errorf(ctx, "invalid position: %v", err)
			return
		}
		rest = rest[6:]
	default:
		return
	}

	for _, mv := range movesAfter(rest) {
		m, err := board.ParseMove(mv)
		if err != nil {
			logw.Errorf(ctx, "invalid move %q: %v", mv, err)
			return
		}
		if err := e.ApplyMove(ctx, m.From, m.To, m.Promotion); err != nil {
			logw.Errorf(ctx, "illegal move %q: %v", mv, err)
			return
		}
	}
}

func movesAfter(args []string) []string {
	for i, a := range args {
		if a == "moves" {
			return args[i+1:]
		}
	}
	return nil
}

func handleGo(ctx context.Context, e *engine.Engine, args []string) {
	tc := searchctl.Depth(6)

	for i := 0; i+1 < len(args); i += 2 {
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			continue
		}
		switch args[i] {
		case "depth":
			tc = searchctl.Depth(n)
		case "movetime":
			tc = searchctl.MoveTime(time.Duration(n) * time.Millisecond)
		}
	}

	result := e.Search(ctx, tc)
	if result.Best == (board.Move{}) {
		fmt.Println("bestmove (none)")
		return
	}
	fmt.Printf("bestmove %v\n", result.Best)
}

func handlePerft(e *engine.Engine, args []string) {
	depth := 4
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			depth = n
		}
	}

	divide := e.PerftDivide(depth)
	var total uint64
	for mv, n := range divide {
		fmt.Printf("%v: %v\n", mv, n)
		total += n
	}
	fmt.Printf("total %v\n", total)
}
