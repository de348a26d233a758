package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

// Iterative drives search.Negamax at depth 1, 2, … until a stop condition fires,
// streaming each completed depth's PV.
type Iterative struct {
	Negamax search.Negamax
}

func (it Iterative) Launch(ctx context.Context, pos *board.Position, opt Options) (Handle, <-chan search.PV) {
	wctx, cancel := context.WithCancel(ctx)

	out := make(chan search.PV, 1)
	h := &handle{
		cancel: cancel,
		ready:  iox.NewAsyncCloser(),
		halted: atomic.NewBool(false),
	}
	go h.run(wctx, it.Negamax, pos, opt, out)

	return h, out
}

type handle struct {
	cancel context.CancelFunc
	ready  iox.AsyncCloser
	halted *atomic.Bool

	mu sync.Mutex
	pv search.PV
}

func (h *handle) run(ctx context.Context, negamax search.Negamax, pos *board.Position, opt Options, out chan search.PV) {
	defer h.ready.Close()
	defer close(out)

	moveNumber := int(pos.FullmoveNumber)
	soft, hard := opt.TimeControl.Limits(moveNumber)
	timeLimited := opt.TimeControl.isTimeLimited()

	var hardTimer *time.Timer
	if timeLimited {
		hardTimer = time.AfterFunc(hard, h.Halt)
		defer hardTimer.Stop()
	}

	fixedDepth, depthLimited := opt.TimeControl.isDepthLimited()

	bestMoveChanges := 0
	var prevBest board.Move
	var prevScore board.Score
	haveIteration := false

	start := time.Now()
	for depth := 1; depth <= MaxDepth; depth++ {
		if h.halted.Load() {
			return
		}

		score, pv, nodes, err := negamax.Search(ctx, pos, depth)
		if err != nil {
			return // ErrHalted: discard the in-progress iteration, keep the last completed PV
		}

		moves := extractPV(negamax.TT, pos, depth)
		if len(moves) == 0 {
			moves = pv
		}

		result := search.PV{
			Depth: depth,
			Moves: moves,
			Score: score,
			Nodes: nodes,
			Time:  time.Since(start),
		}

		var best board.Move
		if len(moves) > 0 {
			best = moves[0]
		}
		if haveIteration && (!best.Equals(prevBest) || absScore(score-prevScore) > 50) {
			bestMoveChanges++
		}
		prevBest, prevScore, haveIteration = best, score, true

		h.mu.Lock()
		h.pv = result
		h.mu.Unlock()

		logw.Infof(ctx, "info depth %d score cp %d nodes %d time %d pv %v",
			depth, score, nodes, result.Time.Milliseconds(), moves)

		select {
		case <-out:
		default:
		}
		out <- result
		h.ready.Close()

		if depthLimited && depth >= fixedDepth {
			return
		}
		if absScore(score) >= board.MateScore-MaxDepth {
			return // early exit: |score| >= MATE_SCORE - MAX_DEPTH
		}
		if !timeLimited {
			continue
		}

		elapsed := time.Since(start)
		threshold := soft
		if bestMoveChanges > 2 {
			threshold = threshold * 130 / 100
		}
		if elapsed*4 >= threshold {
			return
		}
	}
}

func absScore(s board.Score) board.Score {
	if s < 0 {
		return -s
	}
	return s
}

// Halt stops the search, discarding any in-progress iteration, and returns the best PV
// completed so far. Idempotent: a second call is a no-op that returns the same PV.
func (h *handle) Halt() search.PV {
	h.halted.Store(true)
	h.cancel()

	<-h.ready.Closed()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}
