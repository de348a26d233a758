package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// ErrHalted is returned by Negamax when the context is cancelled mid-search. Callers
// must discard the in-progress result and fall back to the previous completed depth.
var ErrHalted = errors.New("search: halted")

// PV is a principal variation produced by one completed iterative-deepening depth.
type PV struct {
	Depth int
	Moves []board.Move
	Score board.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%d score=%v nodes=%d time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Moves)
}

// Result is the final answer to a search: the best move found and the PV that produced
// it, or an empty PV if the position has no legal moves.
type Result struct {
	Best board.Move
	PV   PV
}

// Node groups the score, the number of nodes visited and the principal variation of a
// single Negamax call tree.
type Node struct {
	Score board.Score
	Nodes uint64
	PV    []board.Move
}
