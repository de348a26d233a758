package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// MVVLVA orders moves by "most valuable victim, least valuable attacker": captures of
// high-value pieces by low-value attackers search first, since they are the likeliest to
// produce an early beta cutoff. Promotions are scored by the material they add (the
// promoted piece less the pawn) on the same scale as captures.
func MVVLVA(m board.Move) board.MovePriority {
	if gain := board.MovePriority(10 * eval.NominalValueGain(m)); gain > 0 {
		return gain - board.MovePriority(m.Piece.Value())
	}
	return 0
}

// OrderingFor returns a priority function that searches hint first (typically the
// transposition table's stored best move), then falls back to MVV-LVA.
func OrderingFor(hint board.Move) board.MovePriorityFn {
	return board.First(hint, MVVLVA)
}
