package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Negamax implements alpha-beta pruning with transposition table assistance, in the
// standard single-recursive-function (negamax) formulation: scores are always relative
// to the side to move, and each recursive call negates and swaps alpha/beta rather than
// branching into separate maximizing/minimizing arms. This is the textbook
// negamax-equivalent simplification of two-sided minimax.
type Negamax struct {
	Eval eval.Evaluator
	TT   *TranspositionTable
}

// Search runs a fixed-depth negamax search from pos and returns the score (relative to
// pos.Turn), the principal variation, and the number of nodes visited. pos is mutated and
// restored: Make/Undo are strictly paired on every path, including cancellation.
func (n Negamax) Search(ctx context.Context, pos *board.Position, depth int) (board.Score, []board.Move, uint64, error) {
	score, pv, nodes := n.search(ctx, pos, depth, board.MinScore, board.MaxScore)
	if contextx.IsCancelled(ctx) {
		return board.InvalidScore, nil, nodes, ErrHalted
	}
	return score, pv, nodes, nil
}

func (n Negamax) search(ctx context.Context, pos *board.Position, depth int, alpha, beta board.Score) (board.Score, []board.Move, uint64) {
	if contextx.IsCancelled(ctx) {
		return board.InvalidScore, nil, 0
	}
	if pos.IsDraw() {
		return board.ZeroScore, nil, 1
	}

	originalAlpha := alpha

	var hint board.Move
	if entry, ok := n.TT.Probe(pos.Hash); ok && entry.Depth >= depth {
		switch entry.Bound {
		case Exact:
			return entry.Score, nil, 1
		case Lower:
			alpha = board.MaxScoreOf(alpha, entry.Score)
		case Upper:
			beta = board.MinScoreOf(beta, entry.Score)
		}
		if alpha >= beta {
			return entry.Score, nil, 1
		}
		if entry.HasMove {
			hint = entry.Move
		}
	} else if ok {
		hint = entry.Move
	}

	if depth == 0 {
		nodes, score := quiescence(ctx, pos, n.Eval, alpha, beta)
		n.TT.Store(pos.Hash, 0, score, Exact, board.Move{})
		return score, nil, nodes
	}

	var nodes uint64 = 1
	hasLegalMove := false
	var pv []board.Move
	var best board.Move

	list := board.NewMoveList(pos.LegalMoves(), OrderingFor(hint))
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		hasLegalMove = true

		pos.Make(m)
		score, rem, childNodes := n.search(ctx, pos, depth-1, beta.Negate(), alpha.Negate())
		score = board.IncrementMateDistance(score).Negate()
		pos.Undo()

		nodes += childNodes

		if score.IsInvalid() {
			return board.InvalidScore, nil, nodes // cancelled mid-subtree
		}

		if alpha.Less(score) {
			alpha = score
			best = m
			pv = append([]board.Move{m}, rem...)
		}
		if alpha >= beta {
			break // cutoff
		}
	}

	if !hasLegalMove {
		if pos.IsChecked(pos.Turn) {
			n.TT.Store(pos.Hash, depth, -board.MateScore, Exact, board.Move{})
			return -board.MateScore, nil, nodes
		}
		n.TT.Store(pos.Hash, depth, board.ZeroScore, Exact, board.Move{})
		return board.ZeroScore, nil, nodes
	}

	bound := Exact
	switch {
	case alpha <= originalAlpha:
		bound = Upper
	case alpha >= beta:
		bound = Lower
	}
	n.TT.Store(pos.Hash, depth, alpha, bound, best)

	return alpha, pv, nodes
}
