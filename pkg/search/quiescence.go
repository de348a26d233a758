package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence runs a capture/promotion-only alpha-beta search from pos, to avoid the
// horizon effect of cutting a search off mid-capture-sequence. The static evaluation is
// used as the initial alpha ("standing pat"): a player is never forced to capture, so the
// search only explores captures that can improve on just sitting still. A side in check
// has no safe "standing pat" — stand-pat is skipped and every legal evasion is searched,
// not just captures, the same way negamax would search a check at any other depth.
func quiescence(ctx context.Context, pos *board.Position, evaluator eval.Evaluator, alpha, beta board.Score) (uint64, board.Score) {
	if contextx.IsCancelled(ctx) {
		return 0, board.ZeroScore
	}
	if pos.IsDraw() {
		return 0, board.ZeroScore
	}

	var nodes uint64 = 1

	inCheck := pos.IsChecked(pos.Turn)
	if !inCheck {
		standPat := board.Score(pos.Turn.Unit()) * evaluator.Evaluate(pos)
		if standPat >= beta {
			return nodes, beta
		}
		alpha = board.MaxScoreOf(alpha, standPat)
	}

	all := pos.LegalMoves()
	hasLegalMove := len(all) > 0

	list := board.NewMoveList(all, MVVLVA)
	for {
		m, ok := list.Next()
		if !ok {
			break
		}
		if !inCheck && m.IsQuiet() {
			continue // quiescence only explores captures and promotions, unless in check
		}

		pos.Make(m)
		n, score := quiescence(ctx, pos, evaluator, beta.Negate(), alpha.Negate())
		score = board.IncrementMateDistance(score).Negate()
		pos.Undo()

		nodes += n
		if alpha.Less(score) {
			alpha = score
		}
		if alpha == beta || beta.Less(alpha) {
			break // cutoff
		}
	}

	if !hasLegalMove {
		if inCheck {
			return nodes, -board.MateScore
		}
		return nodes, board.ZeroScore
	}
	return nodes, alpha
}
