package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuiescenceAvoidsLosingCapture sets up a position where White's queen could capture
// a pawn that is twice defended. A bare depth-0 static evaluation would only see the
// immediate material gain and stop there; quiescence must follow the recapture and see
// that taking the pawn actually loses the queen, so the search picks a different move.
func TestQuiescenceAvoidsLosingCapture(t *testing.T) {
	pos := newPosition(t, "4k3/2p1p3/3p4/3Q4/8/8/8/4K3 w - - 0 1")

	n := search.Negamax{Eval: eval.Simple{}, TT: search.NewTranspositionTable(1)}
	score, pv, _, err := n.Search(context.Background(), pos, 1)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	assert.NotEqual(t, board.D6, pv[0].To, "engine should not walk the queen into a twice-defended pawn")
	assert.Greater(t, score, board.Score(-500))
}

// TestQuiescenceSearchesCheckEvasionsWithoutCaptures sets up a position where White is in
// check from a rook with no capture or block available: the only legal replies are quiet
// king moves. Quiescence must search those evasions rather than standing pat on the
// in-check position's static evaluation, which is not a value either side could actually
// reach (the side to move cannot simply decline to respond to check).
func TestQuiescenceSearchesCheckEvasionsWithoutCaptures(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	require.True(t, pos.IsChecked(pos.Turn))

	for _, m := range pos.LegalMoves() {
		require.Equal(t, board.NoPieceType, m.Captured, "fixture should have no captures available")
	}

	n := search.Negamax{Eval: eval.Simple{}, TT: search.NewTranspositionTable(1)}
	_, _, nodes, err := n.Search(context.Background(), pos, 0)
	require.NoError(t, err)
	assert.Greater(t, nodes, uint64(1), "quiescence must search check evasions even when no captures are available")
}
