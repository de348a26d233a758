package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjudicateScholarsMateIsCheckmateForWhite(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "rnbqkbnr/pppp1Qpp/5n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 3")
	require.NoError(t, err)

	result := board.Adjudicate(pos)
	assert.Equal(t, board.WhiteWins, result.Outcome)
	assert.Equal(t, board.Checkmate, result.Reason)
}

func TestAdjudicateIsStalemate(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	result := board.Adjudicate(pos)
	assert.Equal(t, board.Draw, result.Outcome)
	assert.Equal(t, board.Stalemate, result.Reason)
}

func TestAdjudicateIsUndecidedAtStart(t *testing.T) {
	zt := newZT()
	pos := board.NewStartingPosition(zt)

	assert.Equal(t, board.Result{}, board.Adjudicate(pos))
}

func TestAdjudicateIsFiftyMoveRuleDraw(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	require.NoError(t, err)

	result := board.Adjudicate(pos)
	assert.Equal(t, board.Draw, result.Outcome)
	assert.Equal(t, board.FiftyMoveRule, result.Reason)
}

func TestAdjudicateIsInsufficientMaterialDraw(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "4k3/8/8/8/8/8/8/4KB2 w - - 0 1")
	require.NoError(t, err)

	result := board.Adjudicate(pos)
	assert.Equal(t, board.Draw, result.Outcome)
	assert.Equal(t, board.InsufficientMaterial, result.Reason)
}
