package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestMVVLVARanksCaptureOfHigherValuePieceAbove(t *testing.T) {
	pawnTakesQueen := board.Move{Piece: board.Pawn, Captured: board.Queen}
	queenTakesPawn := board.Move{Piece: board.Queen, Captured: board.Pawn}

	assert.Greater(t, search.MVVLVA(pawnTakesQueen), search.MVVLVA(queenTakesPawn))
}

func TestMVVLVAIsZeroForQuietMoves(t *testing.T) {
	quiet := board.Move{Piece: board.Knight}
	assert.Zero(t, search.MVVLVA(quiet))
}

func TestOrderingForRanksHintAboveEveryCapture(t *testing.T) {
	hint := board.Move{From: board.B1, To: board.C3, Piece: board.Knight}
	bestCapture := board.Move{From: board.D1, To: board.D8, Piece: board.Queen, Captured: board.Queen}

	fn := search.OrderingFor(hint)
	assert.Greater(t, fn(hint), fn(bestCapture))
}
