package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePosition(t *testing.T, record string) *board.Position {
	t.Helper()
	zt := board.NewZobristTable(0)
	pos, _, _, _, err := fen.Decode(zt, record)
	require.NoError(t, err)
	return pos
}

func TestSimpleEvaluateIsZeroForStartingPosition(t *testing.T) {
	pos := decodePosition(t, fen.Initial)
	assert.Equal(t, board.ZeroScore, eval.Simple{}.Evaluate(pos))
}

func TestSimpleEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos := decodePosition(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.Greater(t, eval.Simple{}.Evaluate(pos), board.ZeroScore)
}

func TestRichEvaluateIsSymmetricUnderColorMirror(t *testing.T) {
	white := decodePosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	black := decodePosition(t, "r3k3/8/8/8/8/8/8/4K3 b - - 0 1")

	assert.Equal(t, eval.Rich{}.Evaluate(white), -eval.Rich{}.Evaluate(black))
}

func TestPhaseIsMaxAtStartAndZeroWithBareKings(t *testing.T) {
	start := decodePosition(t, fen.Initial)
	assert.Equal(t, 24, eval.Phase(start))

	bare := decodePosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, 0, eval.Phase(bare))
}

func TestNominalValueGain(t *testing.T) {
	capture := board.Move{Piece: board.Pawn, Captured: board.Queen}
	assert.Equal(t, board.Queen.Value(), eval.NominalValueGain(capture))

	promotion := board.Move{Piece: board.Pawn, Promotion: board.Queen}
	assert.Equal(t, board.Queen.Value()-board.Pawn.Value(), eval.NominalValueGain(promotion))

	quiet := board.Move{Piece: board.Knight}
	assert.Equal(t, board.ZeroScore, eval.NominalValueGain(quiet))
}
