package board_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZT() *board.ZobristTable {
	return board.NewZobristTable(0)
}

func decodeTestFEN(t *testing.T, zt *board.ZobristTable, record string) (*board.Position, board.Color, uint32, uint32, error) {
	t.Helper()
	return fen.Decode(zt, record)
}

func TestStartingPosition(t *testing.T) {
	zt := newZT()
	pos := board.NewStartingPosition(zt)

	assert.Equal(t, board.White, pos.Turn)
	assert.Equal(t, board.FullCastlingRights, pos.Castling)
	assert.Equal(t, board.NoSquare, pos.EPTarget)
	assert.Equal(t, zt.ComputeHash(pos), pos.Hash)
	assert.Len(t, pos.LegalMoves(), 20)
}

// TestMakeUndoRoundTrip walks every legal move of every position reachable within 4 plies
// of the start and asserts make;undo restores the position bit-exactly, including the hash,
// and that the incrementally maintained hash matches a from-scratch recomputation.
func TestMakeUndoRoundTrip(t *testing.T) {
	zt := newZT()
	pos := board.NewStartingPosition(zt)

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for _, m := range pos.LegalMoves() {
			before := *pos

			pos.Make(m)
			require.Equal(t, zt.ComputeHash(pos), pos.Hash, "incremental hash mismatch after %v", m)

			walk(depth - 1)

			pos.Undo()
			require.Equal(t, before.Hash, pos.Hash, "hash not restored after undo of %v", m)
			require.Equal(t, before.Castling, pos.Castling)
			require.Equal(t, before.EPTarget, pos.EPTarget)
			require.Equal(t, before.HalfmoveClock, pos.HalfmoveClock)
			require.Equal(t, before.Turn, pos.Turn)
			require.Equal(t, before.Board, pos.Board)
		}
	}
	walk(4)
}

func TestEnPassantCapture(t *testing.T) {
	zt := newZT()
	pos, turn, _, _, err := decodeTestFEN(t, zt, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)
	require.Equal(t, board.Black, turn)

	m, err := board.ParseMove("d4e3")
	require.NoError(t, err)

	var found board.Move
	var ok bool
	for _, cand := range pos.LegalMoves() {
		if cand.Equals(m) {
			found, ok = cand, true
			break
		}
	}
	require.True(t, ok, "d4e3 should be legal")
	assert.True(t, found.IsEnPassant)
	assert.Equal(t, board.Pawn, found.Captured)

	pos.Make(found)
	assert.True(t, pos.Board[board.E4].IsEmpty(), "captured pawn should be removed from e4")
	assert.Equal(t, board.MakePiece(board.Black, board.Pawn), pos.Board[board.E3])
}

func TestCastlingThroughAttackIsIllegal(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "r3k2r/8/8/8/8/8/8/4K1R1 b kq - 0 1")
	require.NoError(t, err)

	oo, err := board.ParseMove("e8g8")
	require.NoError(t, err)

	for _, m := range pos.LegalMoves() {
		assert.False(t, m.Equals(oo), "O-O should not be legal while the white rook on g1 attacks g8")
	}
}

func TestPromotion(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "8/P7/8/8/8/8/8/4k2K w - - 0 1")
	require.NoError(t, err)

	m, err := board.ParseMove("a7a8q")
	require.NoError(t, err)

	var found board.Move
	var ok bool
	for _, cand := range pos.LegalMoves() {
		if cand.Equals(m) {
			found, ok = cand, true
		}
	}
	require.True(t, ok)

	pos.Make(found)
	assert.Equal(t, board.MakePiece(board.White, board.Queen), pos.Board[board.A8])
}

func TestThreefoldRepetition(t *testing.T) {
	zt := newZT()
	pos := board.NewStartingPosition(zt)

	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range moves {
		mv, err := board.ParseMove(s)
		require.NoError(t, err)

		var found board.Move
		for _, cand := range pos.LegalMoves() {
			if cand.Equals(mv) {
				found = cand
				break
			}
		}
		pos.Make(found)
	}

	assert.True(t, pos.IsDraw())
}

func TestFiftyMoveRule(t *testing.T) {
	zt := newZT()
	pos, _, _, _, err := decodeTestFEN(t, zt, "4k3/8/8/8/8/8/8/4K2R w K - 99 60")
	require.NoError(t, err)
	require.False(t, pos.IsDraw())

	// A single quiet king move pushes the halfmove clock to 100.
	km, err := board.ParseMove("e1d1")
	require.NoError(t, err)
	var found board.Move
	for _, cand := range pos.LegalMoves() {
		if cand.Equals(km) {
			found = cand
		}
	}
	pos.Make(found)
	assert.True(t, pos.IsDraw())
}

func TestScholarsMate(t *testing.T) {
	zt := newZT()
	pos, turn, _, _, err := decodeTestFEN(t, zt, "rnbqkbnr/pppp1Qpp/5n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 3")
	require.NoError(t, err)

	assert.Empty(t, pos.LegalMoves())
	assert.True(t, pos.IsChecked(turn))
}

func TestStalemate(t *testing.T) {
	zt := newZT()
	pos, turn, _, _, err := decodeTestFEN(t, zt, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.Empty(t, pos.LegalMoves())
	assert.False(t, pos.IsChecked(turn))
}
