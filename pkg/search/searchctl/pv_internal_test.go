package searchctl

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPVFollowsStoredBestMoveChain(t *testing.T) {
	zt := board.NewZobristTable(0)
	pos, _, _, _, err := fen.Decode(zt, fen.Initial)
	require.NoError(t, err)

	tt := search.NewTranspositionTable(1)

	m1 := board.Move{From: board.E2, To: board.E4}
	scratch := pos.Clone()
	m1, ok := resolveMove(scratch, m1)
	require.True(t, ok)
	tt.Store(scratch.Hash, 2, board.Score(30), search.Exact, m1)
	scratch.Make(m1)

	m2, ok := resolveMove(scratch, board.Move{From: board.E7, To: board.E5})
	require.True(t, ok)
	tt.Store(scratch.Hash, 1, board.Score(-25), search.Exact, m2)

	pv := extractPV(tt, pos, 5)
	require.Len(t, pv, 2)
	assert.True(t, pv[0].Equals(m1))
	assert.True(t, pv[1].Equals(m2))
}

func TestExtractPVStopsOnMissingEntry(t *testing.T) {
	zt := board.NewZobristTable(0)
	pos, _, _, _, err := fen.Decode(zt, fen.Initial)
	require.NoError(t, err)

	tt := search.NewTranspositionTable(1)
	pv := extractPV(tt, pos, 5)
	assert.Empty(t, pv)
}
