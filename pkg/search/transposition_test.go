package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestNewTranspositionTableSizeRoundsToPowerOfTwo(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	assert.Equal(t, uint64(1<<20), tt.Size())
}

func TestTranspositionTableProbeMiss(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	_, ok := tt.Probe(0xdeadbeef)
	assert.False(t, ok)
}

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	tt := search.NewTranspositionTable(1)

	m := board.Move{From: board.G2, To: board.G4}
	tt.Store(0x1234, 5, board.Score(120), search.Exact, m)

	entry, ok := tt.Probe(0x1234)
	assert.True(t, ok)
	assert.Equal(t, search.Exact, entry.Bound)
	assert.Equal(t, 5, entry.Depth)
	assert.Equal(t, board.Score(120), entry.Score)
	assert.True(t, entry.HasMove)
	assert.True(t, entry.Move.Equals(m))
}

func TestTranspositionTableReplacementPolicy(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	m := board.Move{From: board.A2, To: board.A4}

	tt.Store(0x55, 4, board.Score(1), search.Exact, m)
	tt.Store(0x55, 2, board.Score(2), search.Exact, m) // shallower, same age: rejected

	entry, ok := tt.Probe(0x55)
	assert.True(t, ok)
	assert.Equal(t, 4, entry.Depth)

	tt.Store(0x55, 6, board.Score(3), search.Exact, m) // deeper: accepted
	entry, ok = tt.Probe(0x55)
	assert.True(t, ok)
	assert.Equal(t, 6, entry.Depth)
}

func TestTranspositionTableNewSearchAllowsShallowEviction(t *testing.T) {
	tt := search.NewTranspositionTable(1)
	m := board.Move{From: board.B1, To: board.C3}

	tt.Store(0x99, 10, board.Score(1), search.Exact, m)
	tt.NewSearch()
	tt.Store(0x99, 1, board.Score(2), search.Exact, m) // shallow, but a new generation

	entry, ok := tt.Probe(0x99)
	assert.True(t, ok)
	assert.Equal(t, 1, entry.Depth)
}

func TestEncodeDecodeMoveRoundTrip(t *testing.T) {
	m := board.Move{From: board.E2, To: board.E4}
	code := search.EncodeMove(m)
	decoded := search.DecodeMove(code, board.NoPieceType)
	assert.Equal(t, m.From, decoded.From)
	assert.Equal(t, m.To, decoded.To)
}
