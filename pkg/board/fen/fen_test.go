package fen_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	zt := board.NewZobristTable(0)

	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, tt := range tests {
		pos, turn, halfmove, fullmove, err := fen.Decode(zt, tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(pos, turn, halfmove, fullmove))
		assert.Equal(t, zt.ComputeHash(pos), pos.Hash)
	}
}

func TestDecodeRejectsMalformedFEN(t *testing.T) {
	zt := board.NewZobristTable(0)

	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}

	for _, tt := range tests {
		_, _, _, _, err := fen.Decode(zt, tt)
		assert.Error(t, err)
	}
}
