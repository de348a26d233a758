package testdata_test

import (
	"fmt"
	"testing"

	"github.com/corvidchess/corvid/internal/testdata"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/require"
)

func TestPerftFixtures(t *testing.T) {
	positions, err := testdata.Positions()
	require.NoError(t, err)
	require.NotEmpty(t, positions)

	for _, fixture := range positions {
		fixture := fixture
		t.Run(fixture.Name, func(t *testing.T) {
			zt := board.NewZobristTable(0)
			pos, _, _, _, err := fen.Decode(zt, fixture.FEN)
			require.NoError(t, err)

			for depth, want := range fixture.Perft {
				t.Run(fmt.Sprintf("depth=%d", depth), func(t *testing.T) {
					require.Equal(t, want, board.Perft(pos, depth))
				})
			}
		})
	}
}
