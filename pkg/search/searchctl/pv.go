package searchctl

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
)

// extractPV follows best_move entries from the transposition table on a scratch copy of
// pos, starting at the root. It stops when no entry is found for the current hash, the
// stored entry has no move, the move repeats a hash already seen in this walk (a cycle),
// or maxPlies moves have been collected.
func extractPV(tt *search.TranspositionTable, pos *board.Position, maxPlies int) []board.Move {
	scratch := pos.Clone()
	seen := map[uint64]bool{}

	var pv []board.Move
	for len(pv) < maxPlies {
		if seen[scratch.Hash] {
			break
		}
		seen[scratch.Hash] = true

		entry, ok := tt.Probe(scratch.Hash)
		if !ok || !entry.HasMove {
			break
		}

		move, ok := resolveMove(scratch, entry.Move)
		if !ok {
			break
		}

		pv = append(pv, move)
		scratch.Make(move)
	}
	return pv
}

// resolveMove finds the legal move in scratch matching hint's From/To/Promotion, filling
// in the Piece/Captured/IsCastling/IsEnPassant fields the TT's compact encoding drops.
func resolveMove(scratch *board.Position, hint board.Move) (board.Move, bool) {
	for _, m := range scratch.LegalMoves() {
		if m.Equals(hint) {
			return m, true
		}
	}
	return board.Move{}, false
}
