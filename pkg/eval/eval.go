// Package eval implements static position evaluation: material, piece-square tables,
// mobility, pawn structure, king safety and a small set of positional terms, tapered
// between middlegame and endgame by a material-derived phase. Scores are always
// centipawns from White's perspective; callers flip sign for the side to move.
package eval

import "github.com/corvidchess/corvid/pkg/board"

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns, White's perspective.
	Evaluate(pos *board.Position) board.Score
}

// NominalValueGain is the nominal material gain of making move m: used for move
// ordering (MVV-LVA), not for the static evaluation itself.
func NominalValueGain(m board.Move) board.Score {
	gain := board.Score(0)
	if m.Captured != board.NoPieceType {
		gain += m.Captured.Value()
	}
	if m.Promotion != board.NoPieceType {
		gain += m.Promotion.Value() - board.Pawn.Value()
	}
	return gain
}
