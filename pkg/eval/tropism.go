package eval

import "github.com/corvidchess/corvid/pkg/board"

const tropismWeight = 2

// tropismScore rewards friendly queens and rooks for standing close (Chebyshev distance)
// to the enemy king, from c's perspective. A small, tapered-in-spirit term: it matters
// more as pieces close in for an attack than in quiet middlegame maneuvering, but unlike
// the PST terms it is not explicitly split into separate mg/eg tables.
func tropismScore(pos *board.Position, c board.Color) board.Score {
	enemyKing := pos.KingSquare(c.Opponent())

	var score board.Score
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.IsEmpty() || p.Color() != c {
			continue
		}
		if p.Type() != board.Queen && p.Type() != board.Rook {
			continue
		}
		d := board.ChebyshevDistance(sq, enemyKing)
		score += board.Score(tropismWeight * (7 - d))
	}
	return score
}
