package eval

import "github.com/corvidchess/corvid/pkg/board"

// Rich is a tapered middlegame/endgame evaluator: material and piece-square tables
// interpolated by game phase, plus mobility, pawn structure, king safety, a handful of
// positional terms and king tropism. All terms are computed once per color and combined
// symmetrically (white.score - black.score).
type Rich struct{}

func (Rich) Evaluate(pos *board.Position) board.Score {
	phase := Phase(pos)

	mg, eg := materialAndPST(pos, board.White)
	bmg, beg := materialAndPST(pos, board.Black)
	mg -= bmg
	eg -= beg

	tapered := taper(phase, mg, eg)

	flat := mobilityScore(pos, board.White) - mobilityScore(pos, board.Black)
	flat += pawnStructureScore(pos, board.White) - pawnStructureScore(pos, board.Black)
	flat += kingSafetyScore(pos, board.White) - kingSafetyScore(pos, board.Black)
	flat += positionalScore(pos, board.White) - positionalScore(pos, board.Black)
	flat += tropismScore(pos, board.White) - tropismScore(pos, board.Black)

	return tapered + flat
}

// materialAndPST returns the middlegame and endgame material+PST subtotal for c, in c's
// own units (not yet signed for White/Black combination).
func materialAndPST(pos *board.Position, c board.Color) (mg, eg int) {
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.IsEmpty() || p.Color() != c {
			continue
		}
		pmg, peg := pstValue(p, sq)
		v := int(p.Type().Value())
		mg += v + pmg
		eg += v + peg
	}
	return mg, eg
}

func mobilityScore(pos *board.Position, c board.Color) board.Score {
	var score board.Score
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.IsEmpty() || p.Color() != c {
			continue
		}
		switch p.Type() {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
			score += mobilityBonus(p.Type(), reachableCount(pos, c, p.Type(), sq))
		}
	}
	return score
}
