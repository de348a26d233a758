package eval

import "github.com/corvidchess/corvid/pkg/board"

// phaseWeight is the phase contribution of each non-king, non-pawn piece type.
var phaseWeight = [board.NumPieceTypes + 1]int{
	board.Knight: 1,
	board.Bishop: 1,
	board.Rook:   2,
	board.Queen:  4,
}

const maxPhase = 24

// Phase returns the game phase, 24 (opening, all pieces on) down to 0 (bare endgame).
func Phase(pos *board.Position) int {
	phase := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		phase += phaseWeight[p.Type()]
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}

// taper linearly interpolates between a middlegame and an endgame term: phase==maxPhase
// returns mg, phase==0 returns eg.
func taper(phase, mg, eg int) board.Score {
	return board.Score((mg*phase + eg*(maxPhase-phase)) / maxPhase)
}
