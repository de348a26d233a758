package eval

import "github.com/corvidchess/corvid/pkg/board"

// The raw tables below are written the way they are conventionally published: row 0 is
// rank 8, row 7 is rank 1, columns run a..h. fromRank8First converts that layout into our
// square-indexed array (square = rank*8 + file, rank 0 = rank 1).
func fromRank8First(rows [64]int) [64]int {
	var out [64]int
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			out[(7-r)*8+f] = rows[r*8+f]
		}
	}
	return out
}

var pawnMGRaw = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEGRaw = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	80, 80, 80, 80, 80, 80, 80, 80,
	50, 50, 50, 50, 50, 50, 50, 50,
	30, 30, 30, 30, 30, 30, 30, 30,
	20, 20, 20, 20, 20, 20, 20, 20,
	10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightRaw = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopRaw = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookRaw = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenRaw = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMGRaw = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEGRaw = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pstMG, pstEG [board.NumPieceTypes + 1][64]int

func init() {
	pstMG[board.Pawn] = fromRank8First(pawnMGRaw)
	pstEG[board.Pawn] = fromRank8First(pawnEGRaw)
	pstMG[board.Knight] = fromRank8First(knightRaw)
	pstEG[board.Knight] = pstMG[board.Knight]
	pstMG[board.Bishop] = fromRank8First(bishopRaw)
	pstEG[board.Bishop] = pstMG[board.Bishop]
	pstMG[board.Rook] = fromRank8First(rookRaw)
	pstEG[board.Rook] = pstMG[board.Rook]
	pstMG[board.Queen] = fromRank8First(queenRaw)
	pstEG[board.Queen] = pstMG[board.Queen]
	pstMG[board.King] = fromRank8First(kingMGRaw)
	pstEG[board.King] = fromRank8First(kingEGRaw)
}

// pstSquare mirrors sq vertically for Black, since every table above is defined from
// White's point of view.
func pstSquare(c board.Color, sq board.Square) board.Square {
	if c == board.Black {
		return sq ^ 56
	}
	return sq
}

// pstValue returns the middlegame and endgame piece-square bonus for p standing on sq.
func pstValue(p board.Piece, sq board.Square) (mg, eg int) {
	s := pstSquare(p.Color(), sq)
	t := p.Type()
	return pstMG[t][s], pstEG[t][s]
}
