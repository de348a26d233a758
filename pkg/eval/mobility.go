package eval

import "github.com/corvidchess/corvid/pkg/board"

// mobilityCurve gives a bonus per count of reachable squares (empty or capturable), one
// curve per non-king, non-pawn piece type. Counts beyond the curve's length clamp to the
// last entry.
var mobilityCurve = map[board.PieceType][]board.Score{
	board.Knight: {-20, -10, 0, 5, 10, 15, 20, 25, 28},
	board.Bishop: {-20, -10, 0, 5, 10, 15, 20, 22, 24, 26, 28, 30, 31, 32},
	board.Rook:   {-15, -8, -2, 2, 6, 9, 12, 14, 16, 17, 18, 19, 20, 20, 20},
	board.Queen: {
		-20, -15, -10, -6, -3, 0, 3, 6, 9, 11, 13, 15, 16, 17, 18, 19, 20,
		20, 21, 21, 22, 22, 23, 23, 24, 24, 24, 24,
	},
}

// reachableCount walks every direction available to p from sq (bishop/rook/queen slide
// via rays, knight jumps) and counts squares that are empty or hold an opposing piece.
func reachableCount(pos *board.Position, c board.Color, t board.PieceType, sq board.Square) int {
	n := 0
	switch t {
	case board.Knight:
		for _, to := range board.KnightAttacks(sq) {
			if !sameColor(pos, c, to) {
				n++
			}
		}
	case board.Bishop:
		n += slideCount(pos, c, sq, board.BishopDirections[:])
	case board.Rook:
		n += slideCount(pos, c, sq, board.RookDirections[:])
	case board.Queen:
		n += slideCount(pos, c, sq, board.BishopDirections[:])
		n += slideCount(pos, c, sq, board.RookDirections[:])
	}
	return n
}

func slideCount(pos *board.Position, c board.Color, sq board.Square, dirs []int) int {
	n := 0
	for _, dir := range dirs {
		for _, to := range board.Ray(sq, dir) {
			p := pos.PieceAt(to)
			if p.IsEmpty() {
				n++
				continue
			}
			if p.Color() != c {
				n++
			}
			break
		}
	}
	return n
}

func sameColor(pos *board.Position, c board.Color, sq board.Square) bool {
	p := pos.PieceAt(sq)
	return !p.IsEmpty() && p.Color() == c
}

func mobilityBonus(t board.PieceType, count int) board.Score {
	curve := mobilityCurve[t]
	if len(curve) == 0 {
		return 0
	}
	if count >= len(curve) {
		count = len(curve) - 1
	}
	return curve[count]
}
