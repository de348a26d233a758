package eval

import "github.com/corvidchess/corvid/pkg/board"

// centralBonus is a flat per-square bonus: the c3..f6 block gets the most, the b2..g7
// ring around it less.
var centralBonus = [64]board.Score{}

func init() {
	for sq := board.A1; sq <= board.H8; sq++ {
		f, r := sq.File(), sq.Rank()
		df, dr := centerDistance(f), centerDistance(r)
		switch {
		case df <= 1 && dr <= 1:
			centralBonus[sq] = 10
		case df <= 2 && dr <= 2:
			centralBonus[sq] = 4
		}
	}
}

// centerDistance returns how many files/ranks coord (0..7) sits from the board's
// central 3/4 boundary.
func centerDistance(coord int) int {
	return minInt(absInt(coord-3), absInt(coord-4))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Simple is a lightweight evaluator for fast testing and shallow search: material,
// a central-squares bonus, pawn advancement, and a king safety shell for the opening.
type Simple struct{}

func (Simple) Evaluate(pos *board.Position) board.Score {
	var score board.Score
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}

		t := p.Type()
		unit := p.Color().Unit()

		score += unit * t.Value()
		score += unit * centralBonus[sq]

		if t == board.Pawn {
			score += unit * pawnAdvancementBonus(p.Color(), sq)
		}
		if t == board.King {
			score += unit * kingSafetyShell(pos, p.Color(), sq)
		}
	}
	return score
}

// pawnAdvancementBonus rewards pawns for advancing toward promotion.
func pawnAdvancementBonus(c board.Color, sq board.Square) board.Score {
	rank := sq.Rank()
	if c == board.Black {
		rank = 7 - rank
	}
	return board.Score(rank * 2)
}

// kingSafetyShell rewards friendly pawns still standing on the two ranks in front
// of the king, within one file either side — a crude opening-only safety proxy.
func kingSafetyShell(pos *board.Position, c board.Color, king board.Square) board.Score {
	var bonus board.Score
	file, rank := king.File(), king.Rank()
	dir := 1
	if c == board.Black {
		dir = -1
	}
	for df := -1; df <= 1; df++ {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		for dr := 1; dr <= 2; dr++ {
			r := rank + dir*dr
			if r < 0 || r > 7 {
				continue
			}
			sq := board.NewSquare(f, r)
			p := pos.PieceAt(sq)
			if p.Type() == board.Pawn && p.Color() == c {
				bonus += 8
			}
		}
	}
	return bonus
}
