package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	pawnShieldBonus    = 20
	openFilePenalty    = -30
	semiOpenPenalty    = -15
	attackerMultiplier = 10
)

// kingSafetyScore evaluates the shelter and exposure of c's king, from c's perspective.
func kingSafetyScore(pos *board.Position, c board.Color) board.Score {
	king := pos.KingSquare(c)
	own := gatherPawns(pos, c)
	opp := gatherPawns(pos, c.Opponent())

	var score board.Score
	score += pawnShield(pos, c, king)
	score += fileOpenness(own, opp, king.File())

	enemy := c.Opponent()
	for _, sq := range board.KingAttacks(king) {
		if pos.IsAttacked(sq, enemy) {
			score += attackerMultiplier * -1
		}
	}
	return score
}

// pawnShield counts friendly pawns on the two ranks in front of the king, within one file.
func pawnShield(pos *board.Position, c board.Color, king board.Square) board.Score {
	file, rank := king.File(), king.Rank()
	dir := 1
	if c == board.Black {
		dir = -1
	}

	var bonus board.Score
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
			p := pos.PieceAt(board.NewSquare(f, r))
			if p.Type() == board.Pawn && p.Color() == c {
				bonus += pawnShieldBonus
			}
		}
	}
	return bonus
}

// fileOpenness penalizes the king's file and its neighbors for being open (no pawns of
// either color) or semi-open (no friendly pawn, but an opposing one remains).
func fileOpenness(own, opp pawnFacts, kingFile int) board.Score {
	var score board.Score
	for f := kingFile - 1; f <= kingFile+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		if len(own.byFile[f]) > 0 {
			continue
		}
		if len(opp.byFile[f]) > 0 {
			score += semiOpenPenalty
		} else {
			score += openFilePenalty
		}
	}
	return score
}
