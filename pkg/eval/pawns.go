package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	doubledPenalty  = -20
	isolatedPenalty = -15
	backwardPenalty = -10
	connectedBonus  = 5
	chainedBonus    = 10
)

// passedBonus is indexed by the pawn's rank toward promotion, 0 (own back rank, never
// happens for a pawn) through 7 (promotion rank).
var passedBonus = [8]board.Score{0, 5, 10, 20, 35, 55, 80, 0}

type pawnFacts struct {
	byFile   [8][]board.Square // friendly pawns on sq, indexed by file
	oppFile  [8][]board.Square // opposing pawns, indexed by file
}

func gatherPawns(pos *board.Position, c board.Color) pawnFacts {
	var f pawnFacts
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.Type() != board.Pawn {
			continue
		}
		if p.Color() == c {
			f.byFile[sq.File()] = append(f.byFile[sq.File()], sq)
		} else {
			f.oppFile[sq.File()] = append(f.oppFile[sq.File()], sq)
		}
	}
	return f
}

// pawnStructureScore sums doubled/isolated/backward/passed/connected/chained terms for
// every pawn of color c, from c's own perspective (always non-negative-biased; caller
// applies the color unit).
func pawnStructureScore(pos *board.Position, c board.Color) board.Score {
	facts := gatherPawns(pos, c)
	opp := gatherPawns(pos, c.Opponent())

	var score board.Score
	for file := 0; file < 8; file++ {
		pawns := facts.byFile[file]
		if len(pawns) > 1 {
			score += board.Score(len(pawns)-1) * doubledPenalty
		}

		hasAdjacent := (file > 0 && len(facts.byFile[file-1]) > 0) || (file < 7 && len(facts.byFile[file+1]) > 0)
		if !hasAdjacent && len(pawns) > 0 {
			score += board.Score(len(pawns)) * isolatedPenalty
		}

		for _, sq := range pawns {
			rank := sq.Rank()
			forward := rank
			if c == board.Black {
				forward = 7 - rank
			}

			if isPassed(opp, file, rank, c) {
				score += passedBonus[forward]
			}
			if isBackward(facts, opp, file, rank, c) {
				score += backwardPenalty
			}
			if isConnected(facts, file, rank) {
				score += connectedBonus
			}
			if isChained(facts, file, rank, c) {
				score += chainedBonus
			}
		}
	}
	return score
}

// isPassed reports that no opposing pawn stands on file-1..file+1 at a rank ahead
// (toward promotion) of rank.
func isPassed(opp pawnFacts, file, rank int, c board.Color) bool {
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		for _, sq := range opp.byFile[f] {
			if c == board.White && sq.Rank() > rank {
				return false
			}
			if c == board.Black && sq.Rank() < rank {
				return false
			}
		}
	}
	return true
}

// isBackward reports that no friendly pawn stands on an adjacent file at this rank or
// further back, so the pawn cannot be defended by a pawn push.
func isBackward(facts, opp pawnFacts, file, rank int, c board.Color) bool {
	for f := file - 1; f <= file+1; f += 2 {
		if f < 0 || f > 7 {
			continue
		}
		for _, sq := range facts.byFile[f] {
			if c == board.White && sq.Rank() <= rank {
				return false
			}
			if c == board.Black && sq.Rank() >= rank {
				return false
			}
		}
	}
	return true
}

// isConnected reports a friendly pawn standing beside this one on the same rank.
func isConnected(facts pawnFacts, file, rank int) bool {
	for _, f := range []int{file - 1, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		for _, sq := range facts.byFile[f] {
			if sq.Rank() == rank {
				return true
			}
		}
	}
	return false
}

// isChained reports a friendly pawn standing diagonally behind this one, defending it.
func isChained(facts pawnFacts, file, rank int, c board.Color) bool {
	behind := rank - 1
	if c == board.Black {
		behind = rank + 1
	}
	for _, f := range []int{file - 1, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		for _, sq := range facts.byFile[f] {
			if sq.Rank() == behind {
				return true
			}
		}
	}
	return false
}
