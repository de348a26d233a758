package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	bishopPairBonus    = 30
	rookOpenFileBonus  = 25
	rookSemiOpenBonus  = 15
	rookSeventhBonus   = 20
	knightOutpostBonus = 20
)

// positionalScore sums the bishop-pair, rook-file, rook-seventh-rank and knight-outpost
// terms for color c, from c's perspective.
func positionalScore(pos *board.Position, c board.Color) board.Score {
	own := gatherPawns(pos, c)
	opp := gatherPawns(pos, c.Opponent())

	var score board.Score
	bishops := 0
	seventhRank := 6
	if c == board.Black {
		seventhRank = 1
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.PieceAt(sq)
		if p.IsEmpty() || p.Color() != c {
			continue
		}

		switch p.Type() {
		case board.Bishop:
			bishops++
		case board.Rook:
			switch {
			case len(own.byFile[sq.File()]) == 0 && len(opp.byFile[sq.File()]) == 0:
				score += rookOpenFileBonus
			case len(own.byFile[sq.File()]) == 0:
				score += rookSemiOpenBonus
			}
			if sq.Rank() == seventhRank {
				score += rookSeventhBonus
			}
		case board.Knight:
			if isOutpost(pos, c, sq) {
				score += knightOutpostBonus
			}
		}
	}

	if bishops >= 2 {
		score += bishopPairBonus
	}
	return score
}

// isOutpost reports that the knight on sq is defended by a friendly pawn and can never be
// challenged by an enemy pawn (no enemy pawn on an adjacent file ahead of it).
func isOutpost(pos *board.Position, c board.Color, sq board.Square) bool {
	file, rank := sq.File(), sq.Rank()
	behind := rank - 1
	if c == board.Black {
		behind = rank + 1
	}

	defended := false
	for _, f := range []int{file - 1, file + 1} {
		if f < 0 || f > 7 || behind < 0 || behind > 7 {
			continue
		}
		p := pos.PieceAt(board.NewSquare(f, behind))
		if p.Type() == board.Pawn && p.Color() == c {
			defended = true
		}
	}
	if !defended {
		return false
	}

	opp := c.Opponent()
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		for r := 0; r < 8; r++ {
			p := pos.PieceAt(board.NewSquare(f, r))
			if p.Type() != board.Pawn || p.Color() != opp {
				continue
			}
			if c == board.White && r > rank {
				return false
			}
			if c == board.Black && r < rank {
				return false
			}
		}
	}
	return true
}
