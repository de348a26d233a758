package board

// PseudoLegalMoves enumerates every pseudo-legal move for the side to move: obeying piece
// movement rules but possibly leaving the mover's own king in check.
func (p *Position) PseudoLegalMoves() []Move {
	var moves []Move
	turn := p.Turn

	for sq := A1; sq <= H8; sq++ {
		piece := p.Board[sq]
		if piece.IsEmpty() || piece.Color() != turn {
			continue
		}

		switch piece.Type() {
		case Pawn:
			p.genPawnMoves(sq, turn, &moves)
		case Knight:
			p.genStepMoves(sq, turn, Knight, KnightAttacks(sq), &moves)
		case King:
			p.genStepMoves(sq, turn, King, KingAttacks(sq), &moves)
			p.genCastling(sq, turn, &moves)
		case Bishop:
			p.genSlideMoves(sq, turn, Bishop, BishopDirections[:], &moves)
		case Rook:
			p.genSlideMoves(sq, turn, Rook, RookDirections[:], &moves)
		case Queen:
			p.genSlideMoves(sq, turn, Queen, RookDirections[:], &moves)
			p.genSlideMoves(sq, turn, Queen, BishopDirections[:], &moves)
		}
	}
	return moves
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (p *Position) genPawnMoves(sq Square, turn Color, moves *[]Move) {
	forward := 8
	startRank, promoRank := 1, 7
	if turn == Black {
		forward = -8
		startRank, promoRank = 6, 0
	}

	one := sq + Square(forward)
	if one.IsValid() && p.Board[one].IsEmpty() {
		p.addPawnMove(sq, one, turn, NoPieceType, false, promoRank, moves)

		if sq.Rank() == startRank {
			two := sq + Square(2*forward)
			if p.Board[two].IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: two, Piece: Pawn})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		tf := sq.File() + df
		tr := sq.Rank() + forward/8
		if !onBoard(tf, tr) {
			continue
		}
		to := NewSquare(tf, tr)

		if target := p.Board[to]; !target.IsEmpty() && target.Color() != turn {
			p.addPawnMove(sq, to, turn, target.Type(), false, promoRank, moves)
		} else if to == p.EPTarget && p.EPTarget != NoSquare {
			*moves = append(*moves, Move{From: sq, To: to, Piece: Pawn, Captured: Pawn, IsEnPassant: true})
		}
	}
}

func (p *Position) addPawnMove(from, to Square, turn Color, captured PieceType, isEnPassant bool, promoRank int, moves *[]Move) {
	if to.Rank() == promoRank {
		for _, promo := range promotionPieces {
			*moves = append(*moves, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: promo, IsEnPassant: isEnPassant})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Piece: Pawn, Captured: captured, IsEnPassant: isEnPassant})
}

func (p *Position) genStepMoves(sq Square, turn Color, pt PieceType, targets []Square, moves *[]Move) {
	for _, to := range targets {
		target := p.Board[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: sq, To: to, Piece: pt})
		} else if target.Color() != turn {
			*moves = append(*moves, Move{From: sq, To: to, Piece: pt, Captured: target.Type()})
		}
	}
}

func (p *Position) genSlideMoves(sq Square, turn Color, pt PieceType, dirs []int, moves *[]Move) {
	for _, dir := range dirs {
		for _, to := range Ray(sq, dir) {
			target := p.Board[to]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: to, Piece: pt})
				continue
			}
			if target.Color() != turn {
				*moves = append(*moves, Move{From: sq, To: to, Piece: pt, Captured: target.Type()})
			}
			break
		}
	}
}

func (p *Position) genCastling(sq Square, turn Color, moves *[]Move) {
	if p.IsAttacked(sq, turn.Opponent()) {
		return // may not castle out of check
	}

	type option struct {
		right          CastlingRights
		rookSq         Square
		between        []Square
		kingTo, transit Square
	}

	var options []option
	if turn == White {
		options = []option{
			{WhiteKingSideCastle, H1, []Square{F1, G1}, G1, F1},
			{WhiteQueenSideCastle, A1, []Square{B1, C1, D1}, C1, D1},
		}
	} else {
		options = []option{
			{BlackKingSideCastle, H8, []Square{F8, G8}, G8, F8},
			{BlackQueenSideCastle, A8, []Square{B8, C8, D8}, C8, D8},
		}
	}

	for _, o := range options {
		if !p.Castling.IsAllowed(o.right) {
			continue
		}
		if p.Board[o.rookSq] != MakePiece(turn, Rook) {
			continue
		}
		clear := true
		for _, s := range o.between {
			if !p.Board[s].IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		if p.IsAttacked(o.transit, turn.Opponent()) || p.IsAttacked(o.kingTo, turn.Opponent()) {
			continue
		}
		*moves = append(*moves, Move{From: sq, To: o.kingTo, Piece: King, IsCastling: true})
	}
}

// LegalMoves enumerates every legal move: pseudo-legal moves that do not leave the
// mover's own king in check after being made.
func (p *Position) LegalMoves() []Move {
	turn := p.Turn
	pseudo := p.PseudoLegalMoves()

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		p.Make(m)
		if !p.IsChecked(turn) {
			legal = append(legal, m)
		}
		p.Undo()
	}
	return legal
}
