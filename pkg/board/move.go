package board

import "fmt"

// Move represents a not-necessarily-legal move along with the metadata make/undo need to
// apply and reverse it without consulting the board it came from.
type Move struct {
	From, To Square

	// Piece is the type of the piece making the move.
	Piece PieceType
	// Captured is the type of the captured piece, or NoPieceType if the move is not a capture.
	// For en passant this is always Pawn, even though the captured pawn does not stand on To.
	Captured PieceType
	// Promotion is the piece type a pawn promotes to, or NoPieceType if this is not a promotion.
	Promotion PieceType

	IsCastling  bool
	IsEnPassant bool
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The returned move carries only From/To/Promotion; callers resolve it against the legal
// move list to fill in Piece/Captured/IsCastling/IsEnPassant.
func ParseMove(str string) (Move, error) {
	if len(str) < 4 || len(str) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(str[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(str) == 5 {
		promo, ok := ParsePieceType(rune(str[4]))
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion in move %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

// Equals compares moves by their long-algebraic identity: from, to and promotion. Two
// moves resolved from the same position with the same From/To/Promotion are the same move.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsQuiet reports whether the move is neither a capture nor a promotion: the set that
// quiescence search skips outside of check and that MVV-LVA ordering ranks at zero.
func (m Move) IsQuiet() bool {
	return m.Captured == NoPieceType && m.Promotion == NoPieceType
}

func (m Move) String() string {
	if m.Promotion != NoPieceType {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
