package board

import "fmt"

// Square is an algebraic board square in [0, 63]. Square 0 is a1, square 63
// is h8. Ranks and files are zero-indexed: rank = square/8, file = square%8.
type Square int8

const (
	NoSquare Square = -1
)

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const NumSquares = 64

// NewSquare builds a square from zero-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

// IsValid reports whether the square is on the board.
func (s Square) IsValid() bool {
	return s >= A1 && s <= H8
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", str)
	}
	file := int(runes[0] - 'a')
	rank := int(runes[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", str)
	}
	return NewSquare(file, rank), nil
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+rune(s.File()), '1'+rune(s.Rank()))
}
