package board

// PieceType represents a chess piece kind (King, Pawn, etc) with no color. 3 bits.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

const NumPieceTypes = 6 // Pawn..King, excluding NoPieceType

// Value is the material value in centipawns.
func (p PieceType) Value() Score {
	switch p {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case NoPieceType:
		return " "
	case Pawn:
		return "p"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece packs a PieceType and Color into a single mailbox cell. 4 bits.
type Piece uint8

const NoPiece Piece = 0

// MakePiece packs a color and type into a mailbox entry.
func MakePiece(c Color, t PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(t))
}

func (p Piece) Type() PieceType {
	return PieceType(p & 0x7)
}

func (p Piece) Color() Color {
	return Color(p >> 3)
}

func (p Piece) IsEmpty() bool {
	return p.Type() == NoPieceType
}

// Kind packs (type, color) into 0..11, matching the Zobrist piece-square table layout.
func (p Piece) Kind() int {
	return int(p.Color())*NumPieceTypes + int(p.Type()-1)
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color() == White {
		switch p.Type() {
		case Pawn:
			return "P"
		case Bishop:
			return "B"
		case Knight:
			return "N"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		}
	}
	return p.Type().String()
}
