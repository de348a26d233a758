// Package fen reads and writes chess positions in Forsyth-Edwards Notation. This is a
// boundary concern: the core consumes and emits a board.Position value; the textual format
// lives here, not in the position representation itself.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidchess/corvid/pkg/board"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a position, the side to move, the halfmove clock and the
// fullmove number. Returns an error on malformed input; the caller's position is left
// unchanged (Decode never mutates anything, it only builds a new one).
func Decode(zt *board.ZobristTable, record string) (*board.Position, board.Color, uint32, uint32, error) {
	parts := strings.Fields(strings.TrimSpace(record))
	if len(parts) != 6 {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of fields in FEN: %q", record)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid FEN %q: %w", record, err)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid active color in FEN: %q", record)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid castling rights in FEN: %q", record)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("invalid en passant target in FEN: %q", record)
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, 0, 0, 0, fmt.Errorf("invalid halfmove clock in FEN: %q", record)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, 0, 0, 0, fmt.Errorf("invalid fullmove number in FEN: %q", record)
	}

	pos := board.NewPosition(zt, placements, turn, castling, ep, uint32(halfmove), uint32(fullmove))
	return pos, turn, uint32(halfmove), uint32(fullmove), nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	var placements []board.Placement

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %v", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			switch {
			case unicode.IsDigit(r):
				file += int(r - '0')
			default:
				c, pt, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				if file > 7 {
					return nil, fmt.Errorf("rank %v overflows 8 files", 8-i)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(file, rank),
					Piece:  board.MakePiece(c, pt),
				})
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("rank %v does not sum to 8 files", 8-i)
		}
	}
	return placements, nil
}

// Encode renders a position back into a FEN record.
func Encode(pos *board.Position, turn board.Color, halfmove, fullmove uint32) string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		blanks := 0
		for f := 0; f < 8; f++ {
			p := pos.PieceAt(board.NewSquare(f, r))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if pos.EPTarget != board.NoSquare {
		ep = pos.EPTarget.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, printCastling(pos.Castling), ep, halfmove, fullmove)
}

func parseCastling(str string) (board.CastlingRights, bool) {
	var rights board.CastlingRights
	if str == "-" {
		return rights, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			rights |= board.WhiteKingSideCastle
		case 'Q':
			rights |= board.WhiteQueenSideCastle
		case 'k':
			rights |= board.BlackKingSideCastle
		case 'q':
			rights |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return rights, true
}

func printCastling(c board.CastlingRights) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.PieceType, bool) {
	pt, ok := board.ParsePieceType(unicode.ToLower(r))
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, pt, true
	}
	return board.Black, pt, true
}

func printPiece(p board.Piece) rune {
	r := []rune(p.Type().String())[0]
	if p.Color() == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
