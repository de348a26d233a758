// Package board contains chess position representation, move generation, and evaluation
// primitives shared by the search engine.
package board

import "fmt"

const (
	repetitionDrawCount = 3
	fiftyMoveClockLimit = 100
)

// irreversibleState is the snapshot of everything Make cannot recompute from the move
// itself, captured immediately before the move is applied so Undo can restore it verbatim.
type irreversibleState struct {
	Castling      CastlingRights
	EPTarget      Square
	HalfmoveClock uint32
	Hash          uint64
}

// Placement is a single piece on a square, used to build a Position from scratch (the FEN
// boundary package is the typical caller).
type Placement struct {
	Square Square
	Piece  Piece
}

// Position is a mutable chess position: board, side to move, castling rights, en-passant
// target, move clocks, and an incrementally maintained Zobrist hash. Make/Undo are strictly
// paired; no search routine may return with the position left mutated.
type Position struct {
	Board          [NumSquares]Piece
	Turn           Color
	Castling       CastlingRights
	EPTarget       Square
	HalfmoveClock  uint32
	FullmoveNumber uint32
	Hash           uint64

	zt *ZobristTable

	moveHistory         []Move
	irreversibleHistory []irreversibleState
	positionHistory      []uint64
}

// NewPosition builds a position from explicit placements and metadata, computing its hash
// from scratch. Used by the FEN decoder and by tests that want a specific arrangement.
func NewPosition(zt *ZobristTable, placements []Placement, turn Color, castling CastlingRights, ep Square, halfmoveClock, fullmoveNumber uint32) *Position {
	p := &Position{
		Turn:           turn,
		Castling:       castling,
		EPTarget:       ep,
		HalfmoveClock:  halfmoveClock,
		FullmoveNumber: fullmoveNumber,
		zt:             zt,
	}
	for _, pl := range placements {
		p.Board[pl.Square] = pl.Piece
	}
	p.Hash = zt.ComputeHash(p)
	return p
}

// NewStartingPosition returns the standard chess starting position.
func NewStartingPosition(zt *ZobristTable) *Position {
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var placements []Placement
	for f := 0; f < 8; f++ {
		placements = append(placements,
			Placement{NewSquare(f, 0), MakePiece(White, back[f])},
			Placement{NewSquare(f, 1), MakePiece(White, Pawn)},
			Placement{NewSquare(f, 6), MakePiece(Black, Pawn)},
			Placement{NewSquare(f, 7), MakePiece(Black, back[f])},
		)
	}
	return NewPosition(zt, placements, White, FullCastlingRights, NoSquare, 0, 1)
}

// Clone returns a deep copy that shares only the read-only Zobrist table. Search operates
// on a clone so the engine's canonical position is never mutated by a search in progress.
func (p *Position) Clone() *Position {
	cp := *p
	cp.moveHistory = append([]Move(nil), p.moveHistory...)
	cp.irreversibleHistory = append([]irreversibleState(nil), p.irreversibleHistory...)
	cp.positionHistory = append([]uint64(nil), p.positionHistory...)
	return &cp
}

func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// KingSquare locates the king of the given color. Panics if absent: exactly one king of
// each color on the board is a Position invariant enforced by every mutator.
func (p *Position) KingSquare(c Color) Square {
	king := MakePiece(c, King)
	for sq := A1; sq <= H8; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	panic(fmt.Sprintf("no %v king on board: %v", c, p))
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	f, r := sq.File(), sq.Rank()

	pawnRank := r - 1
	if by == Black {
		pawnRank = r + 1
	}
	if pawnRank >= 0 && pawnRank < 8 {
		for _, pf := range [2]int{f - 1, f + 1} {
			if pf >= 0 && pf < 8 {
				if p.Board[NewSquare(pf, pawnRank)] == MakePiece(by, Pawn) {
					return true
				}
			}
		}
	}

	knight := MakePiece(by, Knight)
	for _, s := range KnightAttacks(sq) {
		if p.Board[s] == knight {
			return true
		}
	}

	king := MakePiece(by, King)
	for _, s := range KingAttacks(sq) {
		if p.Board[s] == king {
			return true
		}
	}

	for _, dir := range RookDirections {
		if s, ok := p.firstOccupied(sq, dir); ok {
			t := p.Board[s].Type()
			if p.Board[s].Color() == by && (t == Rook || t == Queen) {
				return true
			}
		}
	}
	for _, dir := range BishopDirections {
		if s, ok := p.firstOccupied(sq, dir); ok {
			t := p.Board[s].Type()
			if p.Board[s].Color() == by && (t == Bishop || t == Queen) {
				return true
			}
		}
	}
	return false
}

func (p *Position) firstOccupied(sq Square, dir int) (Square, bool) {
	for _, s := range Ray(sq, dir) {
		if !p.Board[s].IsEmpty() {
			return s, true
		}
	}
	return NoSquare, false
}

// IsChecked reports whether the given color's king is attacked.
func (p *Position) IsChecked(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Opponent())
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	default:
		return NoSquare, NoSquare
	}
}

// Make applies a pseudo-legal move in place, incrementally updating the hash. The caller
// (the move generator's legality filter, or the engine boundary) is responsible for only
// ever presenting moves resolved from LegalMoves/PseudoLegalMoves of this exact position.
func (p *Position) Make(m Move) {
	turn := p.Turn

	p.irreversibleHistory = append(p.irreversibleHistory, irreversibleState{
		Castling:      p.Castling,
		EPTarget:      p.EPTarget,
		HalfmoveClock: p.HalfmoveClock,
		Hash:          p.Hash,
	})
	p.positionHistory = append(p.positionHistory, p.Hash)

	mover := MakePiece(turn, m.Piece)
	p.Hash ^= p.zt.PieceKey(mover, m.From)
	p.Board[m.From] = NoPiece

	if m.Captured != NoPieceType {
		capSq := m.To
		if m.IsEnPassant {
			capSq = epCapturedPawnSquare(turn, m.To)
		}
		captured := MakePiece(turn.Opponent(), m.Captured)
		p.Hash ^= p.zt.PieceKey(captured, capSq)
		p.Board[capSq] = NoPiece
	}

	placedType := m.Piece
	if m.Promotion != NoPieceType {
		placedType = m.Promotion
	}
	placed := MakePiece(turn, placedType)
	p.Hash ^= p.zt.PieceKey(placed, m.To)
	p.Board[m.To] = placed

	if m.IsCastling {
		rookFrom, rookTo := castlingRookSquares(m.To)
		rook := MakePiece(turn, Rook)
		p.Hash ^= p.zt.PieceKey(rook, rookFrom)
		p.Board[rookFrom] = NoPiece
		p.Hash ^= p.zt.PieceKey(rook, rookTo)
		p.Board[rookTo] = rook
	}

	p.Hash ^= p.zt.CastlingKey(p.Castling)
	p.updateCastlingRights(m, turn)
	p.Hash ^= p.zt.CastlingKey(p.Castling)

	if p.EPTarget != NoSquare {
		p.Hash ^= p.zt.EPFileKey(p.EPTarget.File())
	}
	p.EPTarget = NoSquare
	if m.Piece == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		p.EPTarget = crossedSquare(m.From, m.To)
		p.Hash ^= p.zt.EPFileKey(p.EPTarget.File())
	}

	if m.Piece == Pawn || m.Captured != NoPieceType {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if turn == Black {
		p.FullmoveNumber++
	}

	p.Turn = turn.Opponent()
	p.Hash ^= p.zt.SideToMoveKey()

	p.moveHistory = append(p.moveHistory, m)
}

// updateCastlingRights clears rights lost by this move: a king move loses both rights of
// that color; any move touching a corner square (as mover or captor) loses that corner's
// right, which also handles the rook being captured on its home square.
func (p *Position) updateCastlingRights(m Move, turn Color) {
	if m.Piece == King {
		if turn == White {
			p.Castling &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.Castling &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case A1:
			p.Castling &^= WhiteQueenSideCastle
		case H1:
			p.Castling &^= WhiteKingSideCastle
		case A8:
			p.Castling &^= BlackQueenSideCastle
		case H8:
			p.Castling &^= BlackKingSideCastle
		}
	}
}

// Undo reverses the last move, restoring every field bit-for-bit including Hash. Returns
// false if there is no move to undo.
func (p *Position) Undo() (Move, bool) {
	n := len(p.moveHistory)
	if n == 0 {
		return Move{}, false
	}

	m := p.moveHistory[n-1]
	p.moveHistory = p.moveHistory[:n-1]

	snap := p.irreversibleHistory[len(p.irreversibleHistory)-1]
	p.irreversibleHistory = p.irreversibleHistory[:len(p.irreversibleHistory)-1]
	p.positionHistory = p.positionHistory[:len(p.positionHistory)-1]

	mover := p.Turn.Opponent() // Turn was flipped by Make; the mover made the move we're undoing.

	if m.IsCastling {
		rookFrom, rookTo := castlingRookSquares(m.To)
		p.Board[rookTo] = NoPiece
		p.Board[rookFrom] = MakePiece(mover, Rook)
	}

	p.Board[m.To] = NoPiece
	p.Board[m.From] = MakePiece(mover, m.Piece)

	if m.Captured != NoPieceType {
		capSq := m.To
		if m.IsEnPassant {
			capSq = epCapturedPawnSquare(mover, m.To)
		}
		p.Board[capSq] = MakePiece(mover.Opponent(), m.Captured)
	}

	if p.Turn == White { // mover was Black: fullmove number was advanced on the way in.
		p.FullmoveNumber--
	}

	p.Castling = snap.Castling
	p.EPTarget = snap.EPTarget
	p.HalfmoveClock = snap.HalfmoveClock
	p.Hash = snap.Hash
	p.Turn = mover

	return m, true
}

func epCapturedPawnSquare(mover Color, to Square) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

func crossedSquare(from, to Square) Square {
	if to > from {
		return from + 8
	}
	return from - 8
}

// IsDraw reports whether the position is drawn by the fifty-move rule or threefold
// repetition. Does not detect stalemate, which the driver derives from an empty legal
// move list (see LegalMoves).
func (p *Position) IsDraw() bool {
	if p.HalfmoveClock >= fiftyMoveClockLimit {
		return true
	}

	limit := len(p.positionHistory)
	if int(p.HalfmoveClock) < limit {
		limit = int(p.HalfmoveClock)
	}

	count := 1 // the current position itself
	for i := 1; i <= limit; i++ {
		if p.positionHistory[len(p.positionHistory)-i] == p.Hash {
			count++
		}
	}
	return count >= repetitionDrawCount
}

// HasInsufficientMaterial reports king-vs-king and king-vs-king-plus-minor-piece draws.
// Supplemental to the fifty-move/repetition rules the specification requires; grounded in
// the same adjudication the teacher engine performs after every capture/promotion.
func (p *Position) HasInsufficientMaterial() bool {
	var minors, others int
	for sq := A1; sq <= H8; sq++ {
		switch p.Board[sq].Type() {
		case NoPieceType, King:
		case Bishop, Knight:
			minors++
		default:
			others++
		}
	}
	return others == 0 && minors <= 1
}

func (p *Position) String() string {
	var sb []byte
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sb = append(sb, []byte(p.Board[NewSquare(f, r)].String())...)
		}
		sb = append(sb, '\n')
	}
	return fmt.Sprintf("%s(turn=%v, castling=%v, ep=%v, halfmove=%v, fullmove=%v, hash=%x)",
		sb, p.Turn, p.Castling, p.EPTarget, p.HalfmoveClock, p.FullmoveNumber, p.Hash)
}
