package board

// ZobristTable is a pseudo-randomized table for computing an incremental position hash.
//
// Keys are generated with a deterministic xorshift64 generator seeded by a fixed constant
// (https://www.jstatsoft.org/article/view/v008i14) rather than math/rand, so that hashes
// are reproducible across processes and can be used directly as test fixtures.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristTable struct {
	pieces     [NumColors * NumPieceTypes][NumSquares]uint64
	castling   [NumCastlingFlags]uint64
	epFile     [8]uint64
	sideToMove uint64
}

// defaultZobristSeed is George Marsaglia's canonical xorshift64 sample seed. Used whenever
// callers do not supply their own, so that the standard starting-position hash (and every
// fixture derived from it) is reproducible across builds.
const defaultZobristSeed uint64 = 88172645463325252

// xorshift64 is a minimal deterministic PRNG: no allocation, no global state, period 2^64-1.
type xorshift64 struct {
	state uint64
}

func newXorshift64(seed uint64) *xorshift64 {
	if seed == 0 {
		seed = defaultZobristSeed
	}
	return &xorshift64{state: seed}
}

func (x *xorshift64) next() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state
}

// NewZobristTable builds a table from the given seed. A seed of zero selects the default,
// well-known seed so the starting position hashes the same way everywhere.
func NewZobristTable(seed uint64) *ZobristTable {
	r := newXorshift64(seed)

	z := &ZobristTable{}
	for kind := range z.pieces {
		for sq := 0; sq < NumSquares; sq++ {
			z.pieces[kind][sq] = r.next()
		}
	}
	for i := range z.castling {
		z.castling[i] = r.next()
	}
	for f := range z.epFile {
		z.epFile[f] = r.next()
	}
	z.sideToMove = r.next()
	return z
}

// PieceKey returns the key for a piece standing on a square.
func (z *ZobristTable) PieceKey(p Piece, sq Square) uint64 {
	return z.pieces[p.Kind()][sq]
}

// CastlingFlagKey returns the key for a single castling flag, XORed independently so that
// losing one right (say, White kingside) toggles only that bit of hash state.
func (z *ZobristTable) CastlingFlagKey(flag CastlingRights) uint64 {
	switch flag {
	case WhiteKingSideCastle:
		return z.castling[0]
	case WhiteQueenSideCastle:
		return z.castling[1]
	case BlackKingSideCastle:
		return z.castling[2]
	case BlackQueenSideCastle:
		return z.castling[3]
	default:
		return 0
	}
}

// CastlingKey XORs together the keys of every flag currently set in rights.
func (z *ZobristTable) CastlingKey(rights CastlingRights) uint64 {
	var h uint64
	for _, flag := range []CastlingRights{WhiteKingSideCastle, WhiteQueenSideCastle, BlackKingSideCastle, BlackQueenSideCastle} {
		if rights.IsAllowed(flag) {
			h ^= z.CastlingFlagKey(flag)
		}
	}
	return h
}

// EPFileKey returns the key for an en-passant target square's file.
func (z *ZobristTable) EPFileKey(file int) uint64 {
	return z.epFile[file]
}

// SideToMoveKey returns the key XORed in whenever it is Black's turn.
func (z *ZobristTable) SideToMoveKey() uint64 {
	return z.sideToMove
}

// ComputeHash recomputes the Zobrist hash of a position from scratch, ignoring its
// incrementally maintained Hash field. Used to verify the incremental update (testable
// property 2) and to seed a freshly decoded position.
func (z *ZobristTable) ComputeHash(pos *Position) uint64 {
	var h uint64
	for sq := A1; sq <= H8; sq++ {
		p := pos.Board[sq]
		if p.IsEmpty() {
			continue
		}
		h ^= z.PieceKey(p, sq)
	}
	h ^= z.CastlingKey(pos.Castling)
	if pos.EPTarget != NoSquare {
		h ^= z.EPFileKey(pos.EPTarget.File())
	}
	if pos.Turn == Black {
		h ^= z.sideToMove
	}
	return h
}
