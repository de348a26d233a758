// Package search implements alpha-beta search over board.Position: a transposition table,
// quiescence search, move ordering, and the negamax driver iterative deepening calls at
// each depth.
package search

import (
	"sync/atomic"

	"github.com/corvidchess/corvid/pkg/board"
)

// Bound records how a stored score relates to the true minimax value of the node it was
// computed for: exactly, or only as a lower/upper bound (the node failed high/low).
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return "?"
	}
}

// TTEntry is what a transposition table probe returns.
type TTEntry struct {
	Depth int
	Score board.Score
	Bound Bound
	Move  board.Move // zero value if no move was stored (e.g. a terminal node)
	HasMove bool
}

const ttEntrySize = 16 // bytes/slot: see node below

// node is the stored slot contents: a 64-bit key, a 32-bit score, a 16-bit packed move
// (from | to<<6, per EncodeMove) and a 16-bit packed metadata word holding promotion (3
// bits), bound (2 bits), depth (8 bits) and a 3-bit replacement generation, for 16 bytes
// total. age is deliberately narrow: NewSearch cycles it mod 8, which is enough
// distinctness for the depth/age replacement policy without growing the slot.
type node struct {
	key      uint64
	score    board.Score
	moveCode uint16
	meta     uint16
}

const (
	metaPromotionBits = 3
	metaBoundBits     = 2
	metaDepthBits     = 8
	metaAgeBits       = 3

	metaPromotionShift = 0
	metaBoundShift     = metaPromotionShift + metaPromotionBits
	metaDepthShift     = metaBoundShift + metaBoundBits
	metaAgeShift       = metaDepthShift + metaDepthBits

	metaPromotionMask = uint16(1)<<metaPromotionBits - 1
	metaBoundMask     = uint16(1)<<metaBoundBits - 1
	metaDepthMask     = uint16(1)<<metaDepthBits - 1
	metaAgeMask       = uint16(1)<<metaAgeBits - 1
)

func packMeta(promotion board.PieceType, bound Bound, depth uint8, age uint8) uint16 {
	return uint16(promotion)<<metaPromotionShift |
		uint16(bound)<<metaBoundShift |
		uint16(depth)<<metaDepthShift |
		uint16(age&uint8(metaAgeMask))<<metaAgeShift
}

func unpackPromotion(meta uint16) board.PieceType { return board.PieceType(meta >> metaPromotionShift & metaPromotionMask) }
func unpackBound(meta uint16) Bound               { return Bound(meta >> metaBoundShift & metaBoundMask) }
func unpackDepth(meta uint16) uint8               { return uint8(meta >> metaDepthShift & metaDepthMask) }
func unpackAge(meta uint16) uint8                 { return uint8(meta >> metaAgeShift & metaAgeMask) }

// EncodeMove packs a move's from/to squares into 16 bits, per the specification's minimal
// transposition table move encoding.
func EncodeMove(m board.Move) uint16 {
	return uint16(m.From) | uint16(m.To)<<6
}

// DecodeMove unpacks the squares packed by EncodeMove. The returned move carries only
// From/To/Promotion; callers resolve it against the legal move list to recover Piece/Captured.
func DecodeMove(code uint16, promotion board.PieceType) board.Move {
	return board.Move{
		From:      board.Square(code & 0x3f),
		To:        board.Square((code >> 6) & 0x3f),
		Promotion: promotion,
	}
}

// TranspositionTable is a fixed-capacity, open-addressed table keyed by the low bits of
// the position hash, with depth/age replacement. Safe for concurrent use.
type TranspositionTable struct {
	table []atomic.Pointer[node]
	mask  uint64
	age   uint8
	used  atomic.Uint64
}

// NewTranspositionTable allocates a table sized from a MB budget, rounded up to the next
// power of two number of entries.
func NewTranspositionTable(mb uint64) *TranspositionTable {
	budget := mb << 20
	n := nextPow2(budget / ttEntrySize)
	if n == 0 {
		n = 1
	}
	return &TranspositionTable{
		table: make([]atomic.Pointer[node], n),
		mask:  n - 1,
	}
}

func nextPow2(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	n := uint64(1)
	for n < v {
		n <<= 1
	}
	return n
}

// Probe returns the slot for hash if its stored key matches.
func (t *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	slot := t.table[hash&t.mask].Load()
	if slot == nil || slot.key != hash {
		return TTEntry{}, false
	}
	entry := TTEntry{
		Depth: int(unpackDepth(slot.meta)),
		Score: slot.score,
		Bound: unpackBound(slot.meta),
	}
	if promotion := unpackPromotion(slot.meta); slot.moveCode != 0 || promotion != board.NoPieceType {
		entry.Move = DecodeMove(slot.moveCode, promotion)
		entry.HasMove = true
	}
	return entry, true
}

// Store replaces the slot iff it is empty, its age differs from the table's current
// search generation, or the new depth is at least the stored depth.
func (t *TranspositionTable) Store(hash uint64, depth int, score board.Score, bound Bound, move board.Move) {
	idx := hash & t.mask
	slot := t.table[idx].Load()

	if slot != nil && unpackAge(slot.meta) == t.age && uint8(depth) < unpackDepth(slot.meta) {
		return
	}

	fresh := &node{
		key:      hash,
		score:    score,
		moveCode: EncodeMove(move),
		meta:     packMeta(move.Promotion, bound, uint8(depth), t.age),
	}
	if t.table[idx].CompareAndSwap(slot, fresh) && slot == nil {
		t.used.Add(1)
	}
}

// NewSearch advances the replacement generation, allowing shallow fresh writes to evict
// stale deep entries from a prior search without a full clear. The generation cycles mod
// 8 to fit the packed slot metadata.
func (t *TranspositionTable) NewSearch() {
	t.age = (t.age + 1) & uint8(metaAgeMask)
}

// Clear zeroes every slot.
func (t *TranspositionTable) Clear() {
	for i := range t.table {
		t.table[i].Store(nil)
	}
	t.used.Store(0)
}

// Size returns the table size in bytes.
func (t *TranspositionTable) Size() uint64 {
	return uint64(len(t.table)) * ttEntrySize
}

// Used returns the fraction of slots populated, in [0;1].
func (t *TranspositionTable) Used() float64 {
	return float64(t.used.Load()) / float64(len(t.table))
}
