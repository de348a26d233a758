// Package engine is the boundary a driver talks to: position state, move application,
// search and perft behind a small synchronous API. It owns no I/O and persists nothing
// across process restarts.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine construction options.
type Options struct {
	// Hash is the transposition table size in MB. Zero still allocates a minimal table;
	// there is no no-table mode.
	Hash uint
	// Noise adds centipawn-scale randomness to leaf evaluations, for variety in self-play.
	Noise uint
	// Seed is the Zobrist hashing and evaluation-noise random seed.
	Seed int64
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%vMB, noise=%vcp, seed=%v}", o.Hash, o.Noise, o.Seed)
}

// Option configures engine construction.
type Option func(*Options)

// WithHash sets the transposition table size in MB.
func WithHash(mb uint) Option {
	return func(o *Options) { o.Hash = mb }
}

// WithNoise adds up to the given centipawns of deterministic noise to leaf evaluations.
func WithNoise(centipawns uint) Option {
	return func(o *Options) { o.Noise = centipawns }
}

// WithSeed sets the Zobrist and evaluation-noise seed. Default is zero.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// Engine encapsulates position state, move legality, search and evaluation.
type Engine struct {
	opts Options
	zt   *board.ZobristTable
	eval eval.Evaluator

	mu     sync.Mutex
	pos    *board.Position
	tt     *search.TranspositionTable
	active searchctl.Handle
}

// New constructs an engine at the standard starting position.
func New(ctx context.Context, opts ...Option) *Engine {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	e := &Engine{
		opts: o,
		zt:   board.NewZobristTable(uint64(o.Seed)),
		tt:   search.NewTranspositionTable(uint64(o.Hash)),
	}
	e.eval = eval.Evaluator(eval.Rich{})
	if o.Noise > 0 {
		e.eval = eval.NewRandom(e.eval, int(o.Noise), o.Seed)
	}
	e.pos = mustDecode(e.zt, fen.Initial)

	logw.Infof(ctx, "corvid %v initialized: %v", version, o)
	return e
}

func mustDecode(zt *board.ZobristTable, record string) *board.Position {
	pos, _, _, _, err := fen.Decode(zt, record)
	if err != nil {
		panic(fmt.Sprintf("engine: malformed built-in fen %q: %v", record, err))
	}
	return pos
}

// NewGame resets to the standard starting position, discarding any active search and
// clearing the transposition table.
func (e *Engine) NewGame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltActiveLocked()
	e.tt.Clear()
	e.pos = mustDecode(e.zt, fen.Initial)

	logw.Infof(ctx, "new game")
}

// SetPositionFromFEN parses and installs a position. On parse failure the engine's
// current position is left unchanged.
func (e *Engine) SetPositionFromFEN(ctx context.Context, record string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, _, _, _, err := fen.Decode(e.zt, record)
	if err != nil {
		return fmt.Errorf("malformed fen %q: %w", record, err)
	}

	e.haltActiveLocked()
	e.tt.Clear()
	e.pos = pos

	logw.Infof(ctx, "set position: %v", record)
	return nil
}

// ExportFEN renders the current position.
func (e *Engine) ExportFEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos, e.pos.Turn, e.pos.HalfmoveClock, e.pos.FullmoveNumber)
}

// LegalMoves returns the legal moves from the current position.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.LegalMoves()
}

// ApplyMove validates (from, to, promotion) against the legal move list and applies it.
// A zero promotion defaults to Queen when the move requires one.
func (e *Engine) ApplyMove(ctx context.Context, from, to board.Square, promotion board.PieceType) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltActiveLocked()

	for _, m := range e.pos.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}

		want := promotion
		if m.Promotion != board.NoPieceType && want == board.NoPieceType {
			want = board.Queen
		}
		if m.Promotion != want {
			continue
		}

		e.pos.Make(m)
		logw.Infof(ctx, "applied %v: %v", m, e.pos)
		return nil
	}
	return fmt.Errorf("illegal move: %v%v", from, to)
}

// Undo reverts the last applied move.
func (e *Engine) Undo(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltActiveLocked()

	if _, ok := e.pos.Undo(); !ok {
		return fmt.Errorf("no move to undo")
	}
	return nil
}

// Search runs iterative deepening under the given time control to completion and
// returns the result. On a terminal position Best is the zero Move.
func (e *Engine) Search(ctx context.Context, tc searchctl.TimeControl) search.Result {
	e.mu.Lock()
	if len(e.pos.LegalMoves()) == 0 {
		e.mu.Unlock()
		return search.Result{}
	}

	pos := e.pos.Clone()
	e.tt.NewSearch()
	launcher := searchctl.Iterative{Negamax: search.Negamax{Eval: e.eval, TT: e.tt}}
	handle, out := launcher.Launch(ctx, pos, searchctl.Options{TimeControl: tc})
	e.active = handle
	e.mu.Unlock()

	var last search.PV
	for pv := range out {
		last = pv
	}

	e.mu.Lock()
	e.active = nil
	e.mu.Unlock()

	var best board.Move
	if len(last.Moves) > 0 {
		best = last.Moves[0]
	}
	return search.Result{Best: best, PV: last}
}

// Perft counts legal leaf nodes at depth below the current position.
func (e *Engine) Perft(depth int) uint64 {
	e.mu.Lock()
	pos := e.pos.Clone()
	e.mu.Unlock()

	return board.Perft(pos, depth)
}

// PerftDivide breaks the perft count at depth down by the root move that produced it,
// keyed by long algebraic notation.
func (e *Engine) PerftDivide(depth int) map[string]uint64 {
	e.mu.Lock()
	pos := e.pos.Clone()
	e.mu.Unlock()

	return board.PerftDivide(pos, depth)
}

// Hash returns the Zobrist hash of the current position.
func (e *Engine) Hash() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Hash
}

// IsDraw reports whether the current position is drawn by the fifty-move rule,
// threefold repetition or insufficient material.
func (e *Engine) IsDraw() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.IsDraw() || e.pos.HasInsufficientMaterial()
}

// Result reports the terminal status of the current position: checkmate, stalemate, or a
// draw by the fifty-move rule, threefold repetition or insufficient material. The zero
// Result means the game is undecided.
func (e *Engine) Result() board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return board.Adjudicate(e.pos)
}

func (e *Engine) haltActiveLocked() {
	if e.active != nil {
		e.active.Halt()
		e.active = nil
	}
}
