package board

// Outcome is the game-theoretic result of a position, if decided.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// Win returns the winning outcome for the given color.
func Win(c Color) Outcome {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Reason records why a Result was reached.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition
	FiftyMoveRule
	InsufficientMaterial
)

// Result is the terminal status of a position, if any.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) String() string {
	if r.Outcome == Undecided {
		return "undecided"
	}
	return r.Outcome.String() + " by " + r.Reason.String()
}

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "none"
	}
}

// Adjudicate reports the terminal status of pos: checkmate/stalemate from an empty legal
// move list, then the fifty-move rule, threefold repetition and insufficient material in
// that order. A non-terminal position returns the zero Result.
func Adjudicate(pos *Position) Result {
	if len(pos.LegalMoves()) == 0 {
		if pos.IsChecked(pos.Turn) {
			return Result{Outcome: Win(pos.Turn.Opponent()), Reason: Checkmate}
		}
		return Result{Outcome: Draw, Reason: Stalemate}
	}
	if pos.HalfmoveClock >= fiftyMoveClockLimit {
		return Result{Outcome: Draw, Reason: FiftyMoveRule}
	}
	if pos.IsDraw() {
		return Result{Outcome: Draw, Reason: Repetition}
	}
	if pos.HasInsufficientMaterial() {
		return Result{Outcome: Draw, Reason: InsufficientMaterial}
	}
	return Result{}
}
