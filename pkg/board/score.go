package board

import "fmt"

// Score is a signed evaluation or search score in centipawns, from White's perspective:
// positive favors White. 32 bits: wide enough to carry MateScore-distance encodings
// that would overflow a 16-bit centipawn range.
type Score int32

const (
	MinScore Score = -MateScore - 1000
	MaxScore Score = MateScore + 1000

	// MateScore is the sentinel magnitude for a forced mate. A mate found N plies from
	// the current node is encoded as MateScore-N (for the side delivering it) so that
	// faster mates sort ahead of slower ones.
	MateScore Score = 100000

	// MaxMateDistance bounds how many plies of mate-distance can be encoded; scores closer
	// to MateScore than this are considered mate scores by IsMate.
	MaxMateDistance = 1000

	ZeroScore    Score = 0
	InvalidScore Score = MinScore - 1
)

func (s Score) Negate() Score {
	if s == InvalidScore {
		return InvalidScore
	}
	return -s
}

func (s Score) Less(o Score) bool {
	return s < o
}

func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// MateDistance reports whether the score encodes a forced mate, and if so the number of plies
// to deliver it from this node's perspective (positive: this side mates; negative: this
// side gets mated).
func (s Score) MateDistance() (int, bool) {
	switch {
	case s > MateScore-MaxMateDistance:
		return int(MateScore - s), true
	case s < -MateScore+MaxMateDistance:
		return -int(MateScore + s), true
	default:
		return 0, false
	}
}

// IncrementMateDistance adjusts a mate score by one ply as it propagates up the
// recursion, so that mates further from the root keep a smaller magnitude.
func IncrementMateDistance(s Score) Score {
	switch {
	case s > MateScore-MaxMateDistance:
		return s - 1
	case s < -MateScore+MaxMateDistance:
		return s + 1
	default:
		return s
	}
}

// MaxScoreOf returns the larger of two scores.
func MaxScoreOf(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// MinScoreOf returns the smaller of two scores.
func MinScoreOf(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

func (s Score) String() string {
	if d, ok := s.MateDistance(); ok {
		return fmt.Sprintf("mate(%d)", d)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}
