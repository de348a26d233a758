package eval

import (
	"math/rand"

	"github.com/corvidchess/corvid/pkg/board"
)

// Random adds a small amount of noise to an evaluation, in the centipawn range
// [-limit/2; limit/2]. A limit of 0 disables it. Useful for de-duplicating otherwise
// identical engine play in testing and self-play.
type Random struct {
	Eval  Evaluator
	rand  *rand.Rand
	limit int
}

// NewRandom wraps eval with up to limit centipawns of deterministic, seeded noise.
func NewRandom(eval Evaluator, limit int, seed int64) Random {
	return Random{
		Eval:  eval,
		rand:  rand.New(rand.NewSource(seed)),
		limit: limit,
	}
}

func (n Random) Evaluate(pos *board.Position) board.Score {
	score := n.Eval.Evaluate(pos)
	if n.limit <= 0 {
		return score
	}
	return score + board.Score(n.rand.Intn(n.limit)-n.limit/2)
}
