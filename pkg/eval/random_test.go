package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
)

type constantEval board.Score

func (c constantEval) Evaluate(*board.Position) board.Score {
	return board.Score(c)
}

func TestRandomWithZeroLimitIsDeterministic(t *testing.T) {
	pos := decodePosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	r := eval.NewRandom(constantEval(100), 0, 1)
	assert.Equal(t, board.Score(100), r.Evaluate(pos))
}

func TestRandomStaysWithinLimit(t *testing.T) {
	pos := decodePosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	r := eval.NewRandom(constantEval(0), 20, 42)

	for i := 0; i < 100; i++ {
		score := r.Evaluate(pos)
		assert.GreaterOrEqual(t, score, board.Score(-10))
		assert.LessOrEqual(t, score, board.Score(10))
	}
}
