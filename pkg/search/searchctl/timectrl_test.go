package searchctl_test

import (
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
)

func TestMoveTimeLimitsAreEqualSoftAndHard(t *testing.T) {
	tc := searchctl.MoveTime(500 * time.Millisecond)
	soft, hard := tc.Limits(10)
	assert.Equal(t, 500*time.Millisecond, soft)
	assert.Equal(t, 500*time.Millisecond, hard)
}

func TestTimeIncrementHardLimitNeverExceedsEightyPercentOfRemaining(t *testing.T) {
	tc := searchctl.TimeIncrement(10*time.Second, 0)
	_, hard := tc.Limits(1)
	assert.Equal(t, 8*time.Second, hard)
}

func TestTimeIncrementSoftLimitNeverExceedsHalfRemaining(t *testing.T) {
	tc := searchctl.TimeIncrement(10*time.Second, 9*time.Second)
	soft, _ := tc.Limits(1)
	assert.Equal(t, 5*time.Second, soft)
}

func TestTimeIncrementLateGameNarrowsEstimatedMovesLeft(t *testing.T) {
	tc := searchctl.TimeIncrement(60*time.Second, 0)

	earlySoft, _ := tc.Limits(1)
	lateSoft, _ := tc.Limits(45)

	assert.Greater(t, lateSoft, earlySoft, "fewer estimated moves left should allocate more time per move")
}

func TestDepthAndInfiniteAreNotTimeLimited(t *testing.T) {
	soft, hard := searchctl.Depth(5).Limits(1)
	assert.Zero(t, soft)
	assert.Zero(t, hard)

	soft, hard = searchctl.Infinite().Limits(1)
	assert.Zero(t, soft)
	assert.Zero(t, hard)
}

func TestTimeControlStringDistinguishesVariants(t *testing.T) {
	assert.Contains(t, searchctl.Depth(4).String(), "depth")
	assert.Contains(t, searchctl.MoveTime(time.Second).String(), "movetime")
	assert.Contains(t, searchctl.TimeIncrement(time.Second, 0).String(), "wtime")
	assert.Equal(t, "infinite", searchctl.Infinite().String())
}
