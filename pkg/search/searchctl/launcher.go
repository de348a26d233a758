package searchctl

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
)

// Options hold the parameters for a single search launch.
type Options struct {
	TimeControl TimeControl
}

// Launcher drives iterative deepening over a position and streams completed PVs.
type Launcher interface {
	// Launch starts a new iterative-deepening search over pos (owned exclusively by the
	// search goroutine until the returned Handle is halted or the channel closes). Each
	// completed depth is sent on the channel, replacing an earlier one the reader has not
	// yet received; it closes when the search has exhausted every stop condition.
	Launch(ctx context.Context, pos *board.Position, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the engine stop a running search and retrieve its best completed result.
type Handle interface {
	// Halt stops the search, if running, and returns the best PV found so far. Idempotent.
	Halt() search.PV
}
