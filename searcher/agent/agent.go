package agent

import (
	"context"

	"hobogo/experiments/metrics"
	"hobogo/game"
)

type Agent interface {
	// FindMove returns the action to play in state and the search metrics, if collected.
	// It is only called for states that still have actions.
	FindMove(ctx context.Context, state *game.State) (game.Action, metrics.SearchMetric)
}
