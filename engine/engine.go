package engine

import (
	"context"
	"errors"

	"hobogo/experiments/metrics"
)

var ErrIllegalAction = errors.New("illegal action")

type Engine interface {
	// Run plays the game till it is over or a max number of turns is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
