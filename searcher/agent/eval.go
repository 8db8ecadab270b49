package agent

import (
	"context"

	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/searcher"

	"golang.org/x/exp/rand"
)

type evaluationAgent struct {
	rng     *rand.Rand
	options []searcher.Option
}

// NewEvaluationAgent returns an agent that plays the most visited action of a fresh search per move.
func NewEvaluationAgent(rng *rand.Rand, options ...searcher.Option) Agent {
	return evaluationAgent{rng: rng, options: options}
}

func (a evaluationAgent) FindMove(ctx context.Context, state *game.State) (game.Action, metrics.SearchMetric) {
	mcts := searcher.NewMCTS(state, a.options...)
	metric := mcts.Search(ctx, a.rng)

	action, ok := mcts.BestAction()
	if !ok {
		return game.Pass(), metric
	}
	return action, metric
}
