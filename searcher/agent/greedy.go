package agent

import (
	"context"

	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/utils"
)

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent returns an agent that looks one move ahead and plays whatever evaluate likes best.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateInfluence
	}
	return greedyAgent{evaluate: evaluate}
}

func (a greedyAgent) FindMove(_ context.Context, state *game.State) (game.Action, metrics.SearchMetric) {
	mover := state.Next()
	actions := state.AvailableActions()
	scores := make([]float64, len(actions))
	for i, action := range actions {
		after := state.Clone()
		after.TakeAction(action)
		scores[i] = a.evaluate(after, mover)
	}

	best := utils.ArgMax(scores)
	if best < 0 {
		return game.Pass(), metrics.SearchMetric{}
	}
	return actions[best], metrics.SearchMetric{}
}
