package agent

import (
	"context"

	"hobogo/experiments/metrics"
	"hobogo/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly among the available actions.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(_ context.Context, state *game.State) (game.Action, metrics.SearchMetric) {
	actions := state.AvailableActions()
	if len(actions) == 0 {
		return game.Pass(), metrics.SearchMetric{}
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}
}
