package agent

import (
	"context"
	"math"

	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	rng         *rand.Rand
	temperature float64
	options     []searcher.Option
}

// NewTrainingAgent returns an agent for self-play that samples its move from the visit
// counts of the search, sharpened or flattened by temperature.
func NewTrainingAgent(rng *rand.Rand, temperature float64, options ...searcher.Option) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return trainingAgent{rng: rng, temperature: temperature, options: options}
}

func (a trainingAgent) FindMove(ctx context.Context, state *game.State) (game.Action, metrics.SearchMetric) {
	mcts := searcher.NewMCTS(state, a.options...)
	metric := mcts.Search(ctx, a.rng)

	policy := mcts.Policy()
	if len(policy) == 0 {
		return game.Pass(), metric
	}
	probs := adjustTemperature(policy, a.temperature)
	return policy[sample(a.rng, probs)].Action, metric
}

func adjustTemperature(policy []searcher.Visit, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	probs := make([]float64, len(policy))
	for i, v := range policy {
		probs[i] = math.Pow(float64(v.Visits), exponent)
		sum += probs[i]
	}
	if sum == 0 {
		for i := range probs {
			probs[i] = 1.0 / float64(len(probs))
		}
		return probs
	}
	// Normalize
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func sample(rng *rand.Rand, probs []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
