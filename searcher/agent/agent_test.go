package agent

import (
	"context"
	"testing"

	"hobogo/game"
	"hobogo/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func emptyState(t *testing.T, size, numPlayers int) *game.State {
	t.Helper()
	s, err := game.NewState(game.NewBoard(size, size), 0, numPlayers)
	require.NoError(t, err)
	return s
}

// shutOutState has player 1 to move with no legal placement while the game goes on.
func shutOutState(t *testing.T) *game.State {
	t.Helper()
	b, err := game.FromCells([]int{
		-1, -1, -1,
		0, -1, 2,
		-1, -1, -1,
	})
	require.NoError(t, err)
	s, err := game.NewState(b, 1, 3)
	require.NoError(t, err)
	return s
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays a legal action and reports its search", func(t *testing.T) {
		s := emptyState(t, 3, 2)
		a := NewEvaluationAgent(rand.New(rand.NewSource(1)), searcher.WithIterations(30), searcher.WithMetrics())

		action, metric := a.FindMove(context.Background(), s)
		require.Contains(t, s.AvailableActions(), action)
		require.Equal(t, 30, metric.Iterations)
	})

	t.Run("passes when shut out", func(t *testing.T) {
		a := NewEvaluationAgent(rand.New(rand.NewSource(1)), searcher.WithIterations(10))
		action, _ := a.FindMove(context.Background(), shutOutState(t))
		require.True(t, action.IsPass())
	})

	t.Run("is reproducible from a seed", func(t *testing.T) {
		s := emptyState(t, 4, 2)
		a1 := NewEvaluationAgent(rand.New(rand.NewSource(77)), searcher.WithIterations(100))
		a2 := NewEvaluationAgent(rand.New(rand.NewSource(77)), searcher.WithIterations(100))

		action1, _ := a1.FindMove(context.Background(), s)
		action2, _ := a2.FindMove(context.Background(), s)
		require.Equal(t, action1, action2)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("panics without a positive temperature", func(t *testing.T) {
		require.Panics(t, func() {
			NewTrainingAgent(rand.New(rand.NewSource(1)), 0)
		})
	})

	t.Run("plays a legal action", func(t *testing.T) {
		s := emptyState(t, 3, 2)
		a := NewTrainingAgent(rand.New(rand.NewSource(1)), 1.0, searcher.WithIterations(30))

		action, _ := a.FindMove(context.Background(), s)
		require.Contains(t, s.AvailableActions(), action)
	})

	t.Run("temperature one keeps visit proportions", func(t *testing.T) {
		policy := []searcher.Visit{{Visits: 1}, {Visits: 3}}
		probs := adjustTemperature(policy, 1.0)
		require.InDelta(t, 0.25, probs[0], 1e-9)
		require.InDelta(t, 0.75, probs[1], 1e-9)
	})

	t.Run("low temperature sharpens toward the most visited", func(t *testing.T) {
		policy := []searcher.Visit{{Visits: 1}, {Visits: 3}}
		probs := adjustTemperature(policy, 0.25)
		require.Greater(t, probs[1], 0.95)
		require.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
	})

	t.Run("unvisited actions are equally likely", func(t *testing.T) {
		probs := adjustTemperature([]searcher.Visit{{}, {}}, 1.0)
		require.Equal(t, []float64{0.5, 0.5}, probs)
	})

	t.Run("sampling never picks an impossible action", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		for i := 0; i < 100; i++ {
			require.Equal(t, 1, sample(rng, []float64{0, 1, 0}))
		}
	})
}

func TestGreedyAgent(t *testing.T) {
	t.Run("picks an action with the best evaluation", func(t *testing.T) {
		b, err := game.FromCells([]int{
			0, -1, -1, -1,
			-1, -1, -1, -1,
			-1, -1, 1, -1,
			-1, -1, -1, -1,
		})
		require.NoError(t, err)
		s, err := game.NewState(b, 0, 2)
		require.NoError(t, err)

		action, _ := NewGreedyAgent(game.EvaluateInfluence).FindMove(context.Background(), s)
		require.Contains(t, s.AvailableActions(), action)

		score := func(a game.Action) float64 {
			after := s.Clone()
			after.TakeAction(a)
			return game.EvaluateInfluence(after, 0)
		}
		chosen := score(action)
		for _, other := range s.AvailableActions() {
			require.GreaterOrEqual(t, chosen, score(other), "%v beats %v", other, action)
		}
	})

	t.Run("passes when shut out", func(t *testing.T) {
		action, _ := NewGreedyAgent(nil).FindMove(context.Background(), shutOutState(t))
		require.True(t, action.IsPass())
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal actions", func(t *testing.T) {
		s := emptyState(t, 4, 3)
		a := NewRandomAgent(rand.New(rand.NewSource(3)))
		for i := 0; i < 20; i++ {
			action, _ := a.FindMove(context.Background(), s)
			require.Contains(t, s.AvailableActions(), action)
		}
	})

	t.Run("passes when shut out", func(t *testing.T) {
		action, _ := NewRandomAgent(rand.New(rand.NewSource(3))).FindMove(context.Background(), shutOutState(t))
		require.True(t, action.IsPass())
	})
}
