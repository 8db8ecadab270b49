package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2*math.Log(100)/10)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("negative rewards lower the value", func(t *testing.T) {
		policy := newUCT(CSquared, 50)

		require.Greater(t, policy.evaluate(0.5, 5), policy.evaluate(-0.5, 5),
			"Losing margins should make a child less attractive")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		rewards := 5.0
		visits := 10.0

		score1 := newUCT(CSquared, 100).evaluate(rewards, visits)
		score2 := newUCT(CSquared, 1000).evaluate(rewards, visits)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.evaluate(5.0, 10), policy.evaluate(5.0, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("a larger constant explores more", func(t *testing.T) {
		require.Greater(t, newUCT(4, 100).evaluate(1, 10), newUCT(1, 100).evaluate(1, 10))
	})
}
