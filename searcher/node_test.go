package searcher

import (
	"testing"

	"hobogo/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newState(t *testing.T, cells []int, next game.Player, numPlayers int) *game.State {
	t.Helper()
	b, err := game.FromCells(cells)
	require.NoError(t, err)
	s, err := game.NewState(b, next, numPlayers)
	require.NoError(t, err)
	return s
}

func emptyState(t *testing.T, size int, numPlayers int) *game.State {
	t.Helper()
	s, err := game.NewState(game.NewBoard(size, size), 0, numPlayers)
	require.NoError(t, err)
	return s
}

func TestNodeExpand(t *testing.T) {
	t.Run("creates one child per available action, credited to the mover", func(t *testing.T) {
		s := emptyState(t, 3, 2)
		n := newNode(game.Pass(), s.Previous())

		added := n.expand(s, rand.New(rand.NewSource(1)))
		require.Equal(t, 9, added)
		require.ElementsMatch(t, s.AvailableActions(), actionsOf(n.children))
		for _, child := range n.children {
			require.Equal(t, game.Player(0), child.player)
			require.Zero(t, child.visits)
		}
	})

	t.Run("only expands once", func(t *testing.T) {
		s := emptyState(t, 3, 2)
		n := newNode(game.Pass(), s.Previous())
		rng := rand.New(rand.NewSource(1))

		n.expand(s, rng)
		first := actionsOf(n.children)
		require.Zero(t, n.expand(s, rng))
		require.Equal(t, first, actionsOf(n.children))
	})

	t.Run("a finished game has no children", func(t *testing.T) {
		s := newState(t, []int{0, 1, 1, 0}, 0, 2)
		n := newNode(game.Pass(), s.Previous())
		require.Zero(t, n.expand(s, rand.New(rand.NewSource(1))))
		require.True(t, n.expanded)
		require.Empty(t, n.children)
	})
}

func TestNodeSelectChild(t *testing.T) {
	parent := &node{visits: 10, children: []*node{
		{action: game.Move(game.Coord{X: 0}), visits: 5, rewards: 4},
		{action: game.Move(game.Coord{X: 1}), visits: 5, rewards: 1},
	}}

	t.Run("picks the higher UCT value among visited children", func(t *testing.T) {
		require.Same(t, parent.children[0], parent.selectChild(CSquared))
	})

	t.Run("prefers an unvisited child over everything", func(t *testing.T) {
		fresh := &node{action: game.Move(game.Coord{X: 2})}
		parent.children = append(parent.children, fresh)
		require.Same(t, fresh, parent.selectChild(CSquared))
	})
}

func TestNodeUpdate(t *testing.T) {
	n := newNode(game.Pass(), 2)
	n.update([]float64{0.1, 0.2, 1.3})
	n.update([]float64{0.5, 0.5, 0})
	require.Equal(t, 2, n.visits)
	require.InDelta(t, 1.3, n.rewards, 1e-9)
}

func TestNodeMostVisited(t *testing.T) {
	t.Run("is nil without children", func(t *testing.T) {
		require.Nil(t, (&node{}).mostVisited())
	})

	t.Run("breaks ties by order", func(t *testing.T) {
		n := &node{children: []*node{
			{action: game.Move(game.Coord{X: 0}), visits: 3},
			{action: game.Move(game.Coord{X: 1}), visits: 7},
			{action: game.Move(game.Coord{X: 2}), visits: 7},
		}}
		require.Same(t, n.children[1], n.mostVisited())
	})
}

func actionsOf(nodes []*node) []game.Action {
	actions := make([]game.Action, len(nodes))
	for i, n := range nodes {
		actions[i] = n.action
	}
	return actions
}
