package searcher

import (
	"math"

	"hobogo/game"

	"golang.org/x/exp/rand"
)

type node struct {
	action   game.Action
	player   game.Player // Who played action, and whose reward this node accumulates
	visits   int
	rewards  float64
	expanded bool
	children []*node
}

func newNode(action game.Action, player game.Player) *node {
	return &node{action: action, player: player}
}

// expand builds the children for the actions open in state, once, in random order.
func (n *node) expand(state *game.State, rng *rand.Rand) int {
	if n.expanded {
		return 0
	}
	n.expanded = true

	actions := state.AvailableActions()
	rng.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})

	mover := state.Next()
	n.children = make([]*node, len(actions))
	for i, a := range actions {
		n.children[i] = newNode(a, mover)
	}
	return len(n.children)
}

// selectChild returns the first unvisited child, or else the child with the highest UCT value.
func (n *node) selectChild(cSquared float64) *node {
	policy := newUCT(cSquared, float64(n.visits))

	var best *node
	bestValue := math.Inf(-1)
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		value := policy.evaluate(child.rewards, float64(child.visits))
		if value > bestValue {
			bestValue = value
			best = child
		}
	}
	return best
}

func (n *node) update(score []float64) {
	n.visits++
	n.rewards += score[n.player]
}

// mostVisited returns the child with the most visits, the earliest one on ties.
func (n *node) mostVisited() *node {
	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best
}
