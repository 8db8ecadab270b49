package searcher

import (
	"context"
	"time"

	"hobogo/experiments/metrics"
	"hobogo/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS searches the game tree below one position. The tree lives as long as the MCTS value;
// build a new one for every move.
type MCTS struct {
	start    *game.State
	root     *node
	limits   Limits
	cSquared float64
	metrics  metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.limits.Movetime = duration
		}
	}
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.limits.Iterations = iterations
		}
	}
}

func WithExploration(cSquared float64) Option {
	return func(m *MCTS) {
		if cSquared > 0 {
			m.cSquared = cSquared
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMCTS prepares a search from a private copy of state.
func NewMCTS(state *game.State, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		start:    state.Clone(),
		root:     newNode(game.Pass(), state.Previous()),
		cSquared: CSquared,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Iterations is the number of completed iterations.
func (m *MCTS) Iterations() int {
	return m.root.visits
}

// Iterate runs one select, playout and backup pass.
func (m *MCTS) Iterate(rng *rand.Rand) {
	state := m.start.Clone()
	path := []*node{m.root}

	n := m.root
	for n.visits > 0 && len(n.children) > 0 {
		n = n.selectChild(m.cSquared)
		state.TakeAction(n.action)
		path = append(path, n)
	}

	// A fresh node gets its children and one random playout, a visited leaf is a finished game.
	if n.visits == 0 {
		m.metrics.AddNodes(n.expand(state, rng))
		state.Playout(rng)
		m.metrics.AddPlayout()
	}

	score := state.Score()
	for _, visited := range path {
		visited.update(score)
	}
}

// BestAction returns the most visited action at the root. It is false before the first
// iteration and when the root position has no actions.
func (m *MCTS) BestAction() (game.Action, bool) {
	best := m.root.mostVisited()
	if best == nil {
		return game.Action{}, false
	}
	return best.action, true
}

// Visit is the search statistics of one root action.
type Visit struct {
	Action  game.Action
	Visits  int
	Rewards float64
}

// Policy lists the root actions with their visit counts, in tree order.
func (m *MCTS) Policy() []Visit {
	policy := make([]Visit, len(m.root.children))
	for i, child := range m.root.children {
		policy[i] = Visit{Action: child.action, Visits: child.visits, Rewards: child.rewards}
	}
	return policy
}

// Search iterates until the limits or ctx stop it, and always completes at least one iteration.
// The budget is only checked between iterations.
func (m *MCTS) Search(ctx context.Context, rng *rand.Rand) metrics.SearchMetric {
	m.metrics.Start()
	limiter := newLimiter(ctx, m.limits)
	if !limiter.bounded() {
		panic("Must specify search iterations, duration or a cancellable context")
	}

	var reason StopReason
	for {
		m.Iterate(rng)
		m.metrics.AddIteration()

		terminal := m.root.expanded && len(m.root.children) == 0
		reason = limiter.reason(m.Iterations(), terminal)
		if reason != StopNone {
			break
		}
	}
	metric := m.metrics.Complete(reason.String())

	best, ok := m.BestAction()
	log.Debug().
		Int("iterations", m.Iterations()).
		Dur("elapsed", limiter.elapsed()).
		Stringer("stop", reason).
		Bool("found", ok).
		Stringer("best", best).
		Msgf("search for player %d complete", m.start.Next())

	return metric
}
