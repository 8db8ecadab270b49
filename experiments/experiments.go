package experiments

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"hobogo/engine"
	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/meta"
	"hobogo/searcher"
	"hobogo/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 50 * time.Millisecond
)

// Settings shared by every game of an experiment.
type Settings struct {
	BoardSize int
	NumGames  int
	Seed      uint64
	OutDir    string
}

var explorationConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "mcts", Duration: TimeBudget, Exploration: 0.5},
	{ID: 2, Kind: "mcts", Duration: TimeBudget, Exploration: 1},
	{ID: 3, Kind: "mcts", Duration: TimeBudget, Exploration: 2},
	{ID: 4, Kind: "mcts", Duration: TimeBudget, Exploration: 4},
}

// RunExplorationExperiment pairs each exploration constant against the default one.
func RunExplorationExperiment(ctx context.Context, settings Settings) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "mcts", Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range explorationConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, "exploration", settings, append(explorationConfigs, baseline), matchUps)
}

// RunBaselineExperiment measures the search against the simple agents, both seat orders.
func RunBaselineExperiment(ctx context.Context, settings Settings) error {
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: "mcts", Duration: TimeBudget},
		{ID: 1, Kind: "greedy"},
		{ID: 2, Kind: "random"},
		{ID: 3, Kind: "training", Duration: TimeBudget},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, opponent := range configs[1:] {
		matchUps = append(matchUps,
			[]metrics.AgentConfig{configs[0], opponent},
			[]metrics.AgentConfig{opponent, configs[0]},
		)
	}

	return runExperiment(ctx, "baseline", settings, configs, matchUps)
}

// RunBudgetExperiment pits growing iteration budgets against each other at a crowded table.
func RunBudgetExperiment(ctx context.Context, settings Settings) error {
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: "mcts", Iterations: 100},
		{ID: 1, Kind: "mcts", Iterations: 400},
		{ID: 2, Kind: "mcts", Iterations: 1600},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1], configs[2]},
		{configs[2], configs[0], configs[1]},
		{configs[1], configs[2], configs[0]},
	}

	return runExperiment(ctx, "budget", settings, configs, matchUps)
}

type gameResult struct {
	id          int
	agents      []int
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

func runExperiment(ctx context.Context, name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	log.Info().Msgf("starting %s experiment...", name)

	var mu sync.Mutex
	results := []gameResult{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	count := 0
	for mi, matchUp := range matchUps {
		log.Info().Msgf("queueing matchup %d of %d between %v...", mi+1, len(matchUps), agentIDs(matchUp))

		for i := 0; i < settings.NumGames; i++ {
			count++
			id := count
			seed := settings.Seed + uint64(id)
			g.Go(func() error {
				gameMetric, moveMetrics, err := runGame(ctx, settings.BoardSize, seed, matchUp)
				if err != nil {
					return fmt.Errorf("game %d of matchup %d: %w", i+1, mi+1, err)
				}
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, gameMetric.Winner)

				mu.Lock()
				defer mu.Unlock()
				results = append(results, gameResult{
					id:          id,
					agents:      agentIDs(matchUp),
					gameMetric:  gameMetric,
					moveMetrics: moveMetrics,
				})
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, settings.OutDir, configs, results)
}

func store(name, outDir string, configs []metrics.AgentConfig, results []gameResult) error {
	gameRecords := make([]metrics.GameRecord, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range sortedByID(results) {
		gameRecords[i] = metrics.GameRecord{ID: r.id, Agents: r.agents, GameMetric: r.gameMetric}
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: r.id, MoveMetric: mm})
		}
	}

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())
	return nil
}

// runGame plays one game on an empty board, seat i taken by matchUp[i].
func runGame(ctx context.Context, boardSize int, seed uint64, matchUp []metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.NewState(game.NewBoard(boardSize, boardSize), 0, len(matchUp))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	agents := make([]agent.Agent, len(matchUp))
	for i, config := range matchUp {
		rng := rand.New(rand.NewSource(seed*uint64(len(matchUp)) + uint64(i)))
		agents[i] = CreateAgent(config, rng)
	}

	return engine.LocalEngine(state, agents).Run(ctx)
}

// CreateAgent builds the agent a config describes.
func CreateAgent(config metrics.AgentConfig, rng *rand.Rand) agent.Agent {
	switch config.Kind {
	case "greedy":
		return agent.NewGreedyAgent(game.EvaluateInfluence)
	case "random":
		return agent.NewRandomAgent(rng)
	case "training":
		return agent.NewTrainingAgent(rng, 1.0, searchOptions(config)...)
	case "mcts", "":
		return agent.NewEvaluationAgent(rng, searchOptions(config)...)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func searchOptions(config metrics.AgentConfig) []searcher.Option {
	options := []searcher.Option{}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Iterations <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(meta.THINK_TIME))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	options = append(options, searcher.WithMetrics())
	return options
}

func agentIDs(configs []metrics.AgentConfig) []int {
	ids := make([]int, len(configs))
	for i, c := range configs {
		ids[i] = c.ID
	}
	return ids
}

func sortedByID(results []gameResult) []gameResult {
	sorted := slices.Clone(results)
	slices.SortFunc(sorted, func(a, b gameResult) int {
		return cmp.Compare(a.id, b.id)
	})
	return sorted
}
