package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"hobogo/engine"
	"hobogo/experiments"
	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/meta"
	"hobogo/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "play", "play a single game, or run an experiment: exploration, baseline, budget or throughput")
	size := flag.Int("size", meta.BOARD_SIZE, "Board side length")
	players := flag.Int("players", meta.NUM_PLAYERS, "Number of players")
	bots := flag.String("bots", "mcts", "Agent kind for every seat: mcts, training, greedy or random")
	iterations := flag.Int("iterations", 0, "Search iterations per move")
	duration := flag.Duration("duration", meta.THINK_TIME, "Search time per move")
	games := flag.Int("games", experiments.NumGames, "Games per matchup in experiments")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for every random choice")
	out := flag.String("out", "results", "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	if *size < meta.MIN_BOARD_SIZE || *size > meta.MAX_BOARD_SIZE {
		log.Fatal().Msgf("board size must be between %d and %d", meta.MIN_BOARD_SIZE, meta.MAX_BOARD_SIZE)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings := experiments.Settings{BoardSize: *size, NumGames: *games, Seed: *seed, OutDir: *out}
	switch *mode {
	case "play":
		config := metrics.AgentConfig{Kind: *bots, Iterations: *iterations, Duration: *duration}
		err = play(ctx, *size, *players, *seed, config)
	case "exploration":
		err = experiments.RunExplorationExperiment(ctx, settings)
	case "baseline":
		err = experiments.RunBaselineExperiment(ctx, settings)
	case "budget":
		err = experiments.RunBudgetExperiment(ctx, settings)
	case "throughput":
		err = experiments.RunThroughputExperiment(ctx, settings)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func play(ctx context.Context, size, numPlayers int, seed uint64, config metrics.AgentConfig) error {
	state, err := game.NewState(game.NewBoard(size, size), 0, numPlayers)
	if err != nil {
		return err
	}

	agents := make([]agent.Agent, numPlayers)
	for i := range agents {
		agents[i] = experiments.CreateAgent(config, rand.New(rand.NewSource(seed+uint64(i))))
	}

	e := engine.LocalEngine(state, agents)
	gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(e.State.Board())
	for p, points := range gameMetric.Points {
		fmt.Printf("%-8s %d\n", meta.PlayerName(p), points)
	}
	return nil
}
