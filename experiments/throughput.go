package experiments

import (
	"context"
	"fmt"
	"time"

	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/meta"
	"hobogo/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var throughputSizes = []int{meta.MIN_BOARD_SIZE, 7, meta.BOARD_SIZE, 13, meta.MAX_BOARD_SIZE}

// RunThroughputExperiment times searches from the empty board for every board size and
// records iterations per search, one move record per search.
func RunThroughputExperiment(ctx context.Context, settings Settings) error {
	const Duration = 100 * time.Millisecond
	config := metrics.AgentConfig{ID: 0, Kind: "mcts", Duration: Duration}

	results := []gameResult{}
	for si, size := range throughputSizes {
		state, err := game.NewState(game.NewBoard(size, size), 0, meta.NUM_PLAYERS)
		if err != nil {
			return err
		}

		result := gameResult{
			id:     si + 1,
			agents: []int{config.ID},
			gameMetric: metrics.GameMetric{
				Winner:    -1,
				StartTime: time.Now(),
			},
		}
		rng := rand.New(rand.NewSource(settings.Seed + uint64(size)))
		for i := 0; i < settings.NumGames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			mcts := searcher.NewMCTS(state, searchOptions(config)...)
			metric := mcts.Search(ctx, rng)
			best, _ := mcts.BestAction()
			result.moveMetrics = append(result.moveMetrics, metrics.MoveMetric{
				Step:         i + 1,
				Action:       best.String(),
				SearchMetric: metric,
			})
		}
		result.gameMetric.EndTime = time.Now()
		result.gameMetric.Duration = result.gameMetric.EndTime.Sub(result.gameMetric.StartTime)
		result.gameMetric.TotalMoves = len(result.moveMetrics)
		results = append(results, result)

		log.Info().Msgf("size %d: %s", size, throughputSummary(result.moveMetrics))
	}

	return store("throughput", settings.OutDir, []metrics.AgentConfig{config}, results)
}

func throughputSummary(moves []metrics.MoveMetric) string {
	if len(moves) == 0 {
		return "no searches"
	}
	iterations := 0
	var elapsed time.Duration
	for _, m := range moves {
		iterations += m.Iterations
		elapsed += m.Duration
	}
	return fmt.Sprintf("%d searches, %.0f iterations per second", len(moves), float64(iterations)/elapsed.Seconds())
}
