package engine

import (
	"context"
	"fmt"
	"time"

	"hobogo/experiments/metrics"
	"hobogo/game"
	"hobogo/meta"
	"hobogo/searcher/agent"
	"hobogo/utils"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	State    *game.State
	Agents   []agent.Agent // One per seat
	Updates  []Update
	MaxTurns int
}

type Update struct {
	Player game.Player
	Action game.Action
	Hash   game.StateHash
}

// LocalEngine runs a game in-process, starting from a copy of state.
func LocalEngine(state *game.State, agents []agent.Agent) *Local {
	if len(agents) != state.NumPlayers() {
		panic("number of agents does not match number of players")
	}
	return &Local{
		State:    state.Clone(),
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.State.Next()),
		Winner:         -1,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", meta.PlayerName(int(e.State.Next())))

	for turn := 1; turn <= e.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		actions := e.State.AvailableActions()
		if len(actions) == 0 {
			break
		}

		player := e.State.Next()
		action, searchMetric := e.Agents[player].FindMove(ctx, e.State.Clone())
		if utils.FindIndex(actions, action) < 0 {
			return gameMetric, moveMetrics, fmt.Errorf("%s played %v on turn %d: %w", meta.PlayerName(int(player)), action, turn, ErrIllegalAction)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Action:       action.String(),
			SearchMetric: searchMetric,
		})
		if action.IsPass() {
			gameMetric.Passes++
		}

		e.State.TakeAction(action)
		e.Updates = append(e.Updates, Update{
			Player: player,
			Action: action,
			Hash:   e.State.Hash(),
		})
		log.Debug().Msgf("turn %d: %s plays %v", turn, meta.PlayerName(int(player)), action)
	}

	if !e.State.IsGameOver() {
		log.Warn().Msgf("stopped after %d turns without a result", e.MaxTurns)
	}

	points := e.State.Board().Points()
	gameMetric.Points = append([]int(nil), points[:e.State.NumPlayers()]...)
	if winner, ok := e.State.Winner(); ok {
		gameMetric.Winner = int(winner)
		log.Info().Msgf("%s wins with points %v", meta.PlayerName(int(winner)), gameMetric.Points)
	} else {
		log.Info().Msgf("game ended without a sole winner, points %v", gameMetric.Points)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return gameMetric, moveMetrics, nil
}
