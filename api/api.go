// Package api answers board questions for callers that hold the board as a flat slice of
// integers: a perfect-square number of cells in row-major order, negative for empty and
// the owning player otherwise. Every query parses the board afresh and keeps no state.
package api

import (
	"context"
	"fmt"
	"time"

	"hobogo/game"
	"hobogo/meta"
	"hobogo/searcher"

	"golang.org/x/exp/rand"
)

// Budget bounds the search behind AIMove. A zero Budget searches for the default think time
// with a time-derived seed.
type Budget struct {
	Iterations int
	ThinkTime  time.Duration
	Seed       *uint64 // nil picks a time-derived seed
}

// WithSeed returns a copy of b that searches reproducibly from seed.
func (b Budget) WithSeed(seed uint64) Budget {
	b.Seed = &seed
	return b
}

func ParseBoard(cells []int) (*game.Board, error) {
	return game.FromCells(cells)
}

func checkPlayers(numPlayers int) error {
	if numPlayers > game.MaxPlayers {
		return fmt.Errorf("%d players: %w", numPlayers, game.ErrTooManyPlayers)
	}
	if numPlayers < 1 {
		return game.ErrNoPlayers
	}
	return nil
}

func IsValidMove(cells []int, c game.Coord, player game.Player, numPlayers int) (bool, error) {
	b, err := ParseBoard(cells)
	if err != nil {
		return false, err
	}
	if err := checkPlayers(numPlayers); err != nil {
		return false, err
	}
	if player < 0 || int(player) >= numPlayers {
		return false, fmt.Errorf("player %d of %d: %w", player, numPlayers, game.ErrInvalidPlayer)
	}
	return b.IsValidMove(c, player, numPlayers), nil
}

func IsGameOver(cells []int, numPlayers int) (bool, error) {
	b, err := ParseBoard(cells)
	if err != nil {
		return false, err
	}
	if err := checkPlayers(numPlayers); err != nil {
		return false, err
	}
	return b.IsGameOver(numPlayers), nil
}

func VolatileCells(cells []int, numPlayers int) ([]bool, error) {
	b, err := ParseBoard(cells)
	if err != nil {
		return nil, err
	}
	if err := checkPlayers(numPlayers); err != nil {
		return nil, err
	}
	return b.VolatileCells(numPlayers), nil
}

func Points(cells []int) (game.Points, error) {
	b, err := ParseBoard(cells)
	if err != nil {
		return game.Points{}, err
	}
	return b.Points(), nil
}

// Evaluate returns the influence-weighted share of the board held by player.
func Evaluate(cells []int, player game.Player) (float64, error) {
	b, err := ParseBoard(cells)
	if err != nil {
		return 0, err
	}
	if player < 0 || player >= game.MaxPlayers {
		return 0, fmt.Errorf("player %d: %w", player, game.ErrInvalidPlayer)
	}
	s, err := game.NewState(b, player, game.MaxPlayers)
	if err != nil {
		return 0, err
	}
	return game.EvaluateInfluence(s, player), nil
}

// AIMove searches for player's move. It is false when the best action is a pass or the
// game has no actions left.
func AIMove(ctx context.Context, cells []int, player game.Player, numPlayers int, budget Budget) (game.Coord, bool, error) {
	b, err := ParseBoard(cells)
	if err != nil {
		return game.Coord{}, false, err
	}
	state, err := game.NewState(b, player, numPlayers)
	if err != nil {
		return game.Coord{}, false, err
	}

	options := []searcher.Option{
		searcher.WithIterations(budget.Iterations),
		searcher.WithDuration(budget.ThinkTime),
	}
	if budget.Iterations <= 0 && budget.ThinkTime <= 0 {
		options = append(options, searcher.WithDuration(meta.THINK_TIME))
	}

	seed := uint64(time.Now().UnixNano())
	if budget.Seed != nil {
		seed = *budget.Seed
	}

	mcts := searcher.NewMCTS(state, options...)
	mcts.Search(ctx, rand.New(rand.NewSource(seed)))

	action, ok := mcts.BestAction()
	if !ok || action.IsPass() {
		return game.Coord{}, false, nil
	}
	return action.Coord, true, nil
}
