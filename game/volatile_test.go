package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestVolatileCells(t *testing.T) {
	t.Run("every cell of an empty board is volatile", func(t *testing.T) {
		b := NewBoard(4, 4)
		for i, v := range b.VolatileCells(2) {
			require.True(t, v, "cell %d", i)
		}
	})

	t.Run("stones are never volatile", func(t *testing.T) {
		b := parseBoard(t,
			"01",
			"10",
		)
		require.Equal(t, []bool{false, false, false, false}, b.VolatileCells(2))
	})

	t.Run("a tied center is volatile", func(t *testing.T) {
		b := parseBoard(t,
			".0.",
			"0.1",
			".1.",
		)
		center, _ := b.Index(Coord{X: 1, Y: 1})
		require.True(t, b.VolatileCells(2)[center])
	})

	t.Run("a tied cell can flip its weakly claimed neighbor", func(t *testing.T) {
		b := parseBoard(t, "0..")
		require.Equal(t, []bool{false, true, true}, b.VolatileCells(2))
	})

	t.Run("a lead of two with no contested neighbors holds", func(t *testing.T) {
		b := parseBoard(t, "00.00")
		require.Equal(t, []bool{false, false, false, false, false}, b.VolatileCells(2))
	})

	t.Run("a single player can never lose a cell", func(t *testing.T) {
		b := NewBoard(3, 3)
		for _, v := range b.VolatileCells(1) {
			require.False(t, v)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for round := 0; round < 30; round++ {
			b := randomBoard(rng, 6, 3)
			before := b.String()
			require.Equal(t, b.VolatileCells(3), b.VolatileCells(3))
			require.Equal(t, before, b.String(), "volatility analysis must not mutate the board")
		}
	})

	t.Run("panics beyond the player limit", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard(2, 2).VolatileCells(MaxPlayers + 1)
		})
	})
}

func TestIsGameOver(t *testing.T) {
	t.Run("a full board is over", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for round := 0; round < 10; round++ {
			b := NewBoard(4, 4)
			for c := range b.Coords() {
				b.Set(c, Player(rng.Intn(3)))
			}
			require.True(t, b.IsGameOver(3), "\n%s", b)
		}
	})

	t.Run("an empty board is not over", func(t *testing.T) {
		require.False(t, NewBoard(5, 5).IsGameOver(2))
	})

	t.Run("a lone player is always done", func(t *testing.T) {
		require.True(t, NewBoard(1, 1).IsGameOver(1))
	})

	t.Run("is over when only one player has anywhere to go", func(t *testing.T) {
		b := parseBoard(t,
			"000",
			"0.0",
			"000",
		)
		require.True(t, b.IsGameOver(2))
	})

	t.Run("is over once nothing can change owner even with empty cells left", func(t *testing.T) {
		b := parseBoard(t,
			"000111",
			"0.01.1",
			"000111",
		)
		require.True(t, b.severalPlayersCanMove(2))
		require.True(t, b.IsGameOver(2))
	})

	t.Run("is not over while a contested cell remains", func(t *testing.T) {
		b := parseBoard(t,
			".0.",
			"0.1",
			".1.",
		)
		require.False(t, b.IsGameOver(2))
	})

	t.Run("a ruled cell stays with its ruler whatever the others play", func(t *testing.T) {
		b := parseBoard(t,
			".....",
			".111.",
			".1.1.",
			".111.",
			".....",
		)
		hole := Coord{X: 2, Y: 2}
		require.Equal(t, Influence{Kind: Ruled, Player: 1}, b.Influence(hole))

		// Player 0 fills every cell it may, the ruled hole must never become available to it.
		for c := range b.Coords() {
			if c != hole && b.At(c) == Empty {
				b.Set(c, 0)
			}
			require.False(t, b.IsValidMove(hole, 0, 2))
			require.Equal(t, Influence{Kind: Ruled, Player: 1}, b.Influence(hole))
		}
	})
}
