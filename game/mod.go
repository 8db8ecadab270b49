package game

import "errors"

// MaxPlayers is the hard ceiling on players; per-player tallies are fixed-size arrays of this length.
const MaxPlayers = 8

// Player indexes a seat at the table, in [0, numPlayers).
type Player int

// Points holds per-player cell counts, indexed by Player.
type Points [MaxPlayers]int

type StateHash uint64

// Evaluates how favorable a state is for the given player, as a fraction in [0, 1).
type Evaluate func(s *State, p Player) float64

var (
	ErrNotSquare      = errors.New("cell count is not a perfect square")
	ErrInvalidOwner   = errors.New("cell owner out of range")
	ErrTooManyPlayers = errors.New("too many players")
	ErrNoPlayers      = errors.New("need at least one player")
	ErrInvalidPlayer  = errors.New("player out of range")
)

func checkNumPlayers(numPlayers int) {
	if numPlayers > MaxPlayers {
		panic("too many players")
	}
}
