package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"

	"golang.org/x/exp/rand"
)

// State is a board plus whose turn it is. It changes only through TakeAction.
type State struct {
	board      *Board
	next       Player
	numPlayers int
}

// NewState takes ownership of board; clone it first if the caller keeps using it.
func NewState(board *Board, next Player, numPlayers int) (*State, error) {
	if numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%d players: %w", numPlayers, ErrTooManyPlayers)
	}
	if numPlayers < 1 {
		return nil, ErrNoPlayers
	}
	if next < 0 || int(next) >= numPlayers {
		return nil, fmt.Errorf("player %d of %d: %w", next, numPlayers, ErrInvalidPlayer)
	}
	return &State{board: board, next: next, numPlayers: numPlayers}, nil
}

func (s *State) Board() *Board    { return s.board }
func (s *State) Next() Player     { return s.next }
func (s *State) NumPlayers() int  { return s.numPlayers }
func (s *State) IsGameOver() bool { return s.board.IsGameOver(s.numPlayers) }

// Previous is the player who moved last, i.e. the one whose action produced this state.
func (s *State) Previous() Player {
	return Player((int(s.next) + s.numPlayers - 1) % s.numPlayers)
}

func (s *State) Clone() *State {
	return &State{board: s.board.Clone(), next: s.next, numPlayers: s.numPlayers}
}

// AvailableActions lists the actions open to the player to move.
func (s *State) AvailableActions() []Action {
	return s.AvailableActionsFor(s.next)
}

// AvailableActionsFor lists the moves open to p, or a lone Pass when there are none.
// A finished game has no actions at all.
func (s *State) AvailableActionsFor(p Player) []Action {
	if s.IsGameOver() {
		return nil
	}
	moves := s.board.ValidMoves(p, s.numPlayers)
	if len(moves) == 0 {
		return []Action{Pass()}
	}
	actions := make([]Action, len(moves))
	for i, c := range moves {
		actions[i] = Move(c)
	}
	return actions
}

// TakeAction plays a for the player to move and hands the turn on.
func (s *State) TakeAction(a Action) {
	if !a.IsPass() {
		s.board.Set(a.Coord, s.next)
	}
	s.next = Player((int(s.next) + 1) % s.numPlayers)
}

// Playout plays random legal actions until the game is over.
//
// Every player draws from its own shuffled queue of the cells that were empty at the start.
// Filled cells leave the queues, cells the mover may not play yet stay for later. The end of
// the game is only checked once the mover has nothing left to play.
func (s *State) Playout(rng *rand.Rand) {
	empty := []Coord{}
	for c := range s.board.Coords() {
		if s.board.At(c) == Empty {
			empty = append(empty, c)
		}
	}

	queues := make([][]Coord, s.numPlayers)
	for p := range queues {
		queues[p] = slices.Clone(empty)
		rng.Shuffle(len(queues[p]), func(i, j int) {
			queues[p][i], queues[p][j] = queues[p][j], queues[p][i]
		})
	}

	for {
		if c, ok := s.nextQueuedMove(&queues[s.next]); ok {
			s.TakeAction(Move(c))
		} else if s.IsGameOver() {
			return
		} else {
			s.TakeAction(Pass())
		}
	}
}

// nextQueuedMove takes the first cell of queue the player to move may play.
func (s *State) nextQueuedMove(queue *[]Coord) (Coord, bool) {
	kept := (*queue)[:0]
	for i, c := range *queue {
		if s.board.At(c) != Empty {
			continue
		}
		if s.board.IsValidMove(c, s.next, s.numPlayers) {
			*queue = append(kept, (*queue)[i+1:]...)
			return c, true
		}
		kept = append(kept, c)
	}
	*queue = kept
	return Coord{}, false
}

// Score returns the reward of each player for a finished game.
//
// A sole winner gets 1 plus a tenth of its lead over the runner-up, everyone else loses a
// tenth of a point per point behind the winner. When the top is shared, each leader gets
// 0.5 and everyone else 0.
func (s *State) Score() []float64 {
	points := s.board.Points()

	winner := 0
	for p := 1; p < s.numPlayers; p++ {
		if points[p] > points[winner] {
			winner = p
		}
	}
	runnerUp := -1
	for p := 0; p < s.numPlayers; p++ {
		if p != winner && (runnerUp < 0 || points[p] > points[runnerUp]) {
			runnerUp = p
		}
	}

	best := points[winner]
	second := best
	if runnerUp >= 0 {
		second = points[runnerUp]
	}

	rewards := make([]float64, s.numPlayers)
	for p := range rewards {
		switch {
		case best == second && points[p] == best:
			rewards[p] = 0.5
		case best == second:
			rewards[p] = 0
		case p == winner:
			rewards[p] = 1 + float64(best-second)/10
		default:
			rewards[p] = -float64(best-points[p]) / 10
		}
	}
	return rewards
}

// Winner returns the sole points leader of a finished game. It is false while the game
// is on or when the lead is shared.
func (s *State) Winner() (Player, bool) {
	if !s.IsGameOver() {
		return 0, false
	}
	points := s.board.Points()
	winner, shared := Player(0), false
	for p := 1; p < s.numPlayers; p++ {
		switch {
		case points[p] > points[winner]:
			winner, shared = Player(p), false
		case points[p] == points[winner]:
			shared = true
		}
	}
	return winner, !shared
}

func (s *State) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.next))
	binary.Write(hasher, binary.LittleEndian, int64(s.numPlayers))
	binary.Write(hasher, binary.LittleEndian, int64(s.board.width))
	for _, cell := range s.board.cells {
		binary.Write(hasher, binary.LittleEndian, int8(cell))
	}
	return StateHash(hasher.Sum64())
}

func (s *State) String() string {
	return fmt.Sprintf("player %d of %d to move\n%s", s.next, s.numPlayers, s.board)
}
