// meta/meta.go
package meta

import (
	"fmt"
	"time"
)

// THINK_TIME is how long the AI searches for a move when the caller gives no budget.
const THINK_TIME = time.Second

// BOARD_SIZE is the default side length of the square board.
const BOARD_SIZE = 9

// MIN_BOARD_SIZE and MAX_BOARD_SIZE bound the board sizes offered to players.
const MIN_BOARD_SIZE = 5
const MAX_BOARD_SIZE = 17

// NUM_PLAYERS is the default number of seats.
const NUM_PLAYERS = 2

// MAX_TURNS guards game loops; every turn either fills a cell or passes, so real games end far earlier.
const MAX_TURNS = 4 * MAX_BOARD_SIZE * MAX_BOARD_SIZE

var playerNames = []string{"blue", "red", "green", "yellow", "purple", "orange", "cyan", "pink"}

// PlayerName returns the display name of a seat.
func PlayerName(p int) string {
	if p < 0 || p >= len(playerNames) {
		return fmt.Sprintf("player %d", p)
	}
	return playerNames[p]
}
