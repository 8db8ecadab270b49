package game

import "fmt"

type Coord struct {
	X int
	Y int
}

// String names a coordinate the way players read the board: column letter, then 1-based row.
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.X), c.Y+1)
}
