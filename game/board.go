package game

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Cell is the owner of a board cell, or Empty.
type Cell int8

const Empty Cell = -1

// Owner returns the player occupying the cell, if any.
func (c Cell) Owner() (Player, bool) {
	if c < 0 {
		return 0, false
	}
	return Player(c), true
}

type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard returns an empty width x height board.
func NewBoard(width, height int) *Board {
	if width < 0 || height < 0 {
		panic("negative board dimensions")
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{width: width, height: height, cells: cells}
}

// FromCells builds a square board from a flat row-major slice.
// Negative entries are empty, anything else is the owning player.
func FromCells(cells []int) (*Board, error) {
	n := int(math.Round(math.Sqrt(float64(len(cells)))))
	if n*n != len(cells) {
		return nil, fmt.Errorf("%d cells: %w", len(cells), ErrNotSquare)
	}

	b := NewBoard(n, n)
	for i, v := range cells {
		if v < 0 {
			continue
		}
		if v >= MaxPlayers {
			return nil, fmt.Errorf("cell %d owned by %d: %w", i, v, ErrInvalidOwner)
		}
		b.cells[i] = Cell(v)
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Size() int   { return len(b.cells) }

func (b *Board) Contains(c Coord) bool {
	return 0 <= c.X && c.X < b.width && 0 <= c.Y && c.Y < b.height
}

// Index returns the row-major position of c, or false when c is off the board.
func (b *Board) Index(c Coord) (int, bool) {
	if !b.Contains(c) {
		return 0, false
	}
	return b.width*c.Y + c.X, true
}

// At returns the cell at c; coordinates off the board read as Empty.
func (b *Board) At(c Coord) Cell {
	i, ok := b.Index(c)
	if !ok {
		return Empty
	}
	return b.cells[i]
}

// Set places a stone for p at c. Panics when c is off the board.
func (b *Board) Set(c Coord, p Player) {
	i, ok := b.Index(c)
	if !ok {
		panic(fmt.Sprintf("coordinate %v is off the board", c))
	}
	if p < 0 || p >= MaxPlayers {
		panic(fmt.Sprintf("player %d out of range", p))
	}
	b.cells[i] = Cell(p)
}

// Coords yields every coordinate in row-major order.
func (b *Board) Coords() iter.Seq[Coord] {
	width, height := b.width, b.height
	return func(yield func(Coord) bool) {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !yield(Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Neighbors yields the 8-connected neighbors of c that lie on the board.
func (b *Board) Neighbors(c Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := Coord{X: c.X + dx, Y: c.Y + dy}
				if !b.Contains(n) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// TallyNeighbors counts the stones each player has around c, and the empty cells around it.
func (b *Board) TallyNeighbors(c Coord) (influence [MaxPlayers]int, empty int) {
	for n := range b.Neighbors(c) {
		if p, ok := b.At(n).Owner(); ok {
			influence[p]++
		} else {
			empty++
		}
	}
	return influence, empty
}

// IsValidMove reports whether mover may place a stone at c: the cell is empty and no
// other active player has strictly more stones around it.
func (b *Board) IsValidMove(c Coord, mover Player, numPlayers int) bool {
	checkNumPlayers(numPlayers)
	if !b.Contains(c) || b.At(c) != Empty {
		return false
	}

	influence, _ := b.TallyNeighbors(c)
	for p := Player(0); int(p) < numPlayers; p++ {
		if p != mover && influence[p] > influence[mover] {
			return false
		}
	}
	return true
}

// ValidMoves lists every coordinate where mover may play, in row-major order.
func (b *Board) ValidMoves(mover Player, numPlayers int) []Coord {
	var moves []Coord
	for c := range b.Coords() {
		if b.IsValidMove(c, mover, numPlayers) {
			moves = append(moves, c)
		}
	}
	return moves
}

// IsEmpty reports whether no stone has been placed yet.
func (b *Board) IsEmpty() bool {
	for _, cell := range b.cells {
		if cell != Empty {
			return false
		}
	}
	return true
}

// Clone returns a deep copy; the two boards never share cells.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// Cells returns the board as a flat row-major slice, -1 for empty.
func (b *Board) Cells() []int {
	out := make([]int, len(b.cells))
	for i, cell := range b.cells {
		out[i] = int(cell)
	}
	return out
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if p, ok := b.At(Coord{X: x, Y: y}).Owner(); ok {
				sb.WriteByte(byte('0' + p))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
