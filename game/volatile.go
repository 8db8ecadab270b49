package game

import "math"

const settled = math.MaxInt32

// VolatileCells reports, per cell in row-major order, whether its eventual owner can still change.
//
// Every empty cell gets a provisional claimant and a strength (its lead over the runner-up).
// All claims are then pretend-played at once, each weakening the differently-claimed cells
// around it, and every cell whose lead is gone is flipped in turn, weakening its own
// neighbors, until nothing more can flip.
func (b *Board) VolatileCells(numPlayers int) []bool {
	checkNumPlayers(numPlayers)

	n := len(b.cells)
	claimant := make([]Cell, n)
	strength := make([]int, n)
	var flips []int

	for c := range b.Coords() {
		i, _ := b.Index(c)
		if cell := b.cells[i]; cell != Empty {
			claimant[i] = cell
			strength[i] = settled
			continue
		}

		influence, _ := b.TallyNeighbors(c)
		leader := 0
		for p := 1; p < numPlayers; p++ {
			if influence[p] > influence[leader] {
				leader = p
			}
		}

		lead := settled
		for p := 0; p < numPlayers; p++ {
			if p != leader {
				lead = min(lead, influence[leader]-influence[p])
			}
		}

		strength[i] = lead
		if lead == 0 {
			claimant[i] = Empty
			flips = append(flips, i)
		} else {
			claimant[i] = Cell(leader)
		}
	}

	// Pretend every claim is played out.
	for c := range b.Coords() {
		i, _ := b.Index(c)
		if b.cells[i] != Empty || claimant[i] == Empty {
			continue
		}
		for nc := range b.Neighbors(c) {
			j, _ := b.Index(nc)
			if claimant[j] != Empty && claimant[j] != claimant[i] {
				strength[j]--
				if strength[j] == 0 {
					flips = append(flips, j)
				}
			}
		}
	}

	visited := make([]bool, n)
	for len(flips) > 0 {
		i := flips[len(flips)-1]
		flips = flips[:len(flips)-1]
		if visited[i] {
			continue
		}
		visited[i] = true

		c := Coord{X: i % b.width, Y: i / b.width}
		for nc := range b.Neighbors(c) {
			j, _ := b.Index(nc)
			if claimant[j] == Empty {
				continue
			}
			if claimant[i] == Empty || claimant[i] == claimant[j] {
				strength[j]--
				if strength[j] <= 0 {
					flips = append(flips, j)
				}
			}
		}
	}

	volatile := make([]bool, n)
	for i, s := range strength {
		volatile[i] = s <= 0
	}
	return volatile
}

// IsGameOver reports whether the game has ended: fewer than two players can still move,
// or no cell can change owner anymore.
func (b *Board) IsGameOver(numPlayers int) bool {
	if !b.severalPlayersCanMove(numPlayers) {
		return true
	}
	for _, v := range b.VolatileCells(numPlayers) {
		if v {
			return false
		}
	}
	return true
}

func (b *Board) severalPlayersCanMove(numPlayers int) bool {
	checkNumPlayers(numPlayers)

	var moves [MaxPlayers]int
	for c := range b.Coords() {
		inf := b.Influence(c)
		switch inf.Kind {
		case Tied:
			// Anyone may play here.
			return true
		case Ruled, Claimed:
			moves[inf.Player]++
		}
	}

	players := 0
	for p := 0; p < numPlayers; p++ {
		if moves[p] > 0 {
			players++
		}
	}
	return players > 1
}
