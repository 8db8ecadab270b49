package game

import "fmt"

type InfluenceKind int

const (
	// A stone sits on the cell.
	Occupied InfluenceKind = iota
	// No other player can ever catch up here, whatever happens to the empty neighbors.
	Ruled
	// The player is ahead for now, but the lead can still be overturned.
	Claimed
	// Nobody is ahead.
	Tied
)

func (k InfluenceKind) String() string {
	switch k {
	case Occupied:
		return "occupied"
	case Ruled:
		return "ruled"
	case Claimed:
		return "claimed"
	case Tied:
		return "tied"
	default:
		return fmt.Sprintf("InfluenceKind(%d)", int(k))
	}
}

// Influence is the derived ownership of a cell. Player is meaningless when Kind is Tied.
type Influence struct {
	Kind   InfluenceKind
	Player Player
}

// Owner returns the player the cell counts for, if any.
func (i Influence) Owner() (Player, bool) {
	if i.Kind == Tied {
		return 0, false
	}
	return i.Player, true
}

func (i Influence) String() string {
	if i.Kind == Tied {
		return i.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", i.Kind, i.Player)
}

// Influence classifies c. Lower player indices win ties between candidates.
func (b *Board) Influence(c Coord) Influence {
	if p, ok := b.At(c).Owner(); ok {
		return Influence{Kind: Occupied, Player: p}
	}

	influence, empty := b.TallyNeighbors(c)
	for p := Player(0); p < MaxPlayers; p++ {
		canBeTaken := false
		isContested := false
		for q := Player(0); q < MaxPlayers; q++ {
			if q == p {
				continue
			}
			if influence[q]+empty >= influence[p] {
				canBeTaken = true
			}
			if influence[q] >= influence[p] {
				isContested = true
			}
		}
		if !canBeTaken {
			return Influence{Kind: Ruled, Player: p}
		}
		if !isContested {
			return Influence{Kind: Claimed, Player: p}
		}
	}
	return Influence{Kind: Tied}
}

// Points counts the cells each player owns by Influence; tied cells count for nobody.
func (b *Board) Points() Points {
	var points Points
	for c := range b.Coords() {
		if p, ok := b.Influence(c).Owner(); ok {
			points[p]++
		}
	}
	return points
}
