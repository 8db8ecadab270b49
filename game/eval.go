package game

const (
	occupiedWeight = 10
	ruledWeight    = 3
	claimedWeight  = 1
)

// EvaluateInfluence weighs every cell by how firmly it is held (stones over ruled over
// claimed cells) and returns p's share of the total. Tied cells dilute everyone's share.
func EvaluateInfluence(s *State, p Player) float64 {
	var weights [MaxPlayers]int
	tied := 1
	for c := range s.board.Coords() {
		inf := s.board.Influence(c)
		switch inf.Kind {
		case Occupied:
			weights[inf.Player] += occupiedWeight
		case Ruled:
			weights[inf.Player] += ruledWeight
		case Claimed:
			weights[inf.Player] += claimedWeight
		case Tied:
			tied++
		}
	}

	total := tied
	for _, w := range weights {
		total += w
	}
	return float64(weights[p]) / float64(total)
}

// EvaluatePoints returns p's share of the points on the board as it stands.
func EvaluatePoints(s *State, p Player) float64 {
	points := s.board.Points()
	total := 1
	for _, n := range points {
		total += n
	}
	return float64(points[p]) / float64(total)
}
