package searcher

import "math"

// CSquared is the default exploration constant c^2 in the UCT bonus sqrt(c^2 ln N / n).
const CSquared = 2.0

// uct scores the children of a parent visited N times.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

// evaluate returns the mean reward plus the exploration bonus of a child with total reward q over n visits.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return q/n + math.Sqrt(u.numerator/n)
}
