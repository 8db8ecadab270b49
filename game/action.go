package game

// Action is either a pass or a stone placed at Coord. Actions are comparable and usable as map keys.
type Action struct {
	pass  bool
	Coord Coord
}

func Pass() Action {
	return Action{pass: true}
}

func Move(c Coord) Action {
	return Action{Coord: c}
}

func (a Action) IsPass() bool {
	return a.pass
}

func (a Action) String() string {
	if a.pass {
		return "PASS"
	}
	return a.Coord.String()
}
