package game

type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// Win returns the outcome in which p has won.
func Win(p Player) Outcome {
	if p == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner reports the winning player of a decided game.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return White, false
}

func (o Outcome) Terminal() bool {
	return o != Ongoing
}

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}
