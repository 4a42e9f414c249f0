package game

// Score is an evaluation from one player's perspective, higher is better.
type Score int64

const (
	WinScore  Score = 1_000_000_000
	LossScore Score = -WinScore
	DrawScore Score = 0
)

const (
	centralityWeight    = 10
	tempoBonus          = 20
	connectivityWeight  = 100
	concentrationWeight = 10
)

// central regions: the middle 2x2, 4x4 and 6x6 squares.
var centralRegions = func() [3]Bitboard {
	var regions [3]Bitboard
	for i := range regions {
		lo, hi := Size/2-1-i, Size/2+i
		for y := lo; y <= hi; y++ {
			for x := lo; x <= hi; x++ {
				sq, _ := NewSquare(x, y)
				regions[i] = regions[i].With(sq)
			}
		}
	}
	return regions
}()

// OutcomeScore maps a decided game to the sentinel scores for p.
func OutcomeScore(o Outcome, p Player) Score {
	winner, ok := o.Winner()
	switch {
	case !ok:
		return DrawScore
	case winner == p:
		return WinScore
	}
	return LossScore
}

// terminal wraps a heuristic so that decided games score exactly and the
// result is antisymmetric between the two players.
func terminal(heuristic func(b Board, p Player) Score) Evaluate {
	return func(b Board, p Player) Score {
		if o := b.Outcome(); o != Ongoing {
			return OutcomeScore(o, p)
		}
		return heuristic(b, p) - heuristic(b, p.Other())
	}
}

// EvaluateCentralization rewards pieces in the centre of the board and
// having the move.
var EvaluateCentralization = terminal(func(b Board, p Player) Score {
	return centrality(b, p) + tempo(b, p)
})

// EvaluateConnectivity rewards having most pieces in one group.
var EvaluateConnectivity = terminal(connectivity)

// EvaluateConcentration rewards pieces close to their centre of mass.
var EvaluateConcentration = terminal(concentration)

// EvaluateStandard combines all heuristics and is the default of the search.
var EvaluateStandard = terminal(func(b Board, p Player) Score {
	return centrality(b, p) + tempo(b, p) + connectivity(b, p) + concentration(b, p)
})

// Evaluations lists the shipped evaluation functions by name.
var Evaluations = map[string]Evaluate{
	"centralization": EvaluateCentralization,
	"connectivity":   EvaluateConnectivity,
	"concentration":  EvaluateConcentration,
	"standard":       EvaluateStandard,
}

func centrality(b Board, p Player) Score {
	var score Score
	for _, region := range centralRegions {
		score += Score((b.pieces[p] & region).Count() * centralityWeight)
	}
	return score
}

func tempo(b Board, p Player) Score {
	if b.toMove == p {
		return tempoBonus / 2
	}
	return -tempoBonus / 2
}

func connectivity(b Board, p Player) Score {
	pieces := b.pieces[p]
	if pieces == 0 {
		return 0
	}
	largest := 0
	for _, g := range pieces.groups() {
		largest = max(largest, g.Count())
	}
	return Score(connectivityWeight * largest / pieces.Count())
}

// concentration is minus the average Chebyshev distance to the centre of
// mass, scaled by concentrationWeight.
func concentration(b Board, p Player) Score {
	squares := b.pieces[p].Squares()
	if len(squares) == 0 {
		return 0
	}
	sumX, sumY := 0, 0
	for _, sq := range squares {
		sumX += sq.X()
		sumY += sq.Y()
	}
	cx, cy := divRound(sumX, len(squares)), divRound(sumY, len(squares))
	distance := 0
	for _, sq := range squares {
		distance += max(abs(sq.X()-cx), abs(sq.Y()-cy))
	}
	return -Score(concentrationWeight * distance / len(squares))
}

func divRound(a, n int) int {
	return (2*a + n) / (2 * n)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
