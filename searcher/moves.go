package searcher

import (
	"context"
	"fmt"
	"math"
	"rock/game"

	"golang.org/x/exp/rand"
)

// softmaxScale is the score difference that counts as one unit of the
// softmax parameter.
const softmaxScale = 100.0

// MoveAnalysis scores one legal move from the perspective of the player
// making it.
type MoveAnalysis struct {
	Move game.Move
	Analysis
}

// AnalyzeMoves searches every legal move of b separately, one ply shallower
// than the searcher's depth, in the order of b.LegalMoves.
func (s *Searcher) AnalyzeMoves(ctx context.Context, b game.Board) ([]MoveAnalysis, error) {
	outcome, moves := b.Status()
	if outcome != game.Ongoing || len(moves) == 0 {
		return nil, fmt.Errorf("%w: %s cannot move (%s)", ErrNoMoves, b.ToMove(), outcome)
	}
	mover := b.ToMove()
	child := s
	if s.depth > 1 {
		child = s.With(WithDepth(s.depth-1), WithReport(nil))
	}

	analyses := make([]MoveAnalysis, 0, len(moves))
	for _, m := range moves {
		next, err := b.Apply(m)
		if err != nil {
			return nil, err
		}
		a := MoveAnalysis{Move: m, Analysis: Analysis{BestMove: m, Depth: 1, Variation: []game.Move{m}}}
		switch o := next.Outcome(); {
		case o != game.Ongoing:
			a.Score = game.OutcomeScore(o, mover)
		case s.depth == 1:
			a.Score = s.evaluate(next, mover)
		default:
			reply, err := child.Analyze(ctx, next)
			if err != nil {
				return nil, err
			}
			a.Score = -reply.Score
			a.Depth = reply.Depth + 1
			a.Variation = append(a.Variation, reply.Variation...)
			a.Metric = reply.Metric
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// SelectSoftmax picks a move with probability proportional to
// exp(parameter * score / softmaxScale). A parameter of 0 picks uniformly at
// random, +Inf always picks the first best move.
func SelectSoftmax(analyses []MoveAnalysis, parameter float64, rng *rand.Rand) (MoveAnalysis, bool) {
	if len(analyses) == 0 {
		return MoveAnalysis{}, false
	}
	best := 0
	for i, a := range analyses {
		if a.Score > analyses[best].Score {
			best = i
		}
	}
	if math.IsInf(parameter, 1) {
		return analyses[best], true
	}

	weights := make([]float64, len(analyses))
	sum := 0.0
	for i, a := range analyses {
		delta := float64(a.Score-analyses[best].Score) / softmaxScale
		weights[i] = math.Exp(parameter * delta)
		sum += weights[i]
	}
	sampled := rng.Float64() * sum
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if sampled < cumulative {
			return analyses[i], true
		}
	}
	return analyses[best], true // Fallback in case of rounding errors
}

// Difficulty is the strength of a computer opponent.
type Difficulty struct {
	Level     int
	Depth     int
	Parameter float64 // Softmax parameter, see SelectSoftmax
}

// DifficultySettings maps a level to search settings: 0 plays random moves
// and 10 or more always plays the best move found, searching deeper with
// every level. Levels above 10 get slow quickly.
func DifficultySettings(level int) Difficulty {
	level = max(level, 0)
	d := Difficulty{Level: level, Depth: min(1+level/2, MaxDepth)}
	switch {
	case level >= 10:
		d.Depth = min(6+level-10, MaxDepth)
		d.Parameter = math.Inf(1)
	default:
		d.Parameter = 0.5 * float64(level*level)
	}
	return d
}
