package agent

import (
	"context"
	"fmt"
	"rock/experiments/metrics"
	"rock/game"
	"rock/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s cannot move", searcher.ErrNoMoves, b.ToMove())
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
