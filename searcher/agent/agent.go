package agent

import (
	"context"
	"rock/experiments/metrics"
	"rock/game"
)

type Agent interface {
	// FindMove returns a move for the side to move and performance metrics (if collected) from the search
	FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error)
}
