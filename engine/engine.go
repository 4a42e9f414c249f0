package engine

import (
	"context"
	"rock/experiments/metrics"
	"rock/game"
	"rock/meta"
)

const MaxMoves = meta.MAX_TURNS

type Engine interface {
	// Run plays a game till it is decided or a max number of moves is reached
	Run(ctx context.Context) (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
