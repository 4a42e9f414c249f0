package agent

import (
	"context"
	"rock/experiments/metrics"
	"rock/game"
	"rock/searcher"
)

type evaluationAgent struct {
	searcher *searcher.Searcher
}

// NewEvaluationAgent returns an agent that always plays the searcher's best move.
func NewEvaluationAgent(s *searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error) {
	analysis, err := a.searcher.Analyze(ctx, b)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return analysis.BestMove, analysis.Metric, nil
}
