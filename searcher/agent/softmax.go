package agent

import (
	"context"
	"rock/experiments/metrics"
	"rock/game"
	"rock/searcher"

	"golang.org/x/exp/rand"
)

type softmaxAgent struct {
	searcher  *searcher.Searcher
	parameter float64
	rng       *rand.Rand
}

// NewSoftmaxAgent returns an agent of the given difficulty level, sampling
// among separately analyzed moves so that weaker levels play worse moves
// more often.
func NewSoftmaxAgent(level int, rng *rand.Rand, options ...searcher.Option) Agent {
	d := searcher.DifficultySettings(level)
	options = append(options, searcher.WithDepth(d.Depth))
	return softmaxAgent{
		searcher:  searcher.New(options...),
		parameter: d.Parameter,
		rng:       rng,
	}
}

func (a softmaxAgent) FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error) {
	analyses, err := a.searcher.AnalyzeMoves(ctx, b)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	chosen, _ := searcher.SelectSoftmax(analyses, a.parameter, a.rng)
	return chosen.Move, summarize(analyses), nil
}

// summarize adds up the metrics of every analyzed move.
func summarize(analyses []searcher.MoveAnalysis) metrics.SearchMetric {
	var total metrics.SearchMetric
	for _, a := range analyses {
		m := a.Metric
		total.Goroutines = max(total.Goroutines, m.Goroutines)
		total.MaxDepth = max(total.MaxDepth, m.MaxDepth+1)
		total.Depth = max(total.Depth, a.Depth)
		total.Duration += m.Duration
		total.Nodes += m.Nodes
		total.Cutoffs += m.Cutoffs
		total.TableHits += m.TableHits
		total.ReSearches += m.ReSearches
	}
	return total
}
