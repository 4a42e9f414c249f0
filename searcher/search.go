package searcher

import (
	"context"
	"fmt"
	"rock/game"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Recommend returns the best move for p and its score from p's perspective.
func (s *Searcher) Recommend(ctx context.Context, b game.Board, p game.Player) (game.Move, game.Score, error) {
	if b.ToMove() != p {
		return game.Move{}, 0, fmt.Errorf("%w: %s is not to move", ErrNoMoves, p)
	}
	analysis, err := s.Analyze(ctx, b)
	if err != nil {
		return game.Move{}, 0, err
	}
	return analysis.BestMove, analysis.Score, nil
}

// Analyze searches b for the side to move, deepening one ply at a time until
// the depth is reached or a budget runs out. Once interrupted it returns the
// deepest completed iteration.
func (s *Searcher) Analyze(ctx context.Context, b game.Board) (Analysis, error) {
	outcome, moves := b.Status()
	if outcome != game.Ongoing {
		return Analysis{}, fmt.Errorf("%w: game is over (%s)", ErrNoMoves, outcome)
	}
	if len(moves) == 0 {
		return Analysis{}, fmt.Errorf("%w: %s cannot move", ErrNoMoves, b.ToMove())
	}

	if s.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.duration)
		defer cancel()
	}
	collector := s.newCollector()
	collector.Start(s.goroutines, s.depth)
	budget := newBudget(ctx, s.nodes)
	workers := make([]*worker, s.goroutines)
	for i := range workers {
		workers[i] = &worker{
			evaluate: s.evaluate,
			table:    newTable(s.tableSize),
			budget:   budget,
			metrics:  collector,
		}
	}
	r := &root{board: b, moves: moves, workers: workers}

	analysis := s.static(b, moves[0])
	for depth := 1; depth <= s.depth; depth++ {
		result, complete := r.iterate(depth)
		if !complete {
			if depth == 1 && result.searched {
				analysis = r.analysis(result, 0)
			}
			log.Debug().Msgf("search interrupted at depth %d after %d nodes", depth, budget.nodes.Load())
			break
		}

		analysis = r.analysis(result, depth)
		collector.SetDepth(depth)
		log.Debug().Msgf("depth %d: %s scores %d, variation %v", depth, analysis.BestMove, analysis.Score, analysis.Variation)
		if s.report != nil {
			report := analysis
			report.Metric = collector.Complete()
			s.report(report)
		}
		if budget.exhausted() {
			break
		}
	}

	analysis.Metric = collector.Complete()
	return analysis, nil
}

// static scores the position after m without searching.
func (s *Searcher) static(b game.Board, m game.Move) Analysis {
	next, err := b.Apply(m)
	if err != nil {
		panic(fmt.Sprintf("searcher: %v", err))
	}
	return Analysis{BestMove: m, Score: s.evaluate(next, b.ToMove()), Variation: []game.Move{m}}
}

type root struct {
	board   game.Board
	moves   []game.Move
	workers []*worker
}

type rootResult struct {
	index    int
	score    game.Score
	worker   int
	searched bool // At least one root move was fully searched
}

// iterate searches every root move to the given depth. Root moves are handed
// out in order over a channel; each one is searched with the window
// (best-1, +inf) where best is the highest score published so far, so every
// move that could tie or beat the final best returns its exact value. The
// first move in generation order with the highest value wins.
func (r *root) iterate(depth int) (rootResult, bool) {
	tasks := make(chan int, len(r.moves))
	for i := range r.moves {
		tasks <- i
	}
	close(tasks)

	scores := make([]game.Score, len(r.moves))
	by := make([]int, len(r.moves))
	done := make([]bool, len(r.moves))
	var best atomic.Int64
	best.Store(int64(-infinity))
	var stopped atomic.Bool

	var wg sync.WaitGroup
	for id, w := range r.workers {
		id, w := id, w
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range tasks {
				if stopped.Load() {
					return
				}
				next, err := r.board.Apply(r.moves[i])
				if err != nil {
					panic(fmt.Sprintf("searcher: %v", err))
				}
				alpha := max(game.Score(best.Load())-1, -infinity)
				reply, ok := w.search(next, depth-1, -infinity, -alpha, line{})
				if !ok {
					stopped.Store(true)
					return
				}
				score := -reply.score
				scores[i], by[i], done[i] = score, id, true
				raise(&best, score)
			}
		}()
	}
	wg.Wait()

	result := rootResult{index: -1, score: -infinity}
	for i := range r.moves {
		if done[i] && (!result.searched || scores[i] > result.score) {
			result = rootResult{index: i, score: scores[i], worker: by[i], searched: true}
		}
	}
	return result, !stopped.Load()
}

func (r *root) analysis(result rootResult, depth int) Analysis {
	m := r.moves[result.index]
	variation := []game.Move{m}
	if depth > 1 {
		next, _ := r.board.Apply(m)
		variation = append(variation, r.workers[result.worker].table.variation(next, depth-1)...)
	}
	return Analysis{BestMove: m, Score: result.score, Depth: depth, Variation: variation}
}

// raise sets best to score if it is higher.
func raise(best *atomic.Int64, score game.Score) {
	for {
		current := best.Load()
		if int64(score) <= current || best.CompareAndSwap(current, int64(score)) {
			return
		}
	}
}
