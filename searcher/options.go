package searcher

import (
	"fmt"
	"rock/experiments/metrics"
	"rock/game"
	"time"
)

type Option func(s *Searcher)

// Searcher finds the best move of a position with iterative deepening
// alpha-beta. Its configuration is fixed at construction, so one Searcher
// may run several searches at once.
type Searcher struct {
	goroutines int
	depth      int
	duration   time.Duration
	nodes      int64
	tableSize  int
	evaluate   game.Evaluate
	metrics    bool
	report     func(Analysis)
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *Searcher) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithNodes stops the search after visiting the given number of nodes.
func WithNodes(nodes int64) Option {
	return func(s *Searcher) {
		if nodes > 0 {
			s.nodes = nodes
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		s.goroutines = goroutines
	}
}

// WithTableSize sets the transposition table of every goroutine to 2^bits
// entries.
func WithTableSize(bits int) Option {
	return func(s *Searcher) {
		s.tableSize = bits
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = true
	}
}

// WithReport calls report after every completed iteration.
func WithReport(report func(Analysis)) Option {
	return func(s *Searcher) {
		s.report = report
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: 1,
		depth:      DefaultDepth,
		tableSize:  DefaultTableSize,
		evaluate:   game.EvaluateStandard,
	}
	for _, option := range options {
		option(s)
	}
	s.validate()
	return s
}

// With returns a copy of the searcher with further options applied.
func (s *Searcher) With(options ...Option) *Searcher {
	c := *s
	for _, option := range options {
		option(&c)
	}
	c.validate()
	return &c
}

func (s *Searcher) validate() {
	if s.depth < 1 || s.depth > MaxDepth {
		panic(fmt.Sprintf("search depth must be within 1 and %d, got %d", MaxDepth, s.depth))
	}
	if s.goroutines < 1 {
		panic(fmt.Sprintf("must search with at least one goroutine, got %d", s.goroutines))
	}
	if s.tableSize < 0 || s.tableSize > MaxTableSize {
		panic(fmt.Sprintf("table size must be within 0 and %d, got %d", MaxTableSize, s.tableSize))
	}
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Goroutines() int {
	return s.goroutines
}

func (s *Searcher) newCollector() metrics.Collector {
	if s.metrics {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}
