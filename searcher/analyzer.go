package searcher

import (
	"context"
	"errors"
	"rock/game"
	"sync"
)

var ErrAnalyzing = errors.New("analysis already running")

// Analyzer runs a search in the background and exposes the result of every
// completed iteration while it runs.
type Analyzer struct {
	searcher *Searcher
	report   func(Analysis)

	mu      sync.RWMutex
	best    Analysis
	hasBest bool
	err     error
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewAnalyzer builds the searcher from options. A WithReport option is
// called after every completed iteration, from the analysis goroutine.
func NewAnalyzer(options ...Option) *Analyzer {
	a := &Analyzer{}
	s := New(options...)
	a.report = s.report
	a.searcher = s.With(WithReport(a.update))
	return a
}

func (a *Analyzer) update(analysis Analysis) {
	a.mu.Lock()
	a.best, a.hasBest = analysis, true
	a.mu.Unlock()
	if a.report != nil {
		a.report(analysis)
	}
}

// Start analyzes b until the searcher's budgets run out, Stop is called or
// ctx is done.
func (a *Analyzer) Start(ctx context.Context, b game.Board) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done != nil {
		select {
		case <-a.done:
		default:
			return ErrAnalyzing
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.best, a.hasBest, a.err = Analysis{}, false, nil
	a.cancel, a.done = cancel, done

	go func() {
		defer close(done)
		defer cancel()

		analysis, err := a.searcher.Analyze(ctx, b)
		a.mu.Lock()
		defer a.mu.Unlock()
		if err != nil {
			a.err = err
			return
		}
		a.best, a.hasBest = analysis, true
	}()
	return nil
}

// Stop cancels a running analysis and waits for it to return.
func (a *Analyzer) Stop() {
	a.mu.RLock()
	cancel, done := a.cancel, a.done
	a.mu.RUnlock()
	if done == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the analysis ends and returns its final result.
func (a *Analyzer) Wait() (Analysis, error) {
	a.mu.RLock()
	done := a.done
	a.mu.RUnlock()
	if done != nil {
		<-done
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.best, a.err
}

func (a *Analyzer) Ongoing() bool {
	a.mu.RLock()
	done := a.done
	a.mu.RUnlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Best returns the latest completed iteration, if any.
func (a *Analyzer) Best() (Analysis, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.best, a.hasBest
}

// Depth returns the depth of the latest completed iteration.
func (a *Analyzer) Depth() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.best.Depth
}
