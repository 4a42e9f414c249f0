package searcher

import (
	"context"
	"sync/atomic"
)

// pollInterval is how many nodes pass between checks of the context.
const pollInterval = 256

// budget is shared by all goroutines of one search and trips once the node
// limit is reached or the context is done.
type budget struct {
	ctx     context.Context
	limit   int64
	nodes   atomic.Int64
	stopped atomic.Bool
}

func newBudget(ctx context.Context, limit int64) *budget {
	return &budget{ctx: ctx, limit: limit}
}

// spend accounts for one node and reports whether the search may go on.
func (b *budget) spend() bool {
	if b.stopped.Load() {
		return false
	}
	n := b.nodes.Add(1)
	if b.limit > 0 && n > b.limit {
		b.stopped.Store(true)
		return false
	}
	if n%pollInterval == 0 && b.ctx.Err() != nil {
		b.stopped.Store(true)
		return false
	}
	return true
}

// exhausted also polls the context, for use between iterations.
func (b *budget) exhausted() bool {
	if b.ctx.Err() != nil {
		b.stopped.Store(true)
	}
	return b.stopped.Load()
}
