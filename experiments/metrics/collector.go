package metrics

import (
	"rock/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	MaxDepth   int
	Depth      int // Deepest completed iteration
	Duration   time.Duration
	Nodes      int64
	Cutoffs    int64
	TableHits  int64
	ReSearches int64
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Outcome        game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the statistics of one search. All methods but Start and
// Complete may be called from several goroutines.
type Collector interface {
	Start(goroutines, maxDepth int)
	AddNode()
	AddCutoff()
	AddTableHit()
	AddReSearch()
	SetDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	maxDepth   int
	startTime  time.Time
	depth      atomic.Int32
	nodes      atomic.Int64
	cutoffs    atomic.Int64
	tableHits  atomic.Int64
	reSearches atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, maxDepth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.maxDepth = maxDepth
	m.depth.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.tableHits.Store(0)
	m.reSearches.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) AddReSearch() {
	m.reSearches.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		MaxDepth:   m.maxDepth,
		Depth:      int(m.depth.Load()),
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Cutoffs:    m.cutoffs.Load(),
		TableHits:  m.tableHits.Load(),
		ReSearches: m.reSearches.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, maxDepth int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddCutoff()                     {}
func (m *dummyCollector) AddTableHit()                   {}
func (m *dummyCollector) AddReSearch()                   {}
func (m *dummyCollector) SetDepth(depth int)             {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
