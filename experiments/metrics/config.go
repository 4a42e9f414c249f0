package metrics

import "time"

// AgentConfig describes one searcher taking part in an experiment.
type AgentConfig struct {
	ID         int
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int64
	Evaluate   string // Key of game.Evaluations, empty for the default
}
