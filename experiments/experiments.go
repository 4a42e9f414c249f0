package experiments

import (
	"context"
	"fmt"
	"rock/engine"
	"rock/experiments/metrics"
	"rock/game"
	"rock/searcher"
	"rock/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumGames     = 10 // Per match up
	TimeBudget   = 100 * time.Millisecond
	OpeningPlies = 4 // Random plies before the agents take over, so games differ
	ResultsDir   = "experiments"
)

// Names lists the experiments that Run accepts.
var Names = []string{"depth", "parallelization", "evaluation"}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Depth: 1},
	{ID: 2, Goroutines: 1, Depth: 2},
	{ID: 3, Goroutines: 1, Depth: 3},
	{ID: 4, Goroutines: 1, Depth: 4},
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Depth: searcher.MaxDepth, Duration: TimeBudget},
	{ID: 2, Goroutines: 2, Depth: searcher.MaxDepth, Duration: TimeBudget},
	{ID: 3, Goroutines: 4, Depth: searcher.MaxDepth, Duration: TimeBudget},
	{ID: 4, Goroutines: 8, Depth: searcher.MaxDepth, Duration: TimeBudget},
}

var evaluationConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Depth: 3, Evaluate: "centralization"},
	{ID: 2, Goroutines: 1, Depth: 3, Evaluate: "connectivity"},
	{ID: 3, Goroutines: 1, Depth: 3, Evaluate: "concentration"},
}

// Run runs the named experiment and stores its records under ResultsDir.
func Run(ctx context.Context, name string) error {
	switch name {
	case "depth":
		return RunDepthExperiment(ctx)
	case "parallelization":
		return RunParallelizationExperiment(ctx)
	case "evaluation":
		return RunEvaluationExperiment(ctx)
	}
	return fmt.Errorf("unknown experiment %q, expected one of %v", name, Names)
}

// RunDepthExperiment pairs every depth against the depth 1 baseline.
func RunDepthExperiment(ctx context.Context) error {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Depth: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "depth", append(depthConfigs, baseline), matchUps)
}

// RunParallelizationExperiment pairs every goroutine count against the
// sequential searcher under the same time budget.
func RunParallelizationExperiment(ctx context.Context) error {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Depth: searcher.MaxDepth, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "parallelization", append(parallelConfigs, baseline), matchUps)
}

// RunEvaluationExperiment pairs every single heuristic against the standard
// evaluation.
func RunEvaluationExperiment(ctx context.Context) error {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Depth: 3, Evaluate: "standard"}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range evaluationConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "evaluation", append(evaluationConfigs, baseline), matchUps)
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	return runGames(ctx, ResultsDir, name, NumGames, configs, matchUps)
}

func runGames(ctx context.Context, dir, name string, numGames int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < numGames; i++ {
			// Alternate colours so neither agent always moves first
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, numGames)

			opening := randomOpening(uint64(mi*numGames+i), OpeningPlies)
			e, err := newGame(white, black, opening)
			if err != nil {
				return err
			}
			outcome, gameMetric, moveMetrics, err := e.Run(ctx)
			if err != nil {
				return fmt.Errorf("game %s failed: %w", e.ID, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         e.ID,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       e.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// newGame sets up a game between two configured searchers
func newGame(white, black metrics.AgentConfig, start game.Board) (*engine.Local, error) {
	agents := [2]agent.Agent{}
	for p, config := range []metrics.AgentConfig{white, black} {
		s, err := createSearcher(config)
		if err != nil {
			return nil, err
		}
		agents[p] = agent.NewEvaluationAgent(s)
	}
	return engine.LocalEngine(agents, engine.WithBoard(start)), nil
}

// randomOpening plays random moves from the start position.
func randomOpening(seed uint64, plies int) game.Board {
	rng := rand.New(rand.NewSource(seed))
	b := game.NewBoard()
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		b, _ = b.Apply(moves[rng.Intn(len(moves))])
	}
	return b
}

func createSearcher(config metrics.AgentConfig) (*searcher.Searcher, error) {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Nodes > 0 {
		options = append(options, searcher.WithNodes(config.Nodes))
	}
	if config.Evaluate != "" {
		evaluate, ok := game.Evaluations[config.Evaluate]
		if !ok {
			return nil, fmt.Errorf("unknown evaluation %q", config.Evaluate)
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	options = append(options, searcher.WithGoroutines(max(config.Goroutines, 1)), searcher.WithMetrics())
	return searcher.New(options...), nil
}
