package engine

import (
	"context"
	"fmt"
	"rock/experiments/metrics"
	"rock/game"
	"rock/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Local plays a game between two in-process agents.
type Local struct {
	ID     uuid.UUID
	Game   *game.Game
	Agents [2]agent.Agent // Indexed by game.Player

	maxMoves int
	observer func(Update)
}

// Update describes one played ply.
type Update struct {
	Step   int
	Player game.Player
	Move   game.Move
	Board  game.Board // Position after the move
	Metric metrics.SearchMetric
}

type Option func(e *Local)

// WithBoard starts the game from b instead of the standard position.
func WithBoard(b game.Board) Option {
	return func(e *Local) {
		e.Game = game.NewGame(b)
	}
}

func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithObserver calls observe after every ply.
func WithObserver(observe func(Update)) Option {
	return func(e *Local) {
		e.observer = observe
	}
}

func LocalEngine(agents [2]agent.Agent, options ...Option) *Local {
	for p, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("missing agent for %s", game.Player(p)))
		}
	}
	e := &Local{
		ID:       uuid.New(),
		Game:     game.NewGame(game.NewBoard()),
		Agents:   agents,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is decided or the move cap is
// reached, in which case the outcome is game.Ongoing.
func (e *Local) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := e.Game.Current()
	gameMetric := metrics.GameMetric{StartingPlayer: start.ToMove(), StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", e.ID, start.ToMove())

	outcome := game.Ongoing
	for step := 1; ; step++ {
		b := e.Game.Current()
		outcome = game.GameOutcome(b, b.ToMove())
		if outcome != game.Ongoing {
			break
		}
		if step > e.maxMoves {
			log.Info().Msgf("game %s: stopped after %d moves without a result", e.ID, e.maxMoves)
			break
		}
		if err := ctx.Err(); err != nil {
			return game.Ongoing, gameMetric, moveMetrics, err
		}

		player := b.ToMove()
		move, searchMetric, err := e.Agents[player].FindMove(ctx, b)
		if err != nil {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if !e.Game.MakeMove(move) {
			return game.Ongoing, gameMetric, moveMetrics, fmt.Errorf("%w: %s played %s", game.ErrIllegalMove, player, move)
		}
		log.Debug().Msgf("game %s: move %d %s plays %s", e.ID, step, player, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		if e.observer != nil {
			e.observer(Update{Step: step, Player: player, Move: move, Board: e.Game.Current(), Metric: searchMetric})
		}
	}

	gameMetric.Outcome = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Info().Msgf("game %s: %s after %d moves", e.ID, outcome, gameMetric.TotalMoves)
	return outcome, gameMetric, moveMetrics, nil
}
