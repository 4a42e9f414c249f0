package searcher

import (
	"errors"
	"rock/experiments/metrics"
	"rock/game"
	"rock/meta"
)

// ErrNoMoves is returned when asked to search a position where the given
// player cannot move: the game is over or it is the other player's turn.
var ErrNoMoves = errors.New("no legal moves to search")

const (
	MaxDepth         = 64
	DefaultDepth     = meta.SEARCH_DEPTH
	DefaultTableSize = meta.TABLE_SIZE // log2 of the entries per transposition table
	MaxTableSize     = 26
)

// infinity bounds every score, sentinels included.
const infinity = game.WinScore + 1

// Analysis is the result of a search from the perspective of the side to
// move.
type Analysis struct {
	BestMove game.Move
	Score    game.Score
	// Depth of the deepest completed iteration, 0 when even depth 1 was
	// interrupted.
	Depth int
	// Variation is the expected line of play starting with BestMove.
	Variation []game.Move
	Metric    metrics.SearchMetric
}
