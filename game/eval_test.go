package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluate(t *testing.T) {
	t.Run("antisymmetric on random positions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		positions := randomPlayout(rng, NewBoard(), 80)
		positions = append(positions, randomPlayout(rng, NewScrambledEggsRules().StartingBoard(), 80)...)

		for name, evaluate := range Evaluations {
			for _, b := range positions {
				require.Equal(t, evaluate(b, White), -evaluate(b, Black), "%s should be antisymmetric", name)
			}
		}
	})

	t.Run("terminal boards score exactly", func(t *testing.T) {
		won := board(t, []string{"D4", "E5"}, []string{"A1", "H8"}, Black)
		drawn := board(t, []string{"A1", "B1"}, []string{"H8", "G8"}, White)

		for name, evaluate := range Evaluations {
			require.Equal(t, WinScore, evaluate(won, White), name)
			require.Equal(t, LossScore, evaluate(won, Black), name)
			require.Equal(t, DrawScore, evaluate(drawn, White), name)
			require.Equal(t, DrawScore, evaluate(drawn, Black), name)
		}
	})

	t.Run("heuristic scores stay inside the sentinels", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for _, b := range randomPlayout(rng, NewBoard(), 80) {
			if b.Outcome() != Ongoing {
				continue
			}
			score := EvaluateStandard(b, b.ToMove())
			require.Less(t, score, WinScore)
			require.Greater(t, score, LossScore)
		}
	})

	t.Run("centralization counts nested regions and tempo", func(t *testing.T) {
		// D4 lies in all three regions, A1 in none.
		b := board(t, []string{"D4", "A8"}, []string{"A1", "H1"}, White)

		require.Equal(t, Score(3*10+20), EvaluateCentralization(b, White))
		require.Equal(t, Score(-3*10-20), EvaluateCentralization(b, Black))
	})

	t.Run("start position is balanced up to tempo", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, Score(20), EvaluateCentralization(b, White))
	})

	t.Run("connectivity prefers one large group", func(t *testing.T) {
		b := board(t, []string{"A1", "B1", "C1", "H8"}, []string{"A8", "C8", "E8", "H1"}, White)

		require.Greater(t, EvaluateConnectivity(b, White), Score(0))
	})

	t.Run("concentration prefers compact pieces", func(t *testing.T) {
		b := board(t, []string{"C3", "E3", "D5"}, []string{"A1", "H8", "A8"}, White)

		require.Greater(t, EvaluateConcentration(b, White), Score(0))
	})
}

func TestOutcomeScore(t *testing.T) {
	require.Equal(t, WinScore, OutcomeScore(WhiteWins, White))
	require.Equal(t, LossScore, OutcomeScore(WhiteWins, Black))
	require.Equal(t, DrawScore, OutcomeScore(Draw, Black))
}
