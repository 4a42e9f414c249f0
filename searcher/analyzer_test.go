package searcher

import (
	"context"
	"rock/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAnalyzer(t *testing.T) {
	t.Run("reports iterations and stops on request", func(t *testing.T) {
		reports := make(chan Analysis, MaxDepth)
		a := NewAnalyzer(WithDepth(MaxDepth), WithReport(func(analysis Analysis) {
			reports <- analysis
		}))

		require.NoError(t, a.Start(context.Background(), game.NewBoard()))
		first := <-reports
		require.Equal(t, 1, first.Depth)
		require.True(t, a.Ongoing(), "Depth 64 should not finish on its own")
		require.ErrorIs(t, a.Start(context.Background(), game.NewBoard()), ErrAnalyzing)

		a.Stop()

		require.False(t, a.Ongoing())
		best, ok := a.Best()
		require.True(t, ok)
		require.GreaterOrEqual(t, a.Depth(), 1)
		require.Contains(t, game.NewBoard().LegalMoves(), best.BestMove)
	})

	t.Run("finishes on its own and can be restarted", func(t *testing.T) {
		a := NewAnalyzer(WithDepth(2))

		require.NoError(t, a.Start(context.Background(), game.NewBoard()))
		first, err := a.Wait()
		require.NoError(t, err)
		require.Equal(t, 2, first.Depth)

		require.NoError(t, a.Start(context.Background(), game.NewBoard()), "A finished analyzer should start again")
		second, err := a.Wait()
		require.NoError(t, err)
		require.Equal(t, first.BestMove, second.BestMove)
	})

	t.Run("reports search errors", func(t *testing.T) {
		a := NewAnalyzer(WithDepth(2))
		b := mustBoard(t, []string{"A1", "B2"}, []string{"H8", "F6"}, game.Black)

		require.NoError(t, a.Start(context.Background(), b))
		_, err := a.Wait()
		require.ErrorIs(t, err, ErrNoMoves)
		_, ok := a.Best()
		require.False(t, ok)
	})

	t.Run("stop without start", func(t *testing.T) {
		a := NewAnalyzer()

		a.Stop()

		require.False(t, a.Ongoing())
	})

	t.Run("respects the context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		a := NewAnalyzer(WithDepth(MaxDepth))

		require.NoError(t, a.Start(ctx, game.NewBoard()))
		_, err := a.Wait()

		require.NoError(t, err)
		require.False(t, a.Ongoing())
	})
}
