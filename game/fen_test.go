package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const startFEN = "1PPPPPP1/p6p/p6p/p6p/p6p/p6p/p6p/1PPPPPP1 w 0"

func TestFEN(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		require.Equal(t, startFEN, FormatFEN(NewBoard()))

		b, err := ParseFEN(startFEN)
		require.NoError(t, err)
		require.Equal(t, NewBoard(), b)
	})

	t.Run("placement only defaults to white and ply zero", func(t *testing.T) {
		b, err := ParseFEN("8/8/3P4/8/8/4p3/8/8")

		require.NoError(t, err)
		require.Equal(t, White, b.ToMove())
		require.Equal(t, 0, b.Ply())
		require.Equal(t, squares(t, "D6"), b.Pieces(White))
		require.Equal(t, squares(t, "E3"), b.Pieces(Black))
	})

	t.Run("side and ply", func(t *testing.T) {
		b, err := ParseFEN("8/8/3P4/8/8/4p3/8/8 b 17")

		require.NoError(t, err)
		require.Equal(t, Black, b.ToMove())
		require.Equal(t, 17, b.Ply())
	})

	t.Run("round trips random positions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for _, b := range randomPlayout(rng, NewBoard(), 60) {
			got, err := ParseFEN(FormatFEN(b))

			require.NoError(t, err)
			require.Equal(t, b, got)
		}
	})

	invalid := []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/8/8",
		"9/8/8/8/8/8/8/8",
		"7/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/PPPPPPPPP",
		"8/8/8/8/8/8/8/7k",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8 w -3",
		"8/8/8/8/8/8/8/8 w 1 extra",
	}
	for _, fen := range invalid {
		t.Run("rejects "+fen, func(t *testing.T) {
			_, err := ParseFEN(fen)

			require.ErrorIs(t, err, ErrFEN)
		})
	}
}
