package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGame(t *testing.T) {
	first, second := Move{From: 1, To: 17}, Move{From: 8, To: 10}

	t.Run("make, undo and redo", func(t *testing.T) {
		g := NewGame(NewBoard())

		require.True(t, g.MakeMove(first), "B1 -> B3 should be legal")
		require.True(t, g.MakeMove(second), "A2 -> C2 should be legal")
		require.Equal(t, []Move{first, second}, g.Moves())
		require.Equal(t, 2, g.Current().Ply())

		m, ok := g.Undo()
		require.True(t, ok)
		require.Equal(t, second, m)
		require.Equal(t, Black, g.Current().ToMove())

		m, ok = g.Redo()
		require.True(t, ok)
		require.Equal(t, second, m)
		_, ok = g.Redo()
		require.False(t, ok, "Nothing left to redo")
	})

	t.Run("illegal moves leave the game unchanged", func(t *testing.T) {
		g := NewGame(NewBoard())

		require.False(t, g.MakeMove(second), "Black may not move first")
		require.Empty(t, g.Moves())
		require.Equal(t, NewBoard(), g.Current())
	})

	t.Run("new move after undo drops the redo history", func(t *testing.T) {
		g := NewGame(NewBoard())
		require.True(t, g.MakeMove(first))
		g.Undo()

		require.True(t, g.MakeMove(Move{From: 2, To: 18}))
		require.False(t, g.CanRedo())
		require.Len(t, g.Moves(), 1)
	})

	t.Run("reset", func(t *testing.T) {
		g := NewGame(NewBoard())
		require.True(t, g.MakeMove(first))

		g.Reset()

		require.Equal(t, NewBoard(), g.Current())
		require.Empty(t, g.Moves())
		require.Equal(t, Ongoing, g.Status())
		_, ok := g.LastMove()
		require.False(t, ok)
	})
}
