package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
board:
- start position: layout, white to move, ply 0, perft 1 / 36 / 1244
- destinations: exact line distance, jumping own pieces, blocked by enemies, captures
- apply: relocates, captures, alternates turn, leaves receiver untouched, rejects illegal moves
- outcome: single group wins, both groups draw, no moves draw, ply cap draw
- properties over random playouts: IsLegal agrees with LegalMoves, terminal boards have no moves
*/

func square(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	require.NoError(t, err)
	return sq
}

func squares(t *testing.T, names ...string) Bitboard {
	t.Helper()
	var b Bitboard
	for _, name := range names {
		b = b.With(square(t, name))
	}
	return b
}

func move(t *testing.T, text string) Move {
	t.Helper()
	m, err := ParseMove(text)
	require.NoError(t, err)
	return m
}

func board(t *testing.T, white, black []string, toMove Player) Board {
	t.Helper()
	b, err := NewBoardFrom(standard, squares(t, white...), squares(t, black...), toMove, 0)
	require.NoError(t, err)
	return b
}

// randomPlayout returns the positions of a random game from the start.
func randomPlayout(rng *rand.Rand, b Board, plies int) []Board {
	positions := []Board{b}
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		next, err := b.Apply(moves[rng.Intn(len(moves))])
		if err != nil {
			panic(err)
		}
		b = next
		positions = append(positions, b)
	}
	return positions
}

func TestStartingBoard(t *testing.T) {
	t.Run("standard layout", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t,
			squares(t, "B1", "C1", "D1", "E1", "F1", "G1", "B8", "C8", "D8", "E8", "F8", "G8"),
			b.Pieces(White), "White should start on the first and last ranks")
		require.Equal(t,
			squares(t, "A2", "A3", "A4", "A5", "A6", "A7", "H2", "H3", "H4", "H5", "H6", "H7"),
			b.Pieces(Black), "Black should start on the outer files")
		require.Equal(t, White, b.ToMove(), "White should move first")
		require.Equal(t, 0, b.Ply())
		require.Equal(t, Ongoing, GameOutcome(b, White))
		require.Equal(t, NewBoard(), b, "Starting board should be deterministic")
	})

	t.Run("scrambled eggs layout", func(t *testing.T) {
		b := NewScrambledEggsRules().StartingBoard()

		require.Equal(t, 12, b.Pieces(White).Count())
		require.Equal(t, 12, b.Pieces(Black).Count())
		require.Zero(t, b.Pieces(White)&b.Pieces(Black))
		require.Equal(t, ScrambledEggsName, b.Rules().Name())
		require.NotEmpty(t, b.LegalMoves())
	})

	t.Run("zero board uses standard rules", func(t *testing.T) {
		var b Board

		require.Equal(t, StandardName, b.Rules().Name())
		require.Empty(t, b.LegalMoves(), "Empty board should have no moves")
		require.Equal(t, Draw, b.Outcome(), "A side without moves should draw")
	})
}

func TestCountMoves(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, uint64(1), CountMoves(b, 0))
		require.Equal(t, uint64(36), CountMoves(b, 1))
		require.Equal(t, uint64(1244), CountMoves(b, 2))
	})

	t.Run("two lone pieces", func(t *testing.T) {
		b := board(t, []string{"D6"}, []string{"E3"}, White)
		require.Equal(t, Draw, b.Outcome(), "Both lone pieces are connected")

		require.Empty(t, b.LegalMoves())
		require.Equal(t, uint64(8), CountMoves(b, 1), "Decided positions should still be counted")
		require.Equal(t, uint64(64), CountMoves(b, 2))
	})

	t.Run("start position at depth 5", func(t *testing.T) {
		if testing.Short() {
			t.Skip("deep perft")
		}
		require.Equal(t, uint64(55_963_132), CountMoves(NewBoard(), 5))
	})
}

func TestDestinations(t *testing.T) {
	t.Run("lone piece moves one square in every direction", func(t *testing.T) {
		b := board(t, []string{"D6"}, []string{"E3"}, White)

		require.Equal(t,
			squares(t, "C7", "D7", "E7", "C6", "E6", "C5", "D5", "E5"),
			b.Destinations(square(t, "D6")))
	})

	t.Run("distance counts pieces of both colours on the whole line", func(t *testing.T) {
		b := board(t, []string{"A1", "C1"}, []string{"H1", "H8"}, White)

		require.True(t, b.Destinations(square(t, "A1")).Has(square(t, "D1")),
			"Three pieces on rank 1 should move A1 three squares")
		require.False(t, b.Destinations(square(t, "A1")).Has(square(t, "B1")))
	})

	t.Run("own pieces can be jumped", func(t *testing.T) {
		b := board(t, []string{"A1", "B1"}, []string{"H8", "G8"}, White)

		require.True(t, b.Destinations(square(t, "A1")).Has(square(t, "C1")))
	})

	t.Run("enemy pieces block", func(t *testing.T) {
		b := board(t, []string{"A1"}, []string{"B1", "H8"}, White)

		require.False(t, b.Destinations(square(t, "A1")).Has(square(t, "C1")))
	})

	t.Run("enemy on destination is capturable, own piece is not", func(t *testing.T) {
		capture := board(t, []string{"A1"}, []string{"C1", "H8"}, White)
		blocked := board(t, []string{"A1", "C1"}, []string{"H8"}, White)

		require.True(t, capture.Destinations(square(t, "A1")).Has(square(t, "C1")))
		require.False(t, blocked.Destinations(square(t, "A1")).Has(square(t, "C1")))
	})

	t.Run("moves off the board are not generated", func(t *testing.T) {
		b := board(t, []string{"A1", "A2", "A3"}, []string{"A8", "H8"}, White)

		require.Equal(t, squares(t, "A7", "B2", "B3", "B4"), b.Destinations(square(t, "A3")),
			"A3 should only reach squares on the board")
		require.Zero(t, b.Destinations(square(t, "A8")), "Black pieces have no destinations on white's turn")
	})
}

func TestApply(t *testing.T) {
	t.Run("relocates the piece and alternates the turn", func(t *testing.T) {
		b := NewBoard()
		m := move(t, "B1 B3")

		next, err := b.Apply(m)

		require.NoError(t, err)
		require.True(t, next.Pieces(White).Has(m.To))
		require.False(t, next.Pieces(White).Has(m.From))
		require.Equal(t, Black, next.ToMove())
		require.Equal(t, 1, next.Ply())
		require.Equal(t, NewBoard(), b, "Receiver should not change")
	})

	t.Run("captures an enemy on the destination", func(t *testing.T) {
		b := board(t, []string{"A1", "A8"}, []string{"C1", "H8"}, White)
		require.Equal(t, Ongoing, b.Outcome())

		next, err := b.Apply(move(t, "A1 C1"))

		require.NoError(t, err)
		require.Equal(t, squares(t, "H8"), next.Pieces(Black), "The captured piece should leave the board")
		require.Equal(t, squares(t, "A8", "C1"), next.Pieces(White))
		require.Equal(t, 4, b.Occupied().Count(), "Receiver should not change")
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		b := NewBoard()

		_, err := b.Apply(move(t, "B1 B2"))
		require.ErrorIs(t, err, ErrIllegalMove)

		_, err = b.Apply(move(t, "A2 C2"))
		require.ErrorIs(t, err, ErrIllegalMove, "Black may not move on white's turn")
	})

	t.Run("rejects moves on a decided board", func(t *testing.T) {
		b := board(t, []string{"A1", "B2"}, []string{"H8", "F6"}, White)

		require.Equal(t, WhiteWins, b.Outcome())
		require.Empty(t, b.LegalMoves())
		_, err := b.Apply(move(t, "A1 A2"))
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestGameOutcome(t *testing.T) {
	tests := []struct {
		name   string
		white  []string
		black  []string
		toMove Player
		want   Outcome
	}{
		{"ongoing start", []string{"B1", "G8"}, []string{"A2", "H7"}, White, Ongoing},
		{"white single group", []string{"D4", "E5", "F6"}, []string{"A1", "H8"}, Black, WhiteWins},
		{"black single group", []string{"A1", "H8"}, []string{"D4", "D5"}, White, BlackWins},
		{"a single piece is a group", []string{"A1", "H8"}, []string{"D4"}, White, BlackWins},
		{"both groups at once", []string{"A1", "B1"}, []string{"H8", "G8"}, White, Draw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board(t, tt.white, tt.black, tt.toMove)

			require.Equal(t, tt.want, GameOutcome(b, tt.toMove))
		})
	}

	t.Run("no moves is a draw", func(t *testing.T) {
		b := board(t,
			[]string{"A1", "H8"},
			[]string{"B1", "A2", "B2", "G8", "H7", "G7"},
			White)

		require.False(t, b.HasMoves(White), "Both white pieces should be boxed in")
		require.Equal(t, Draw, GameOutcome(b, White))
		require.Equal(t, Ongoing, GameOutcome(b, Black), "Black can still move")
	})

	t.Run("ply cap", func(t *testing.T) {
		rules := NewStandardRules(WithMaxPlies(2))
		b := rules.StartingBoard()
		for _, text := range []string{"B1 B3", "A2 C2"} {
			var err error
			b, err = b.Apply(move(t, text))
			require.NoError(t, err)
		}

		require.Equal(t, Draw, b.Outcome())
		require.Empty(t, b.LegalMoves())
	})

	t.Run("win helpers", func(t *testing.T) {
		require.Equal(t, WhiteWins, Win(White))
		require.Equal(t, BlackWins, Win(Black))
		winner, ok := BlackWins.Winner()
		require.True(t, ok)
		require.Equal(t, Black, winner)
		_, ok = Draw.Winner()
		require.False(t, ok)
	})
}

func TestLegalityProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var positions []Board
	for i := 0; i < 4; i++ {
		positions = append(positions, randomPlayout(rng, NewBoard(), 40)...)
	}

	for _, b := range positions {
		for _, p := range []Player{White, Black} {
			moves := LegalMoves(b, p)
			if GameOutcome(b, p) != Ongoing {
				require.Empty(t, moves, "Decided boards should have no moves")
			}
			if p != b.ToMove() {
				require.Empty(t, moves, "Only the side to move has moves")
			}
			require.True(t, slices.IsSortedFunc(moves, func(a, b Move) int {
				if a.From != b.From {
					return int(a.From) - int(b.From)
				}
				return int(a.To) - int(b.To)
			}), "Moves should be ordered by origin then destination")
			for from := Square(0); from.Valid(); from++ {
				for to := Square(0); to.Valid(); to++ {
					m := Move{From: from, To: to}
					require.Equal(t, slices.Contains(moves, m), IsLegal(m, b, p), "IsLegal should agree with LegalMoves for %s", m)
				}
			}
		}
		require.Zero(t, b.Pieces(White)&b.Pieces(Black), "At most one piece per square")
	}
}
