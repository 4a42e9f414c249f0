package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"rock/experiments/metrics"
	"rock/game"
)

// Human reads moves from a text stream, prompting again until a legal move
// is entered.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		fmt.Fprintf(h.out, "Enter a move for %s: ", b.ToMove())
		if !h.in.Scan() {
			err := h.in.Err()
			if err == nil {
				err = io.EOF
			}
			return game.Move{}, metrics.SearchMetric{}, err
		}

		m, err := game.ParseMove(h.in.Text())
		switch {
		case errors.Is(err, game.ErrParse):
			fmt.Fprintf(h.out, "Cannot read a move from %q, enter two squares such as %q\n", h.in.Text(), hint(b))
		case !game.IsLegal(m, b, b.ToMove()):
			fmt.Fprintf(h.out, "%s is not a legal move for %s\n", m, b.ToMove())
		default:
			return m, metrics.SearchMetric{}, nil
		}
	}
}

// hint returns a legal move of b to show as an example.
func hint(b game.Board) string {
	if moves := b.LegalMoves(); len(moves) > 0 {
		return moves[0].String()
	}
	return "A1 -> B2"
}
