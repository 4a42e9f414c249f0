package cmd

import (
	"fmt"
	"rock/game"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Perft(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "perft [depth]",
		Short: "Count move sequences from the starting position",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`perft counts every sequence of moves up to the given depth (5 by
			default) from the starting position of the configured variant,
			printing the count and time for each depth. Moves follow the
			movement rules only: positions where the game is already decided
			are expanded like any other.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth := 5
			if len(args) == 1 {
				var err error
				depth, err = strconv.Atoi(args[0])
				if err != nil || depth < 0 {
					return fmt.Errorf("depth must be a non-negative integer, got %q", args[0])
				}
			}
			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}

			b := rules.StartingBoard()
			for d := 0; d <= depth; d++ {
				start := time.Now()
				count := game.CountMoves(b, d)
				fmt.Fprintf(cmd.OutOrStdout(), "depth %d: %d (%s)\n", d, count, time.Since(start).Round(time.Microsecond))
			}
			return nil
		},
	}
}
