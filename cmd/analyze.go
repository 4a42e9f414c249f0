package cmd

import (
	"fmt"
	"rock/game"
	"rock/searcher"
	"strings"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Analyze(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [fen]",
		Short: "Find the best move of a position",
		Args:  cobra.ArbitraryArgs,
		Long: heredoc.Doc(`analyze searches the position given in FEN, or the starting
			position of the configured variant when none is given, and prints
			the best move with the line the engine expects after each
			completed depth.

			A FEN lists the ranks from 8 down to 1 separated by "/", with P
			for white, p for black and digits for runs of empty squares,
			optionally followed by the side to move (w or b) and the ply.`),
		Example: heredoc.Doc(`
			rock analyze "1PPPPPP1/p6p/p6p/p6p/p6p/p6p/p6p/1PPPPPP1 w 0"
			rock analyze --moves --depth 3`),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}
			b := rules.StartingBoard()
			if len(args) > 0 {
				b, err = game.ParseFENWithRules(rules, strings.Join(args, " "))
				if err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s to move\n\n", b, b.ToMove())

			options := append(a.cfg.SearchOptions(), searcher.WithMetrics())
			if moves, _ := cmd.Flags().GetBool("moves"); moves {
				analyses, err := searcher.New(options...).AnalyzeMoves(cmd.Context(), b)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "move\tscore\tdepth\tvariation")
				for _, m := range analyses {
					fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", m.Move, m.Score, m.Depth, variation(m.Variation))
				}
				return w.Flush()
			}

			options = append(options, searcher.WithReport(func(r searcher.Analysis) {
				fmt.Fprintf(out, "depth %2d  score %6d  nodes %9d  %s\n", r.Depth, r.Score, r.Metric.Nodes, variation(r.Variation))
			}))
			analysis, err := searcher.New(options...).Analyze(cmd.Context(), b)
			if err != nil {
				return err
			}
			next, err := b.Apply(analysis.BestMove)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nbest move %s (score %d, depth %d, %s)\n", analysis.BestMove, analysis.Score, analysis.Depth, analysis.Metric.Duration)
			fmt.Fprintf(out, "resulting position %s\n", game.FormatFEN(next))
			return nil
		},
	}

	cmd.Flags().Bool("moves", false, "Analyze every legal move separately")
	return cmd
}

func variation(moves []game.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
