package cmd

import (
	"context"
	"fmt"
	"io"
	"rock/engine"
	"rock/experiments/metrics"
	"rock/game"
	"rock/searcher/agent"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

const SPIN = 14

func Play(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between you and the engine in the terminal.

			Enter moves as two squares, e.g. "B1 B3", "b1-b3" or "B1 -> B3".
			The difficulty ranges from 0 (random moves) to 10 (best moves);
			higher levels search deeper and get slow quickly.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := a.cfg.Rules()
			if err != nil {
				return err
			}
			human, err := a.cfg.Color()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
			computer := agent.NewSoftmaxAgent(a.cfg.Play.Difficulty, rng, a.cfg.SearchOptions()...)
			agents := [2]agent.Agent{}
			agents[human] = engine.NewHuman(cmd.InOrStdin(), out)
			agents[human.Other()] = thinking{Agent: computer, out: out}

			start := rules.StartingBoard()
			fmt.Fprintf(out, "You play %s at difficulty %d.\n\n%s\n", human, a.cfg.Play.Difficulty, start)
			e := engine.LocalEngine(agents, engine.WithBoard(start), engine.WithObserver(func(u engine.Update) {
				fmt.Fprintf(out, "%s plays %s\n\n%s\n", u.Player, u.Move, u.Board)
			}))

			outcome, _, _, err := e.Run(cmd.Context())
			if err != nil {
				return err
			}
			switch winner, ok := outcome.Winner(); {
			case !ok:
				fmt.Fprintf(out, "Game over: %s.\n", outcome)
			case winner == human:
				fmt.Fprintln(out, "Game over: you win!")
			default:
				fmt.Fprintln(out, "Game over: the engine wins.")
			}
			return nil
		},
	}

	cmd.Flags().Int("difficulty", 0, "Engine strength from 0 to 10")
	cmd.Flags().String("color", "", "Your colour: white or black")
	cobra.CheckErr(a.v.BindPFlag("play.difficulty", cmd.Flags().Lookup("difficulty")))
	cobra.CheckErr(a.v.BindPFlag("play.color", cmd.Flags().Lookup("color")))
	return cmd
}

// thinking shows a spinner while the wrapped agent searches.
type thinking struct {
	agent.Agent
	out io.Writer
}

func (t thinking) FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error) {
	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(t.out))
	s.Suffix = " thinking..."
	s.Start()
	defer s.Stop()
	return t.Agent.FindMove(ctx, b)
}
