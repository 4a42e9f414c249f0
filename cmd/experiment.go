package cmd

import (
	"fmt"
	"rock/experiments"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Experiment(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       fmt.Sprintf("experiment { %s }", strings.Join(experiments.Names, " | ")),
		Short:     "Run an agent-versus-agent experiment",
		Args:      cobra.ExactArgs(1),
		ValidArgs: experiments.Names,
		Long: heredoc.Doc(`experiment plays a series of engine-versus-engine games and
			stores the agent configurations, game records and per-move
			search metrics as CSV files under ./experiments.

			depth            pairs search depths 1 to 4 against depth 1
			parallelization  pairs 1 to 8 goroutines against one under a time budget
			evaluation       pairs each single heuristic against the standard one`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return experiments.Run(cmd.Context(), args[0])
		},
	}
}
