package cmd

import (
	"rock/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is shared by all commands; cfg is loaded before any of them runs.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func Root() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:   "rock",
		Short: "Play and analyze Lines of Action",
		Long: heredoc.Doc(`rock is a Lines of Action engine. Each side tries to join all
			of its pieces into a single connected group; a piece moves as
			many squares as there are pieces on the line it moves along.

			Settings are read from a YAML file (by default the rock/config.yaml
			file in the XDG config directory), from ROCK_* environment
			variables such as ROCK_SEARCH_DEPTH, and from flags.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, log every search iteration and move.
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			a.cfg, err = config.Setup(a.v, path)
			return err
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.StringP("config", "c", "", "Configuration file")
	flags.IntP("depth", "d", 0, "Maximum search depth")
	flags.Duration("duration", 0, "Time budget per search, e.g. 2s")
	flags.Int64("nodes", 0, "Node budget per search")
	flags.IntP("goroutines", "g", 0, "Goroutines per search")
	flags.String("evaluation", "", "Evaluation function: standard, centralization, connectivity or concentration")
	flags.String("variant", "", "Rules variant: standard or scrambled-eggs")
	flags.Int("max-plies", 0, "Declare a draw after this many plies, 0 for no limit")
	for key, flag := range map[string]string{
		"search.depth":      "depth",
		"search.duration":   "duration",
		"search.nodes":      "nodes",
		"search.goroutines": "goroutines",
		"search.evaluation": "evaluation",
		"game.variant":      "variant",
		"game.max_plies":    "max-plies",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	// Register the various commands.
	root.AddCommand(Play(a))
	root.AddCommand(Analyze(a))
	root.AddCommand(Perft(a))
	root.AddCommand(Experiment(a))

	return root
}
