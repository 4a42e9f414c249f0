package experiments

import (
	"context"
	"os"
	"path/filepath"
	"rock/experiments/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGames(t *testing.T) {
	t.Run("writes records of every game", func(t *testing.T) {
		dir := t.TempDir()
		configs := []metrics.AgentConfig{
			{ID: 0, Goroutines: 1, Depth: 1},
			{ID: 1, Goroutines: 2, Depth: 1, Evaluate: "centralization"},
		}

		err := runGames(context.Background(), dir, "smoke", 2, configs, [][]metrics.AgentConfig{configs})

		require.NoError(t, err)
		runs, err := os.ReadDir(filepath.Join(dir, "smoke"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			info, err := os.Stat(filepath.Join(dir, "smoke", runs[0].Name(), name))
			require.NoError(t, err)
			require.Positive(t, info.Size())
		}
	})

	t.Run("unknown evaluation", func(t *testing.T) {
		configs := []metrics.AgentConfig{{ID: 0, Depth: 1, Evaluate: "material"}}

		err := runGames(context.Background(), t.TempDir(), "broken", 1, configs, [][]metrics.AgentConfig{{configs[0], configs[0]}})

		require.ErrorContains(t, err, "unknown evaluation")
	})

	t.Run("unknown experiment", func(t *testing.T) {
		require.Error(t, Run(context.Background(), "throughput"))
	})

	t.Run("openings are reproducible", func(t *testing.T) {
		require.Equal(t, randomOpening(9, OpeningPlies), randomOpening(9, OpeningPlies))
		require.Equal(t, OpeningPlies, randomOpening(9, OpeningPlies).Ply())
	})
}
