package experiments

import (
	"encoding/csv"
	"ggp/experiments/metrics"
	"ggp/game/tictactoe"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExperimentRun(t *testing.T) {
	t.Run("recording every game", func(t *testing.T) {
		baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom}
		fixedDepth := metrics.AgentConfig{ID: 1, Kind: KindMinimax, Strategy: "fixed-depth-lookahead", MaxDepth: 2}
		x := &Experiment{
			Name:       "test",
			OutputDir:  t.TempDir(),
			Rules:      tictactoe.NewRules(),
			Configs:    []metrics.AgentConfig{baseline, fixedDepth},
			MatchUps:   [][]metrics.AgentConfig{{fixedDepth, baseline}, {baseline, fixedDepth}},
			NumGames:   2,
			Goroutines: 2,
			Seed:       1,
		}

		dir, err := x.Run()

		require.NoError(t, err)
		require.Len(t, readCSV(t, filepath.Join(dir, "agent_configs.csv")), 3)
		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 5)
		require.Equal(t, []string{"1", "1", "0"}, games[1][:3])
		require.Equal(t, []string{"3", "0", "1"}, games[3][:3])
		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 4*5, "Tic-tac-toe needs at least five turns of two moves")
	})

	t.Run("match-ups must cover every role", func(t *testing.T) {
		x := &Experiment{
			Name:      "test",
			OutputDir: t.TempDir(),
			Rules:     tictactoe.NewRules(),
			MatchUps:  [][]metrics.AgentConfig{{{Kind: KindRandom}}},
			NumGames:  1,
		}

		_, err := x.Run()

		require.Error(t, err)
	})

	t.Run("unknown agent kinds fail the experiment", func(t *testing.T) {
		x := &Experiment{
			Name:      "test",
			OutputDir: t.TempDir(),
			Rules:     tictactoe.NewRules(),
			MatchUps:  [][]metrics.AgentConfig{{{Kind: "oracle"}, {Kind: KindRandom}}},
			NumGames:  1,
		}

		_, err := x.Run()

		require.ErrorContains(t, err, "unknown agent kind")
	})
}

func TestStrategyMatchUps(t *testing.T) {
	configs, matchUps := StrategyMatchUps(time.Second, 3)

	require.Len(t, configs, 3)
	require.Len(t, matchUps, 6)
	for _, matchUp := range matchUps {
		require.Len(t, matchUp, 2)
		for _, config := range matchUp {
			_, err := NewAgent(config, tictactoe.NewRules(), 0, 1)
			require.NoError(t, err)
		}
	}
}
