package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"baghchal/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRunExperiment(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "alphabeta", Cutoff: 0, Heuristic: "mobility"},
		{ID: 2, Kind: "random", Cutoff: -1, Seed: 5},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}, {configs[1], configs[0]}}

	dir, err := runExperiment("test", configs, matchUps, Options{Dir: t.TempDir(), NumGames: 2, MaxTurns: 30})
	require.NoError(t, err)

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 3)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 5)
	require.Equal(t, []string{"1", "2"}, games[1][2:4])
	require.Equal(t, []string{"2", "1"}, games[3][2:4])

	total := 0
	for _, row := range games[1:] {
		moves, err := strconv.Atoi(row[8])
		require.NoError(t, err)
		require.LessOrEqual(t, moves, 30)
		total += moves
	}

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, total+1)
}

func TestRunExperimentUnknownAgent(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1, Kind: "oracle"}}
	_, err := runExperiment("test", configs, [][]metrics.AgentConfig{{configs[0], configs[0]}}, Options{Dir: t.TempDir(), NumGames: 1})
	require.Error(t, err)
}

func TestOpening(t *testing.T) {
	a, err := opening(6, 3)
	require.NoError(t, err)
	b, err := opening(6, 3)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, 3, a.State.GoatsPlaced)
}

func TestRunThroughputExperiment(t *testing.T) {
	dir, err := RunThroughputExperiment(Options{Dir: t.TempDir(), NumGames: 3}, 1)
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 5)

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 1+2*2*3)
	for i := 1; i < len(moves); i += 2 {
		pruned, err := strconv.Atoi(moves[i][6])
		require.NoError(t, err)
		full, err := strconv.Atoi(moves[i+1][6])
		require.NoError(t, err)
		require.LessOrEqual(t, pruned, full)
		require.Equal(t, moves[i][3], moves[i+1][3])
	}
}
