package config

import (
	"os"
	"path/filepath"
	"testing"

	"baghchal/game"
	"baghchal/meta"
	"baghchal/searcher/agent"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Setup("")
		require.NoError(t, err)

		require.Equal(t, ModePlay, cfg.Mode)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)
		require.Equal(t, agent.KindHuman, cfg.Goat.Kind)
		require.Equal(t, agent.KindAlphaBeta, cfg.Tiger.Kind)
		require.Equal(t, meta.CUTOFF, cfg.Tiger.Cutoff)
		require.Equal(t, "mobility", cfg.Tiger.Heuristic)
		require.Equal(t, meta.NUM_GAMES, cfg.Experiment.NumGames)
		require.Equal(t, game.NewGame(), cfg.StartingGame())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "baghchal.yaml", `
mode: match
max_turns: 40
position: "T...T/...../..G../...../T...T/T/1/0"
goat:
  kind: random
  seed: 9
tiger:
  cutoff: 2
  heuristic: goat
experiment:
  name: throughput
  num_games: 3
`)
		cfg, err := Setup(path)
		require.NoError(t, err)

		require.Equal(t, ModeMatch, cfg.Mode)
		require.Equal(t, 40, cfg.MaxTurns)
		require.Equal(t, agent.KindRandom, cfg.Goat.Kind)
		require.Equal(t, uint64(9), cfg.Goat.Seed)
		require.Equal(t, agent.KindAlphaBeta, cfg.Tiger.Kind)
		require.Equal(t, 2, cfg.Tiger.Cutoff)
		require.Equal(t, "goat", cfg.Tiger.Heuristic)
		require.Equal(t, "throughput", cfg.Experiment.Name)
		require.Equal(t, 3, cfg.Experiment.NumGames)
		require.Equal(t, "results", cfg.Experiment.Dir)

		g := cfg.StartingGame()
		require.Equal(t, game.TigerPlayer, g.Player())
		require.Equal(t, 1, g.State.GoatsPlaced)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "baghchal.json", `{"tiger": {"cutoff": 2}}`)
		t.Setenv("BAGHCHAL_TIGER_CUTOFF", "5")
		t.Setenv("BAGHCHAL_MODE", "experiment")

		cfg, err := Setup(path)
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Tiger.Cutoff)
		require.Equal(t, ModeExperiment, cfg.Mode)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown agent kind", func(t *testing.T) {
		t.Setenv("BAGHCHAL_GOAT_KIND", "oracle")
		_, err := Setup("")
		require.ErrorIs(t, err, agent.ErrUnknownKind)
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("BAGHCHAL_MODE", "tournament")
		_, err := Setup("")
		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("unknown experiment", func(t *testing.T) {
		t.Setenv("BAGHCHAL_EXPERIMENT_NAME", "openings")
		_, err := Setup("")
		require.ErrorIs(t, err, ErrUnknownExperiment)
	})

	t.Run("invalid position", func(t *testing.T) {
		for _, position := range []string{
			"T...T/T/1/0",
			"...../...../...../...../...../T/0/0",
			"T...T/...../...../...../T...T/T/1/0",
		} {
			t.Setenv("BAGHCHAL_POSITION", position)
			_, err := Setup("")
			require.ErrorIs(t, err, game.ErrInvalidNotation, "position %q", position)
		}
	})
}

func TestAgentConfigMetrics(t *testing.T) {
	a := AgentConfig{Kind: agent.KindRandom, Cutoff: -1, Seed: 3}
	got := a.Metrics(7)
	require.Equal(t, 7, got.ID)
	require.Equal(t, agent.KindRandom, got.Kind)
	require.Equal(t, uint64(3), got.Seed)
}
