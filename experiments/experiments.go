package experiments

import (
	"fmt"

	"baghchal/engine"
	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/meta"
	"baghchal/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Experiment names accepted by configuration.
const (
	CutoffExperiment     = "cutoff"
	HeuristicExperiment  = "heuristic"
	ThroughputExperiment = "throughput"
)

// Options shared by every experiment run.
type Options struct {
	Dir      string // Root directory for the CSV output
	NumGames int    // Per match up
	MaxTurns int
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "results"
	}
	if o.NumGames <= 0 {
		o.NumGames = meta.NUM_GAMES
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = meta.MAX_TURNS
	}
	return o
}

var cutoffConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: agent.KindAlphaBeta, Cutoff: 0, Heuristic: meta.HEURISTIC},
	{ID: 2, Kind: agent.KindAlphaBeta, Cutoff: 1, Heuristic: meta.HEURISTIC},
	{ID: 3, Kind: agent.KindAlphaBeta, Cutoff: 2, Heuristic: meta.HEURISTIC},
	{ID: 4, Kind: agent.KindAlphaBeta, Cutoff: 3, Heuristic: meta.HEURISTIC},
}

// RunCutoffExperiment plays every cutoff against every other one, each side
// taking both roles, and returns the directory holding the results.
func RunCutoffExperiment(options Options) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, goat := range cutoffConfigs {
		for _, tiger := range cutoffConfigs {
			if goat.ID != tiger.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{goat, tiger})
			}
		}
	}

	return runExperiment(CutoffExperiment, cutoffConfigs, matchUps, options)
}

// RunHeuristicExperiment pairs the mobility heuristic against random play on
// both sides.
func RunHeuristicExperiment(options Options) (string, error) {
	searching := metrics.AgentConfig{ID: 1, Kind: agent.KindAlphaBeta, Cutoff: meta.CUTOFF - 1, Heuristic: meta.HEURISTIC}
	baseline := metrics.AgentConfig{ID: 0, Kind: agent.KindRandom, Cutoff: -1, Seed: 1}
	matchUps := [][]metrics.AgentConfig{
		{searching, baseline},
		{baseline, searching},
	}

	return runExperiment(HeuristicExperiment, []metrics.AgentConfig{baseline, searching}, matchUps, options)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, options Options) (string, error) {
	options = options.withDefaults()

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		goatConfig := matchup[0]
		tigerConfig := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between goat=%+v and tiger=%+v...", mi+1, len(matchUps), goatConfig, tigerConfig)

		for i := 0; i < options.NumGames; i++ {
			winner, gameMetric, moveMetrics, err := runGame(goatConfig, tigerConfig, i, options.MaxTurns)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Index:      count,
				Agent1:     goatConfig.ID,
				Agent2:     tigerConfig.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(options.Dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %s experiment in %s", name, writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game. Game i of a match up starts after i random
// opening plies, since two search agents replay the same game from the same
// position.
func runGame(goatConfig, tigerConfig metrics.AgentConfig, index, maxTurns int) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	goatConfig.Seed += uint64(index)
	tigerConfig.Seed += uint64(index) + 1<<32

	goat, err := agent.FromConfig(goatConfig)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}
	tiger, err := agent.FromConfig(tigerConfig)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	start, err := opening(index, uint64(index))
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	return engine.NewLocalEngine(goat, tiger, engine.WithGame(start), engine.WithMaxTurns(maxTurns)).Run()
}

func opening(plies int, seed uint64) (*game.Game, error) {
	g := game.NewGame()
	random := agent.NewRandomAgent(seed)
	for i := 0; i < plies && !g.IsGameOver(); i++ {
		move, _, err := random.FindMove(g)
		if err != nil {
			return nil, err
		}
		g.Ply(move)
	}
	return g, nil
}
