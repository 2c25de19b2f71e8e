package experiments

import (
	"fmt"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"
	"baghchal/searcher/agent"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment searches the same positions with and without
// pruning for every cutoff up to maxCutoff and records the work each search
// did. Positions come from random playouts of increasing length.
func RunThroughputExperiment(options Options, maxCutoff int) (string, error) {
	options = options.withDefaults()

	positions := make([]*game.Game, 0, options.NumGames)
	for i := 0; i < options.NumGames; i++ {
		g, err := opening(i*4, uint64(i))
		if err != nil {
			return "", err
		}
		if !g.IsGameOver() && len(g.LegalMoves()) > 0 {
			positions = append(positions, g)
		}
	}

	configs := []metrics.AgentConfig{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting throughput experiment on %d positions...", len(positions))

	for cutoff := 0; cutoff <= maxCutoff; cutoff++ {
		pruned := metrics.AgentConfig{ID: len(configs) + 1, Kind: agent.KindAlphaBeta, Cutoff: cutoff, Heuristic: "mobility"}
		full := metrics.AgentConfig{ID: len(configs) + 2, Kind: "minimax", Cutoff: cutoff, Heuristic: "mobility"}
		configs = append(configs, pruned, full)

		for step, g := range positions {
			prunedRoot, prunedMetric := searcher.NewSearcher(searcher.WithCutoff(cutoff), searcher.WithMetrics()).AlphaBeta(g)
			fullRoot, fullMetric := searcher.NewSearcher(searcher.WithCutoff(cutoff), searcher.WithMetrics()).Minimax(g)
			if prunedRoot.Value != fullRoot.Value {
				return "", fmt.Errorf("cutoff %d at %v: pruned value %v, full value %v", cutoff, g, prunedRoot.Value, fullRoot.Value)
			}

			move, err := searcher.BestMove(prunedRoot)
			if err != nil {
				return "", err
			}
			for _, record := range []struct {
				config metrics.AgentConfig
				metric metrics.SearchMetric
			}{{pruned, prunedMetric}, {full, fullMetric}} {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game: fmt.Sprintf("%s-%d", record.config.Kind, record.config.Cutoff),
					MoveMetric: metrics.MoveMetric{
						Step:         step + 1,
						Player:       g.Player().String(),
						Move:         move.String(),
						Hash:         uint64(g.Hash()),
						SearchMetric: record.metric,
					},
				})
			}
		}
		log.Info().Msgf("completed cutoff %d", cutoff)
	}

	writer, err := metrics.NewWriter(options.Dir, ThroughputExperiment)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored throughput experiment in %s", writer.Dir())

	return writer.Dir(), nil
}
