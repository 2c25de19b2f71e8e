package agent

import (
	"errors"
	"fmt"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"
)

var ErrUnknownKind = errors.New("unknown agent kind")

const (
	KindAlphaBeta = "alphabeta"
	KindRandom    = "random"
	KindHuman     = "human"
)

// FromConfig builds a non-interactive agent. Human agents need a terminal and
// are built with NewHumanAgent instead.
func FromConfig(config metrics.AgentConfig) (Agent, error) {
	switch config.Kind {
	case KindAlphaBeta:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Cutoff >= 0 {
			options = append(options, searcher.WithCutoff(config.Cutoff))
		}
		if config.Heuristic != "" {
			evaluate, err := game.EvaluatorByName(config.Heuristic)
			if err != nil {
				return nil, fmt.Errorf("agent %d: %w", config.ID, err)
			}
			options = append(options, searcher.WithEvaluationFn(evaluate))
		}
		return NewAlphaBetaAgent(options...), nil
	case KindRandom:
		return NewRandomAgent(config.Seed), nil
	default:
		return nil, fmt.Errorf("agent %d of kind %q: %w", config.ID, config.Kind, ErrUnknownKind)
	}
}
