package agent

import (
	"fmt"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"
)

type alphaBetaAgent struct {
	searcher *searcher.Searcher
}

// NewAlphaBetaAgent returns an agent that plays the best move of a fresh
// alpha-beta search on every turn.
func NewAlphaBetaAgent(options ...searcher.Option) Agent {
	return alphaBetaAgent{searcher: searcher.NewSearcher(options...)}
}

func (a alphaBetaAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error) {
	root, metric := a.searcher.AlphaBeta(g)
	move, err := searcher.BestMove(root)
	if err != nil {
		return game.Move{}, metric, fmt.Errorf("%v has no move at %v: %w", g.Player(), g, err)
	}
	return move, metric, nil
}

func (a alphaBetaAgent) Name() string {
	return KindAlphaBeta
}
