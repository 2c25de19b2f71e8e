package agent

import (
	"fmt"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
// Agents built with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%v has no move at %v: %w", g.Player(), g, searcher.ErrNoMoves)
	}
	return moves[a.rand.Intn(len(moves))], metrics.SearchMetric{}, nil
}

func (a *randomAgent) Name() string {
	return KindRandom
}
