package agent

import (
	"baghchal/experiments/metrics"
	"baghchal/game"
)

type Agent interface {
	// FindMove returns the move to play from g and performance metrics (if collected) from the search
	FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error)
	Name() string
}
