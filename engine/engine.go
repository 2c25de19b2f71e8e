package engine

import (
	"baghchal/experiments/metrics"
	"baghchal/game"
)

type Engine interface {
	// Run plays a game till there's a winner, the side to move is stuck or the turn cap is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
