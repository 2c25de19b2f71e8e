// Package searcher picks moves with a depth-limited alpha-beta search over
// game positions, scoring cutoff leaves with a pluggable evaluation function.
package searcher

import (
	"errors"
	"math"

	"baghchal/game"
)

// Unbounded disables the depth cutoff.
const Unbounded = -1

var ErrNoMoves = errors.New("no moves to choose from")

var (
	GoatWin  = math.Inf(1)
	TigerWin = math.Inf(-1)
)

func terminalValue(winner game.Player) float64 {
	if winner == game.GoatPlayer {
		return GoatWin
	}
	return TigerWin
}

// worstValue is the seed for a node: the value its own side least wants, so
// that the first real child result always replaces it.
func worstValue(player game.Player) float64 {
	if player == game.GoatPlayer {
		return TigerWin
	}
	return GoatWin
}
