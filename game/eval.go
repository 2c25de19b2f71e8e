package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	lockedTigerWeight   = 50
	capturedGoatWeight  = 10
	tigerCapturePenalty = 50
	tigerStepPenalty    = 5
)

// EvaluateMobility rewards goats on the board and locked tigers, and penalizes
// captured goats and every move Tiger could make from this position:
//
//	(placed - captured) + 50*locked - 10*captured - mobility
//
// where mobility counts 50 per available capture and 5 per step, with Tiger
// to move whatever the actual turn is.
func EvaluateMobility(g *Game) float64 {
	goats := g.State.GoatsOnBoard()
	locked := g.LockedTigers() * lockedTigerWeight
	captured := g.State.GoatsCaptured * capturedGoatWeight

	return float64(goats + locked - captured - tigerMobility(g))
}

func tigerMobility(g *Game) int {
	// The override happens on a copy of the counters, g is not touched.
	state := g.State
	state.Player = TigerPlayer

	score := 0
	for _, move := range g.Board.Moves(state) {
		if move.IsCapture() {
			score += tigerCapturePenalty
		} else {
			score += tigerStepPenalty
		}
	}
	return score
}

// EvaluateGoatWins scores every position as a goat win.
func EvaluateGoatWins(*Game) float64 {
	return math.Inf(1)
}

// EvaluateTigerWins scores every position as a tiger win.
func EvaluateTigerWins(*Game) float64 {
	return math.Inf(-1)
}

// Evaluators maps configuration names to evaluation functions.
var Evaluators = map[string]Evaluate{
	"mobility": EvaluateMobility,
	"goat":     EvaluateGoatWins,
	"tiger":    EvaluateTigerWins,
}

// EvaluatorByName looks up an evaluation function registered in Evaluators.
func EvaluatorByName(name string) (Evaluate, error) {
	fn, ok := Evaluators[name]
	if !ok {
		names := maps.Keys(Evaluators)
		slices.Sort(names)
		return nil, fmt.Errorf("unknown heuristic %q, expected one of %v", name, names)
	}
	return fn, nil
}
