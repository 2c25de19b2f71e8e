// Package game implements the Bagh-Chal rules: the board graph, move
// generation, move application and terminal detection.
package game

import "errors"

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game is over")
	ErrInvalidNotation = errors.New("invalid notation")
)

type StateHash uint64

// Evaluate scores a position that is not terminal. Higher values favor Goat,
// lower values favor Tiger. Values share the scale of the terminal scores
// +Inf (goat win) and -Inf (tiger win).
type Evaluate func(*Game) float64
