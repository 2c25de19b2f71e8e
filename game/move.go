package game

import "fmt"

// Move is a single play. Kind selects which of the square fields are used:
//   - PlaceMove: To
//   - StepMove: From, To
//   - CaptureMove: From, Over, To
//
// Moves are plain values and can be compared with ==.
type Move struct {
	Kind MoveKind
	From Square
	Over Square
	To   Square
}

// Place puts a new goat on an empty square.
func Place(sq Square) Move {
	return Move{Kind: PlaceMove, To: sq}
}

// Step slides a piece to an adjacent empty square.
func Step(from, to Square) Move {
	return Move{Kind: StepMove, From: from, To: to}
}

// Capture jumps a tiger from `from` over the goat at `over` onto `to`.
func Capture(from, over, to Square) Move {
	return Move{Kind: CaptureMove, From: from, Over: over, To: to}
}

func (m Move) IsCapture() bool {
	return m.Kind == CaptureMove
}

func (m Move) String() string {
	switch m.Kind {
	case PlaceMove:
		return fmt.Sprintf("(%d, %d)", m.To.Row, m.To.Col)
	case StepMove:
		return fmt.Sprintf("(%d, %d) -> (%d, %d)", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	case CaptureMove:
		return fmt.Sprintf("(%d, %d) x (%d, %d) -> (%d, %d)",
			m.From.Row, m.From.Col, m.Over.Row, m.Over.Col, m.To.Row, m.To.Col)
	default:
		return fmt.Sprintf("invalid move kind %d", m.Kind)
	}
}
