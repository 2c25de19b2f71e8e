package game

import "fmt"

// Piece is the occupant of a square.
type Piece int8

const (
	Empty Piece = iota
	Goat
	Tiger
)

func (p Piece) String() string {
	switch p {
	case Goat:
		return "G"
	case Tiger:
		return "T"
	default:
		return "."
	}
}

// Board is the occupancy grid. It is a plain array, so assigning a Board copies it.
type Board [Rows][Cols]Piece

// NewBoard returns the starting board with a tiger on each corner.
func NewBoard() Board {
	var b Board
	b[0][0] = Tiger
	b[0][Cols-1] = Tiger
	b[Rows-1][0] = Tiger
	b[Rows-1][Cols-1] = Tiger
	return b
}

func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Positions returns the squares holding the given piece in row-major order.
func (b *Board) Positions(p Piece) []Square {
	var squares []Square
	for _, sq := range allSquares {
		if b.At(sq) == p {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns how many squares hold the given piece.
func (b *Board) Count(p Piece) int {
	n := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] == p {
				n++
			}
		}
	}
	return n
}

// Moves returns every legal move for the side to move in state.
func (b *Board) Moves(state GameState) []Move {
	if state.Player == GoatPlayer {
		return b.goatMoves(state.GoatsPlaced)
	}
	return b.tigerMoves()
}

func (b *Board) goatMoves(placed int) []Move {
	if placed < TotalGoats {
		return b.placementMoves()
	}

	var moves []Move
	for _, goat := range b.Positions(Goat) {
		moves = append(moves, b.stepMoves(goat)...)
	}
	return moves
}

func (b *Board) placementMoves() []Move {
	var moves []Move
	for _, sq := range b.Positions(Empty) {
		moves = append(moves, Place(sq))
	}
	return moves
}

// tigerMoves enforces the forced capture rule: steps are only returned when
// no tiger on the board can capture.
func (b *Board) tigerMoves() []Move {
	var steps, captures []Move
	for _, tiger := range b.Positions(Tiger) {
		steps = append(steps, b.stepMoves(tiger)...)
		captures = append(captures, b.captureMoves(tiger)...)
	}

	if len(captures) > 0 {
		return captures
	}
	return steps
}

func (b *Board) stepMoves(from Square) []Move {
	var moves []Move
	for _, to := range Neighbors(from) {
		if b.At(to) == Empty {
			moves = append(moves, Step(from, to))
		}
	}
	return moves
}

func (b *Board) captureMoves(from Square) []Move {
	var moves []Move
	for _, over := range Neighbors(from) {
		if to, ok := b.landing(from, over); ok {
			moves = append(moves, Capture(from, over, to))
		}
	}
	return moves
}

// landing returns the square a tiger at from lands on when jumping over, if
// over holds a goat and the reflected square is on the board and empty.
func (b *Board) landing(from, over Square) (Square, bool) {
	if b.At(over) != Goat {
		return Square{}, false
	}

	to := Square{
		Row: over.Row + (over.Row - from.Row),
		Col: over.Col + (over.Col - from.Col),
	}
	if !to.OnBoard() {
		return Square{}, false
	}
	if b.At(to) != Empty {
		return Square{}, false
	}
	return to, true
}

// Apply returns a copy of the board with the move played. It does not check
// legality; callers only apply moves obtained from Moves.
func (b Board) Apply(m Move) Board {
	switch m.Kind {
	case PlaceMove:
		b.Set(m.To, Goat)
	case StepMove:
		b.Set(m.To, b.At(m.From))
		b.Set(m.From, Empty)
	case CaptureMove:
		b.Set(m.From, Empty)
		b.Set(m.Over, Empty)
		b.Set(m.To, Tiger)
	default:
		panic(fmt.Sprintf("cannot apply move of kind %d", m.Kind))
	}
	return b
}

// LockedTigers counts tigers that can neither step nor capture.
func (b *Board) LockedTigers() int {
	locked := 0
	for _, tiger := range b.Positions(Tiger) {
		if len(b.stepMoves(tiger)) == 0 && len(b.captureMoves(tiger)) == 0 {
			locked++
		}
	}
	return locked
}
