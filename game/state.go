package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// Game is a full position: the board plus the counters. It is a value type;
// copying a Game clones it.
type Game struct {
	Board Board
	State GameState
}

// NewGame returns the starting position.
func NewGame() *Game {
	return &Game{
		Board: NewBoard(),
		State: NewGameState(),
	}
}

func (g Game) Copy() *Game {
	return &g
}

// Player returns the side to move.
func (g *Game) Player() Player {
	return g.State.Player
}

func (g *Game) Phase() Phase {
	return g.State.Phase()
}

// LegalMoves returns all legal moves for the side to move.
func (g *Game) LegalMoves() []Move {
	return g.Board.Moves(g.State)
}

// Ply plays a move for the side to move and passes the turn. The move is not
// validated; use TryPly for untrusted input.
func (g *Game) Ply(m Move) {
	g.Board = g.Board.Apply(m)

	switch m.Kind {
	case PlaceMove:
		g.State.GoatsPlaced++
	case CaptureMove:
		g.State.GoatsCaptured++
	}

	g.State.Player = g.State.Player.Opponent()
}

// Play returns a new game with the move played; g is left untouched.
func (g Game) Play(m Move) *Game {
	g.Ply(m)
	return &g
}

// TryPly plays m only if it is one of the current legal moves.
func (g *Game) TryPly(m Move) error {
	if g.IsGameOver() {
		return fmt.Errorf("cannot play %v: %w", m, ErrGameOver)
	}
	if !slices.Contains(g.LegalMoves(), m) {
		return fmt.Errorf("cannot play %v for %v: %w", m, g.Player(), ErrIllegalMove)
	}
	g.Ply(m)
	return nil
}

// Winner returns the winning side, or NoPlayer while the game is running.
// Five captures win for Tiger whoever is to move; Goat wins when Tiger is to
// move and has nothing to play.
func (g *Game) Winner() Player {
	if g.State.GoatsCaptured >= GoatsToCapture {
		return TigerPlayer
	}
	if g.State.Player == TigerPlayer && len(g.LegalMoves()) == 0 {
		return GoatPlayer
	}
	return NoPlayer
}

func (g *Game) IsGameOver() bool {
	return g.Winner() != NoPlayer
}

// LockedTigers counts tigers without any step or capture.
func (g *Game) LockedTigers() int {
	return g.Board.LockedTigers()
}

// Hash identifies the position, used to label records and logs.
func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(g.State.Player))
	binary.Write(hasher, binary.LittleEndian, int64(g.State.GoatsPlaced))
	binary.Write(hasher, binary.LittleEndian, int64(g.State.GoatsCaptured))

	for r := range g.Board {
		for c := range g.Board[r] {
			binary.Write(hasher, binary.LittleEndian, int8(g.Board[r][c]))
		}
	}

	return StateHash(hasher.Sum64())
}
