package game

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the 25 cells in row-major order, "T" for tigers, "G" for
// goats and "." for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	for r := range b {
		for c := range b[r] {
			sb.WriteString(b[r][c].String())
		}
	}
	return sb.String()
}

// ParseBoard reads 25 cells in row-major order. "T" is a tiger, "G" a goat,
// "." or "0" an empty square. Spaces, newlines and "/" between cells are ignored.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for _, ch := range s {
		var p Piece
		switch ch {
		case ' ', '\t', '\n', '\r', '/':
			continue
		case 'T', 't':
			p = Tiger
		case 'G', 'g':
			p = Goat
		case '.', '0':
			p = Empty
		default:
			return Board{}, fmt.Errorf("unexpected cell %q: %w", ch, ErrInvalidNotation)
		}
		if i >= Rows*Cols {
			return Board{}, fmt.Errorf("more than %d cells: %w", Rows*Cols, ErrInvalidNotation)
		}
		b[i/Cols][i%Cols] = p
		i++
	}
	if i != Rows*Cols {
		return Board{}, fmt.Errorf("got %d cells, expected %d: %w", i, Rows*Cols, ErrInvalidNotation)
	}
	return b, nil
}

// String encodes the game as "<board>/<side>/<placed>/<captured>", side being
// "G" or "T". ParseGame reads it back.
func (g Game) String() string {
	side := "G"
	if g.State.Player == TigerPlayer {
		side = "T"
	}
	return fmt.Sprintf("%s/%s/%d/%d", g.Board, side, g.State.GoatsPlaced, g.State.GoatsCaptured)
}

// ParseGame decodes the form produced by Game.String and checks that the
// board agrees with the counters, see Validate.
func ParseGame(s string) (*Game, error) {
	g, err := decodeGame(s)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate reports positions no game can reach: a tiger count other than
// four, or a goat count that differs from placed minus captured.
func (g *Game) Validate() error {
	if tigers := g.Board.Count(Tiger); tigers != TotalTigers {
		return fmt.Errorf("%d tigers on the board, expected %d: %w", tigers, TotalTigers, ErrInvalidNotation)
	}
	if goats := g.Board.Count(Goat); goats != g.State.GoatsOnBoard() {
		return fmt.Errorf("%d goats on the board, expected %d placed - %d captured: %w",
			goats, g.State.GoatsPlaced, g.State.GoatsCaptured, ErrInvalidNotation)
	}
	return nil
}

// decodeGame only checks the syntax and the counter ranges.
func decodeGame(s string) (*Game, error) {
	// The board itself may use "/" between rows, so the counters are taken from the end.
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 4 {
		return nil, fmt.Errorf("expected at least 4 fields, got %d: %w", len(parts), ErrInvalidNotation)
	}
	n := len(parts)
	fields := []string{strings.Join(parts[:n-3], "/"), parts[n-3], parts[n-2], parts[n-1]}

	board, err := ParseBoard(fields[0])
	if err != nil {
		return nil, err
	}

	var player Player
	switch fields[1] {
	case "G":
		player = GoatPlayer
	case "T":
		player = TigerPlayer
	default:
		return nil, fmt.Errorf("unexpected side %q: %w", fields[1], ErrInvalidNotation)
	}

	placed, err := parseCounter(fields[2], TotalGoats)
	if err != nil {
		return nil, err
	}
	captured, err := parseCounter(fields[3], placed)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board: board,
		State: GameState{Player: player, GoatsPlaced: placed, GoatsCaptured: captured},
	}, nil
}

func parseCounter(s string, limit int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("counter %q: %w", s, ErrInvalidNotation)
	}
	if n < 0 || n > limit {
		return 0, fmt.Errorf("counter %d out of range [0, %d]: %w", n, limit, ErrInvalidNotation)
	}
	return n, nil
}
