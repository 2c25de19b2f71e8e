package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that lists the legal moves on out and reads
// the index of the chosen one from in, asking again until it is valid.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%v has no move at %v: %w", g.Player(), g, searcher.ErrNoMoves)
	}

	fmt.Fprintf(a.out, "Allowed moves for %v:\n", g.Player())
	for i, move := range moves {
		fmt.Fprintf(a.out, "%d: %v\n", i, move)
	}
	fmt.Fprintln(a.out)

	for {
		fmt.Fprint(a.out, "Choose a move: ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
		}

		i, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil || i < 0 || i >= len(moves) {
			fmt.Fprintf(a.out, "Enter a number between 0 and %d.\n", len(moves)-1)
			continue
		}
		return moves[i], metrics.SearchMetric{}, nil
	}
}

func (a *humanAgent) Name() string {
	return KindHuman
}
