package main

import (
	"fmt"
	"io"
	"strings"

	"baghchal/game"

	"github.com/muesli/termenv"
)

// renderBoard draws g with the lines pieces move along. Colors are only
// emitted when w is a terminal that supports them.
func renderBoard(w io.Writer, g *game.Game) {
	output := termenv.NewOutput(w)
	style := func(p game.Piece) string {
		switch p {
		case game.Tiger:
			return output.String(p.String()).Foreground(output.Color("1")).Bold().String()
		case game.Goat:
			return output.String(p.String()).Foreground(output.Color("2")).Bold().String()
		default:
			return output.String(p.String()).Faint().String()
		}
	}

	fmt.Fprintln(w, "  0   1   2   3   4")
	for r := 0; r < game.Rows; r++ {
		cells := make([]string, game.Cols)
		for c := 0; c < game.Cols; c++ {
			cells[c] = style(g.Board.At(game.Square{Row: r, Col: c}))
		}
		fmt.Fprintf(w, "%d %s\n", r, strings.Join(cells, " - "))

		if r == game.Rows-1 {
			break
		}
		var links strings.Builder
		for c := 0; c < game.Cols; c++ {
			links.WriteString("|")
			if c == game.Cols-1 {
				break
			}
			if (r+c)%2 == 0 {
				links.WriteString(" \\ ")
			} else {
				links.WriteString(" / ")
			}
		}
		fmt.Fprintf(w, "  %s\n", links.String())
	}

	fmt.Fprintf(w, "%v to move, goats placed %d/%d, captured %d/%d\n",
		g.Player(), g.State.GoatsPlaced, game.TotalGoats, g.State.GoatsCaptured, game.GoatsToCapture)
}
