package main

import (
	"bytes"
	"strings"
	"testing"

	"baghchal/game"

	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	g := game.NewGame()
	g.Ply(game.Place(game.Square{Row: 2, Col: 2}))

	var buf bytes.Buffer
	renderBoard(&buf, g)

	expected := []string{
		"  0   1   2   3   4",
		"0 T - . - . - . - T",
		"  | \\ | / | \\ | / |",
		"1 . - . - . - . - .",
		"  | / | \\ | / | \\ |",
		"2 . - . - G - . - .",
		"  | \\ | / | \\ | / |",
		"3 . - . - . - . - .",
		"  | / | \\ | / | \\ |",
		"4 T - . - . - . - T",
		"Tiger to move, goats placed 1/20, captured 0/5",
	}
	require.Equal(t, expected, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}
