package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMobility(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		// 12 tiger steps at 5 each, nothing else on the board
		require.Equal(t, -60.0, EvaluateMobility(NewGame()))
	})

	t.Run("available captures weigh 50 each", func(t *testing.T) {
		g := mustParseGame(t, "T.TG./...G./..G../....G/T...T/G/5/0")
		// 5 goats, 3 captures
		require.Equal(t, 5.0-150.0, EvaluateMobility(g))
	})

	t.Run("locked tigers and captured goats", func(t *testing.T) {
		g := mustParseGame(t, "TGG../GG.../G.G../...../....T/G/8/2")
		// 6 goats + 50 locked - 20 captured - 3 steps of the free tiger
		require.Equal(t, 6.0+50.0-20.0-15.0, EvaluateMobility(g))
	})

	t.Run("turn does not change the score or the game", func(t *testing.T) {
		goatTurn := mustParseGame(t, "T.TG./...G./..G../....G/T...T/G/5/0")
		tigerTurn := mustParseGame(t, "T.TG./...G./..G../....G/T...T/T/5/0")
		before := *goatTurn

		require.Equal(t, EvaluateMobility(goatTurn), EvaluateMobility(tigerTurn))
		require.Equal(t, before, *goatTurn, "evaluation should not mutate the game")
		require.Equal(t, GoatPlayer, goatTurn.Player())
	})
}

func TestDummyEvaluators(t *testing.T) {
	require.True(t, math.IsInf(EvaluateGoatWins(NewGame()), 1))
	require.True(t, math.IsInf(EvaluateTigerWins(NewGame()), -1))
}

func TestEvaluatorByName(t *testing.T) {
	t.Run("registered names", func(t *testing.T) {
		for name := range Evaluators {
			fn, err := EvaluatorByName(name)
			require.NoError(t, err)
			require.NotNil(t, fn)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := EvaluatorByName("material")
		require.ErrorContains(t, err, "material")
		require.ErrorContains(t, err, "[goat mobility tiger]")
	})
}
