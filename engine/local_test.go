package engine

import (
	"testing"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/searcher"
	"baghchal/searcher/agent"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []game.Move
}

func (a *scriptedAgent) FindMove(*game.Game) (game.Move, metrics.SearchMetric, error) {
	move := a.moves[0]
	a.moves = a.moves[1:]
	return move, metrics.SearchMetric{}, nil
}

func (a *scriptedAgent) Name() string {
	return "scripted"
}

func mustParseGame(t *testing.T, s string) *game.Game {
	t.Helper()
	g, err := game.ParseGame(s)
	require.NoError(t, err)
	return g
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random agents play a full game", func(t *testing.T) {
		var observed []Update
		e := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2), WithObserver(func(u Update) {
			observed = append(observed, u)
		}))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, e.Game.Winner(), winner)
		require.Equal(t, e.ID, gameMetric.ID)
		require.Equal(t, "random", gameMetric.Goat)
		require.Equal(t, winner.String(), gameMetric.Winner)
		require.Equal(t, e.Game.State.GoatsCaptured, gameMetric.GoatsCaptured)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, e.Updates, observed)
		require.LessOrEqual(t, gameMetric.TotalMoves, 300)

		for i, u := range e.Updates {
			require.Equal(t, i+1, u.Step)
			require.Equal(t, u.Game.Hash(), u.Hash)
			require.Equal(t, uint64(u.Hash), moveMetrics[i].Hash)
			require.Equal(t, u.Move.String(), moveMetrics[i].Move)
		}
		require.Equal(t, "Goat", moveMetrics[0].Player)
		require.Equal(t, "Tiger", moveMetrics[1].Player)
	})

	t.Run("turn cap stops the game without a winner", func(t *testing.T) {
		e := NewLocalEngine(agent.NewRandomAgent(3), agent.NewRandomAgent(4), WithMaxTurns(4))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, 4, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 4)
		require.Equal(t, 2, e.Game.State.GoatsPlaced)
	})

	t.Run("illegal moves are rejected", func(t *testing.T) {
		goat := &scriptedAgent{moves: []game.Move{game.Place(game.Square{Row: 0, Col: 0})}}
		e := NewLocalEngine(goat, agent.NewRandomAgent(5))

		winner, gameMetric, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, 0, gameMetric.TotalMoves)
		require.Equal(t, game.NewGame(), e.Game)
	})

	t.Run("stuck goat ends the game", func(t *testing.T) {
		b, err := game.ParseBoard("GT.../TT.../...../...../.....")
		require.NoError(t, err)
		start := &game.Game{
			Board: b,
			State: game.GameState{Player: game.GoatPlayer, GoatsPlaced: game.TotalGoats, GoatsCaptured: 4},
		}
		e := NewLocalEngine(agent.NewRandomAgent(6), agent.NewRandomAgent(7), WithGame(start))

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, 0, gameMetric.TotalMoves)
	})

	t.Run("search agent finishes a won position", func(t *testing.T) {
		start := mustParseGame(t, "T.TG./...G./..G../....G/T...T/T/8/4")
		tiger := agent.NewAlphaBetaAgent(searcher.WithCutoff(1), searcher.WithMetrics())
		e := NewLocalEngine(agent.NewRandomAgent(8), tiger, WithGame(start))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.TigerPlayer, winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, 5, gameMetric.GoatsCaptured)
		require.Equal(t, "alphabeta", gameMetric.Tiger)
		require.Positive(t, moveMetrics[0].Nodes)
		require.Equal(t, 4, start.State.GoatsCaptured, "the starting position is copied")
	})
}

func TestNewLocalEngine(t *testing.T) {
	a := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(1))
	b := NewLocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(1))
	require.NotEqual(t, a.ID, b.ID)

	require.Panics(t, func() { NewLocalEngine(nil, agent.NewRandomAgent(1)) })
}
