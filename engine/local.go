package engine

import (
	"fmt"
	"time"

	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/meta"
	"baghchal/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Update struct {
	Step  int
	Move  game.Move
	Game  game.Game // Position after the move
	Hash  game.StateHash
	Agent string
}

type Option func(e *LocalEngine)

// WithGame starts from g instead of the initial position. g is copied.
func WithGame(g *game.Game) Option {
	return func(e *LocalEngine) {
		e.Game = g.Copy()
	}
}

func WithMaxTurns(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithObserver calls fn after every move, e.g. to render the board.
func WithObserver(fn func(Update)) Option {
	return func(e *LocalEngine) {
		e.observer = fn
	}
}

// LocalEngine runs one game in process between a Goat agent and a Tiger agent,
// checking every move they return against the rules.
type LocalEngine struct {
	ID      string
	Game    *game.Game
	Updates []Update

	goat     agent.Agent
	tiger    agent.Agent
	maxTurns int
	observer func(Update)
}

func NewLocalEngine(goat, tiger agent.Agent, options ...Option) *LocalEngine {
	if goat == nil || tiger == nil {
		panic("need an agent for each side")
	}

	e := &LocalEngine{
		ID:       uuid.NewString(),
		Game:     game.NewGame(),
		goat:     goat,
		tiger:    tiger,
		maxTurns: meta.MAX_TURNS,
		observer: func(Update) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) agentFor(player game.Player) agent.Agent {
	if player == game.GoatPlayer {
		return e.goat
	}
	return e.tiger
}

// Run executes the game loop until a winner is found. A side left without
// moves in a position that is not won ends the game with no winner, as does
// reaching the turn cap.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.ID,
		Goat:      e.goat.Name(),
		Tiger:     e.tiger.Name(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s (Goat) vs %s (Tiger) from %v", e.ID, gameMetric.Goat, gameMetric.Tiger, e.Game)

	turnCount := 1
	for !e.Game.IsGameOver() && turnCount <= e.maxTurns {
		player := e.Game.Player()
		if len(e.Game.LegalMoves()) == 0 {
			log.Warn().Msgf("game %s: %v has no moves at %v, stopping", e.ID, player, e.Game)
			break
		}

		current := e.agentFor(player)
		move, searchMetric, err := current.FindMove(e.Game.Copy())
		if err != nil {
			return game.NoPlayer, e.complete(gameMetric, turnCount-1), moveMetrics, fmt.Errorf("%v agent %s failed on turn %d: %w", player, current.Name(), turnCount, err)
		}
		if err := e.Game.TryPly(move); err != nil {
			return game.NoPlayer, e.complete(gameMetric, turnCount-1), moveMetrics, fmt.Errorf("%v agent %s on turn %d: %w", player, current.Name(), turnCount, err)
		}

		hash := e.Game.Hash()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player.String(),
			Move:         move.String(),
			Hash:         uint64(hash),
			SearchMetric: searchMetric,
		})

		u := Update{
			Step:  turnCount,
			Move:  move,
			Game:  *e.Game,
			Hash:  hash,
			Agent: current.Name(),
		}
		e.Updates = append(e.Updates, u)
		e.observer(u)

		log.Debug().Msgf("game %s turn %d: %v played %v", e.ID, turnCount, player, move)
		turnCount++
	}

	winner := e.Game.Winner()
	gameMetric = e.complete(gameMetric, turnCount-1)
	if winner != game.NoPlayer {
		log.Info().Msgf("game %s ended after %d moves, winner: %v", e.ID, gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game %s stopped after %d moves without a winner", e.ID, gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.Winner = e.Game.Winner().String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	gameMetric.GoatsCaptured = e.Game.State.GoatsCaptured
	return gameMetric
}
