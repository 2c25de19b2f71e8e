package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"baghchal/config"
	"baghchal/engine"
	"baghchal/experiments"
	"baghchal/game"
	"baghchal/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML, JSON or TOML config file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	switch cfg.Mode {
	case config.ModePlay, config.ModeMatch:
		err = runGame(cfg)
	case config.ModeExperiment:
		err = runExperiment(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func runGame(cfg *config.Config) error {
	// Both sides read from the same terminal, so one human agent serves both.
	var human agent.Agent
	newAgent := func(a config.AgentConfig, id int) (agent.Agent, error) {
		if a.Kind != agent.KindHuman {
			return agent.FromConfig(a.Metrics(id))
		}
		if human == nil {
			human = agent.NewHumanAgent(bufio.NewReader(os.Stdin), os.Stdout)
		}
		return human, nil
	}

	goat, err := newAgent(cfg.Goat, 1)
	if err != nil {
		return err
	}
	tiger, err := newAgent(cfg.Tiger, 2)
	if err != nil {
		return err
	}

	start := cfg.StartingGame()
	options := []engine.Option{engine.WithGame(start), engine.WithMaxTurns(cfg.MaxTurns)}
	if cfg.Mode == config.ModePlay {
		renderBoard(os.Stdout, start)
		options = append(options, engine.WithObserver(func(u engine.Update) {
			fmt.Fprintf(os.Stdout, "\n%d. %v (%s) played %v\n", u.Step, u.Game.Player().Opponent(), u.Agent, u.Move)
			renderBoard(os.Stdout, &u.Game)
		}))
	}

	winner, gameMetric, _, err := engine.NewLocalEngine(goat, tiger, options...).Run()
	if err != nil {
		return err
	}

	if winner == game.NoPlayer {
		fmt.Fprintf(os.Stdout, "No winner after %d moves\n", gameMetric.TotalMoves)
	} else {
		fmt.Fprintf(os.Stdout, "Winner: %v after %d moves\n", winner, gameMetric.TotalMoves)
	}
	return nil
}

func runExperiment(cfg *config.Config) error {
	options := experiments.Options{
		Dir:      cfg.Experiment.Dir,
		NumGames: cfg.Experiment.NumGames,
		MaxTurns: cfg.MaxTurns,
	}

	var dir string
	var err error
	switch cfg.Experiment.Name {
	case experiments.CutoffExperiment:
		dir, err = experiments.RunCutoffExperiment(options)
	case experiments.HeuristicExperiment:
		dir, err = experiments.RunHeuristicExperiment(options)
	case experiments.ThroughputExperiment:
		dir, err = experiments.RunThroughputExperiment(options, cfg.Experiment.MaxCutoff)
	default:
		return fmt.Errorf("experiment %q: %w", cfg.Experiment.Name, config.ErrUnknownExperiment)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Results written to %s\n", dir)
	return nil
}
