package config

import (
	"errors"
	"fmt"
	"strings"

	"baghchal/experiments"
	"baghchal/experiments/metrics"
	"baghchal/game"
	"baghchal/meta"
	"baghchal/searcher/agent"

	"github.com/spf13/viper"
)

var (
	ErrUnknownMode       = errors.New("unknown mode")
	ErrUnknownExperiment = errors.New("unknown experiment")
)

const (
	ModePlay       = "play"
	ModeMatch      = "match"
	ModeExperiment = "experiment"
)

type Config struct {
	Mode       string           `mapstructure:"mode"`
	LogLevel   string           `mapstructure:"log_level"`
	MaxTurns   int              `mapstructure:"max_turns"`
	Position   string           `mapstructure:"position"` // Starting position in Game.String form, empty for the initial one
	Goat       AgentConfig      `mapstructure:"goat"`
	Tiger      AgentConfig      `mapstructure:"tiger"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

type AgentConfig struct {
	Kind      string `mapstructure:"kind"`
	Cutoff    int    `mapstructure:"cutoff"`
	Heuristic string `mapstructure:"heuristic"`
	Seed      uint64 `mapstructure:"seed"`
}

type ExperimentConfig struct {
	Name      string `mapstructure:"name"` // cutoff, heuristic or throughput
	Dir       string `mapstructure:"dir"`
	NumGames  int    `mapstructure:"num_games"`
	MaxCutoff int    `mapstructure:"max_cutoff"`
}

// Metrics converts the agent settings to the record stored with experiment results.
func (a AgentConfig) Metrics(id int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:        id,
		Kind:      a.Kind,
		Cutoff:    a.Cutoff,
		Heuristic: a.Heuristic,
		Seed:      a.Seed,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModePlay)
	v.SetDefault("log_level", "info")
	v.SetDefault("max_turns", meta.MAX_TURNS)
	v.SetDefault("position", "")

	v.SetDefault("goat.kind", agent.KindHuman)
	v.SetDefault("goat.cutoff", meta.CUTOFF)
	v.SetDefault("goat.heuristic", meta.HEURISTIC)
	v.SetDefault("goat.seed", 1)

	v.SetDefault("tiger.kind", agent.KindAlphaBeta)
	v.SetDefault("tiger.cutoff", meta.CUTOFF)
	v.SetDefault("tiger.heuristic", meta.HEURISTIC)
	v.SetDefault("tiger.seed", 2)

	v.SetDefault("experiment.name", experiments.CutoffExperiment)
	v.SetDefault("experiment.dir", "results")
	v.SetDefault("experiment.num_games", meta.NUM_GAMES)
	v.SetDefault("experiment.max_cutoff", meta.CUTOFF)
}

// Setup reads the configuration file at cfgPath, if any, on top of the
// defaults. BAGHCHAL_* environment variables override both, e.g.
// BAGHCHAL_TIGER_CUTOFF=4.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BAGHCHAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModePlay, ModeMatch, ModeExperiment:
	default:
		return fmt.Errorf("mode %q: %w", c.Mode, ErrUnknownMode)
	}

	switch c.Experiment.Name {
	case experiments.CutoffExperiment, experiments.HeuristicExperiment, experiments.ThroughputExperiment:
	default:
		return fmt.Errorf("experiment %q: %w", c.Experiment.Name, ErrUnknownExperiment)
	}

	for side, a := range map[string]AgentConfig{"goat": c.Goat, "tiger": c.Tiger} {
		switch a.Kind {
		case agent.KindAlphaBeta, agent.KindRandom, agent.KindHuman:
		default:
			return fmt.Errorf("%s agent %q: %w", side, a.Kind, agent.ErrUnknownKind)
		}
		if _, err := game.EvaluatorByName(a.Heuristic); err != nil {
			return fmt.Errorf("%s agent: %w", side, err)
		}
	}

	if c.Position != "" {
		if _, err := game.ParseGame(c.Position); err != nil {
			return fmt.Errorf("position: %w", err)
		}
	}
	return nil
}

// StartingGame returns the configured starting position.
func (c *Config) StartingGame() *game.Game {
	if c.Position == "" {
		return game.NewGame()
	}
	g, err := game.ParseGame(c.Position)
	if err != nil {
		panic(fmt.Sprintf("unvalidated position: %v", err))
	}
	return g
}
