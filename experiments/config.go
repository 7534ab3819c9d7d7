package experiments

import (
	"errors"
	"fmt"
	"os"
	"time"

	"connectfour/experiments/metrics"
	"connectfour/meta"

	"gopkg.in/yaml.v3"
)

const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"

	KindMCTS     = "mcts"
	KindTraining = "training"
	KindRandom   = "random"
)

// Config describes a set of match-ups between agents.
type Config struct {
	Name     string                `yaml:"name"`
	Rows     int                   `yaml:"rows"`
	Cols     int                   `yaml:"cols"`
	Games    int                   `yaml:"games"` // Per match up
	Output   string                `yaml:"output"`
	Format   string                `yaml:"format"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][2]int              `yaml:"matchups"` // Pairs of agent IDs
}

// DefaultConfig pits a search agent against a random baseline.
func DefaultConfig() Config {
	return Config{
		Name:   "default",
		Rows:   meta.Rows,
		Cols:   meta.Cols,
		Games:  4,
		Output: "experiments",
		Format: FormatCSV,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: KindMCTS, ThinkingTime: 200 * time.Millisecond, Sims: meta.Sims, Exploration: meta.Exploration, Workers: meta.RolloutWorkers, Seed: 1},
			{ID: 2, Kind: KindRandom, Seed: 2},
		},
		MatchUps: [][2]int{{1, 2}},
	}
}

// LoadConfig reads a YAML config. Fields missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Format != FormatCSV && c.Format != FormatParquet {
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Format))
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if agent.ID <= 0 {
			errs = append(errs, fmt.Errorf("agent id must be positive, got %d", agent.ID))
		}
		if ids[agent.ID] {
			errs = append(errs, fmt.Errorf("duplicate agent id %d", agent.ID))
		}
		ids[agent.ID] = true

		switch agent.Kind {
		case KindMCTS, KindTraining:
			if agent.ThinkingTime <= 0 && agent.Episodes <= 0 {
				errs = append(errs, fmt.Errorf("agent %d: needs a thinking time or episodes", agent.ID))
			}
			if agent.Sims < 1 {
				errs = append(errs, fmt.Errorf("agent %d: sims must be at least 1", agent.ID))
			}
			if !(agent.Exploration > 0) {
				errs = append(errs, fmt.Errorf("agent %d: exploration must be positive", agent.ID))
			}
			if agent.Kind == KindTraining && !(agent.Temperature > 0) {
				errs = append(errs, fmt.Errorf("agent %d: temperature must be positive", agent.ID))
			}
		case KindRandom:
		default:
			errs = append(errs, fmt.Errorf("agent %d: unknown kind %q", agent.ID, agent.Kind))
		}
	}

	if len(c.MatchUps) == 0 {
		errs = append(errs, errors.New("no match ups"))
	}
	for _, matchUp := range c.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				errs = append(errs, fmt.Errorf("match up %v: unknown agent id %d", matchUp, id))
			}
		}
	}
	return errors.Join(errs...)
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
