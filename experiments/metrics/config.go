package metrics

import "time"

// AgentConfig describes one player in an experiment.
type AgentConfig struct {
	ID           int           `yaml:"id"`
	Kind         string        `yaml:"kind"` // mcts, training or random
	ThinkingTime time.Duration `yaml:"thinking_time"`
	Episodes     int           `yaml:"episodes"`
	Sims         int           `yaml:"sims"`
	Exploration  float64       `yaml:"exploration"`
	Workers      int           `yaml:"workers"`
	Temperature  float64       `yaml:"temperature"`
	Seed         uint64        `yaml:"seed"`
}
