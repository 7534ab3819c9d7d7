package main

import (
	"flag"
	"os"
	"time"

	"connectfour/experiments"
	"connectfour/experiments/metrics"
	"connectfour/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML experiment config")
	rows := flag.Int("rows", meta.Rows, "Number of board rows")
	cols := flag.Int("cols", meta.Cols, "Number of board columns")
	games := flag.Int("games", 0, "Games per match up")
	thinking := flag.Duration("thinking", 0, "Thinking time per move of every search agent")
	sims := flag.Int("sims", 0, "Random playouts per tree node of every search agent")
	exploration := flag.Float64("exploration", 0, "UCB1 exploration constant of every search agent")
	seed := flag.Uint64("seed", 0, "Base seed, offset by agent ID")
	workers := flag.Int("workers", 0, "Rollout goroutines of every search agent")
	out := flag.String("out", "", "Output directory for experiment records")
	format := flag.String("format", "", "Record format, csv or parquet")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags override the config file only when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "games":
			cfg.Games = *games
		case "out":
			cfg.Output = *out
		case "format":
			cfg.Format = *format
		}
		for i := range cfg.Agents {
			overrideAgent(&cfg.Agents[i], f.Name, *thinking, *sims, *exploration, *seed, *workers)
		}
	})

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	log.Info().Msgf("played %d games, %d drawn", summary.Games, summary.Draws)
	for _, agent := range cfg.Agents {
		log.Info().Msgf("agent %d (%s) won %d games", agent.ID, agent.Kind, summary.Wins[agent.ID])
	}
	log.Info().Msgf("records stored in %s", summary.Dir)
}

func overrideAgent(agent *metrics.AgentConfig, name string, thinking time.Duration, sims int, exploration float64, seed uint64, workers int) {
	if name == "seed" {
		agent.Seed = seed + uint64(agent.ID)
		return
	}
	if agent.Kind == experiments.KindRandom {
		return
	}

	switch name {
	case "thinking":
		agent.ThinkingTime = thinking
		agent.Episodes = 0
	case "sims":
		agent.Sims = sims
	case "exploration":
		agent.Exploration = exploration
	case "workers":
		agent.Workers = workers
	}
}
