package experiments

import (
	"fmt"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
	"connectfour/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Summary counts the outcomes of an experiment per agent ID.
type Summary struct {
	Dir   string
	Games int
	Wins  map[int]int
	Draws int
}

// Run plays every match up of cfg cfg.Games times, alternating the agent
// that moves first, and stores the records under cfg.Output.
func Run(cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid experiment config: %w", err)
	}

	summary := Summary{Wins: make(map[int]int)}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchUp := range cfg.MatchUps {
		config1 := cfg.agent(matchUp[0])
		config2 := cfg.agent(matchUp[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameMetric, moveMetrics, err := runGame(cfg.Rows, cfg.Cols, first, second, uint64(summary.Games))
			if err != nil {
				return summary, err
			}

			summary.Games++
			switch winner, ok := gameMetric.Status.Winner(); {
			case !ok:
				summary.Draws++
			case winner == game.PlayerA:
				gameMetric.Winner = first.ID
			default:
				gameMetric.Winner = second.ID
			}
			if gameMetric.Winner != 0 {
				summary.Wins[gameMetric.Winner]++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         summary.Games,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       summary.Games,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %s (%d moves)", mi+1, len(cfg.MatchUps), i+1, gameMetric.Status, gameMetric.TotalMoves)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	dir, err := store(cfg, gameRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func store(cfg Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if cfg.Format == FormatParquet {
		err = writer.WriteGameRecordsParquet(gameRecords)
	} else {
		err = writer.WriteGameRecords(gameRecords)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if cfg.Format == FormatParquet {
		err = writer.WriteMoveRecordsParquet(moveRecords)
	} else {
		err = writer.WriteMoveRecords(moveRecords)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents. Agent seeds are offset
// by the game number so repeated match ups play different games.
func runGame(rows, cols int, config1, config2 metrics.AgentConfig, offset uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	config1.Seed += offset
	config2.Seed += offset
	agents := []agent.Agent{createAgent(config1), createAgent(config2)}
	e, err := engine.LocalEngine(agents, rows, cols)
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("failed to set up game: %w", err)
	}

	_, gameMetric, moveMetrics := e.Run()
	gameMetric.StartingAgent = config1.ID
	return gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	switch config.Kind {
	case KindMCTS:
		return agent.NewEvaluationAgent(createMCTS(config))
	case KindTraining:
		return agent.NewTrainingAgent(createMCTS(config), config.Temperature, config.Seed+1)
	default:
		return agent.NewRandomAgent(config.Seed)
	}
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithSims(config.Sims),
		searcher.WithExploration(config.Exploration),
		searcher.WithSeed(config.Seed),
	}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.ThinkingTime > 0 {
		options = append(options, searcher.WithDuration(config.ThinkingTime))
	}
	if config.Workers > 0 {
		options = append(options, searcher.WithRolloutWorkers(config.Workers))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
