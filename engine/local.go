package engine

import (
	"fmt"
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher/agent"
	"connectfour/utils"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board  *game.Board
	Agents []agent.Agent // Agents[0] plays first
}

var _ Runner = (*Engine)(nil)

// LocalEngine sets up a game on an empty rows x cols board between two agents.
func LocalEngine(agents []agent.Agent, rows, cols int) (*Engine, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("need exactly two agents, got %d", len(agents))
	}

	board, err := game.NewBoard(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Engine{
		Board:  board,
		Agents: agents,
	}, nil
}

// Run executes the entire game loop until the board is decided.
func (e *Engine) Run() (game.Status, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Rows:      e.Board.Rows(),
		Cols:      e.Board.Cols(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("starting game on a %dx%d board", e.Board.Rows(), e.Board.Cols())

	for step := 1; !e.Board.Status().IsOver(); step++ {
		player := e.Board.Player()
		move, searchMetric := e.agentFor(player).FindMove(e.Board.Copy())

		if legal := e.Board.LegalMoves(); utils.FindIndex(legal, move) == -1 {
			log.Warn().Msgf("player %s returned illegal column %d, playing column %d instead", player, move, legal[0])
			move = legal[0]
		}
		e.Board.ApplyMove(move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Column:       move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %s played column %d\n%s", step, player, move, e.Board)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Status = e.Board.Status()
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, gameMetric.Status)
	return e.Board.Status(), gameMetric, moveMetrics
}

func (e *Engine) agentFor(player game.Player) agent.Agent {
	if player == game.PlayerA {
		return e.Agents[0]
	}
	return e.Agents[1]
}
