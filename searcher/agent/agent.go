package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

type Agent interface {
	// FindMove returns the column to play on board and performance metrics (if collected) from the search
	FindMove(board *game.Board) (int, metrics.SearchMetric)
}
