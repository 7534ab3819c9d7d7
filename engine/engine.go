package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

type Runner interface {
	// Run plays a game till it is won or drawn
	Run() (status game.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
