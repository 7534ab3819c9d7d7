// meta/meta.go
package meta

import "time"

// Rows and Cols define the standard board size.
const (
	Rows = 6
	Cols = 7
)

// Sims defines the number of random playouts run for each new tree node.
const Sims = 100

// Exploration defines the UCB1 exploration constant. Useful values lie
// between 0.5 and 2; higher values favor less visited moves.
const Exploration = 1.4

// ThinkingTime defines the wall-clock budget for one decision.
const ThinkingTime = time.Second

// RolloutWorkers defines the number of goroutines sharing a rollout batch.
const RolloutWorkers = 1
