package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(board *game.Board) (int, metrics.SearchMetric) {
	moves := board.LegalMoves()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
