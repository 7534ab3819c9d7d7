package agent

import (
	"math"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play. It samples moves from
// the search's visit distribution instead of always playing the best move,
// so that repeated games explore different openings.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if !(temperature > 0) {
		panic("temperature must be positive")
	}
	return trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a trainingAgent) FindMove(board *game.Board) (int, metrics.SearchMetric) {
	_, metric := a.mcts.FindNextMove(board)
	policy := adjustTemperature(a.mcts.Tree().Policy(), a.temperature)
	return sample(board.LegalMoves(), policy, a.rng.Float64()), metric
}

func adjustTemperature(policy map[int]float64, temperature float64) map[int]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[int]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample walks moves in order and returns the one whose cumulative
// probability first exceeds sampled.
func sample(moves []int, policy map[int]float64, sampled float64) int {
	cumulative := 0.0
	lastMove := moves[len(moves)-1]
	for _, move := range moves {
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
