package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board *game.Board) (int, metrics.SearchMetric) {
	return a.mcts.FindNextMove(board)
}
