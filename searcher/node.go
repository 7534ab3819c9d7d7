package searcher

import "connectfour/game"

// node is one position in the search tree. Children and parent are indices
// into the owning Tree's arena.
type node struct {
	board    *game.Board
	parent   int
	children []int
	visits   int
	score    float64     // Rollouts won by the player who moved into this node
	mover    game.Player // Player to move from this position
	move     int         // Column played from the parent, noMove at the root
	leaf     bool
	terminal bool
}

// record adds the outcome of a rollout batch. The score counts the wins of
// the player who just moved, i.e. the opponent of the player to move.
func (n *node) record(runs, plusWins, minusWins int) {
	n.visits += runs
	if n.mover == game.PlayerB {
		n.score += float64(plusWins)
	} else {
		n.score += float64(minusWins)
	}
}

func (n *node) winRate() float64 {
	if n.visits == 0 {
		panic("cannot compute win rate: 0 visits")
	}
	return n.score / float64(n.visits)
}
