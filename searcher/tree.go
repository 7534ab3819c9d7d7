package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/utils"

	"golang.org/x/exp/rand"
)

type TreeOption func(t *Tree)

// WithTreeWorkers splits every rollout batch across workers goroutines.
func WithTreeWorkers(workers int) TreeOption {
	return func(t *Tree) {
		if workers > 0 {
			t.workers = workers
		}
	}
}

func WithTreeMetrics(collector metrics.Collector) TreeOption {
	return func(t *Tree) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

// Tree is a Monte Carlo search tree rooted at one position. Nodes are kept
// in an arena and only ever added; the whole tree is dropped once a move has
// been chosen.
type Tree struct {
	exploration float64
	sims        int
	workers     int
	rng         *rand.Rand
	metrics     metrics.Collector
	nodes       []node
}

// NewTree creates a tree for a copy of board. The root runs its first
// rollout batch immediately.
func NewTree(board *game.Board, exploration float64, sims int, rng *rand.Rand, options ...TreeOption) *Tree {
	t := &Tree{
		exploration: exploration,
		sims:        sims,
		workers:     1,
		rng:         rng,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	t.addNode(board.Copy(), noParent)
	return t
}

// addNode appends a node for board, evaluates it with a rollout batch and
// backs the result up to the root.
func (t *Tree) addNode(board *game.Board, parent int) int {
	move := noMove
	if parent != noParent {
		_, move, _ = board.MostRecentPosition()
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		board:    board,
		parent:   parent,
		mover:    board.Player(),
		move:     move,
		leaf:     true,
		terminal: board.Status().IsOver(),
	})

	plusWins, minusWins := t.rollout(board)
	t.backup(id, t.sims, plusWins, minusWins)
	return id
}

func (t *Tree) rollout(board *game.Board) (int, int) {
	t.metrics.AddRollouts(t.sims)
	return parallelRollout(board, t.sims, t.workers, t.rng)
}

// backup records a rollout batch on id and every ancestor of id.
func (t *Tree) backup(id, runs, plusWins, minusWins int) {
	for id != noParent {
		n := &t.nodes[id]
		n.record(runs, plusWins, minusWins)
		id = n.parent
	}
}

// Visit grows the tree by one step: it descends by UCB1 to a leaf, then
// expands the leaf, or rolls out once more if the leaf's game is decided.
func (t *Tree) Visit() {
	id := rootID
	for !t.nodes[id].leaf {
		id = t.favoriteChild(id)
	}

	if t.nodes[id].terminal {
		plusWins, minusWins := t.rollout(t.nodes[id].board)
		t.backup(id, t.sims, plusWins, minusWins)
	} else {
		t.expand(id)
	}
	t.metrics.AddVisit()
}

// favoriteChild returns the child with the highest UCB1 value. The first
// child wins ties.
func (t *Tree) favoriteChild(id int) int {
	parent := &t.nodes[id]
	policy := newUCB1(t.exploration, parent.visits)

	best := utils.ArgMax(parent.children, func(c int) float64 {
		return policy.evaluate(t.nodes[c].score, t.nodes[c].visits)
	})
	return parent.children[best]
}

// expand adds one child per legal move, in column order.
func (t *Tree) expand(id int) {
	board := t.nodes[id].board
	for _, col := range board.LegalMoves() {
		child := board.Copy()
		child.ApplyMove(col)
		c := t.addNode(child, id) // May grow the arena
		t.nodes[id].children = append(t.nodes[id].children, c)
	}
	t.nodes[id].leaf = false
}

// Depth returns the length of the longest path from the root.
func (t *Tree) Depth() int {
	return t.depth(rootID)
}

func (t *Tree) depth(id int) int {
	children := t.nodes[id].children
	if len(children) == 0 {
		return 0
	}
	deepest := 0
	for _, c := range children {
		deepest = max(deepest, t.depth(c))
	}
	return 1 + deepest
}

// Size returns the number of leaves under the root. Internal nodes are not
// counted.
func (t *Tree) Size() int {
	return t.size(rootID)
}

func (t *Tree) size(id int) int {
	children := t.nodes[id].children
	if len(children) == 0 {
		return 1
	}
	total := 0
	for _, c := range children {
		total += t.size(c)
	}
	return total
}

// Visits returns the number of rollouts recorded at the root.
func (t *Tree) Visits() int {
	return t.nodes[rootID].visits
}

// WinRates returns the empirical win rate of every move from the root.
func (t *Tree) WinRates() map[int]float64 {
	rates := make(map[int]float64, len(t.nodes[rootID].children))
	for _, c := range t.nodes[rootID].children {
		rates[t.nodes[c].move] = t.nodes[c].winRate()
	}
	return rates
}

// Policy returns each root move's share of the rollouts recorded below the
// root's children.
func (t *Tree) Policy() map[int]float64 {
	children := t.nodes[rootID].children
	total := 0
	for _, c := range children {
		total += t.nodes[c].visits
	}

	policy := make(map[int]float64, len(children))
	for _, c := range children {
		policy[t.nodes[c].move] = float64(t.nodes[c].visits) / float64(total)
	}
	return policy
}

// BestMove returns the root move with the highest win rate. The first move
// wins ties.
func (t *Tree) BestMove() int {
	children := t.nodes[rootID].children
	if len(children) == 0 {
		panic("root has no children")
	}

	best := utils.ArgMax(children, func(c int) float64 {
		return t.nodes[c].winRate()
	})
	return t.nodes[children[best]].move
}
