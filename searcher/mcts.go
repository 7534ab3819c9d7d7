package searcher

import (
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	duration    time.Duration
	episodes    int
	sims        int
	exploration float64
	workers     int
	rng         *rand.Rand
	clock       Clock
	metrics     metrics.Collector
	tree        *Tree
}

// WithDuration sets the thinking time for each decision.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes replaces the thinking time by a fixed number of tree growth
// steps.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithSims sets the number of rollouts run for every new node.
func WithSims(sims int) Option {
	return func(m *MCTS) {
		m.sims = sims
	}
}

// WithExploration sets the UCB1 exploration constant.
func WithExploration(exploration float64) Option {
	return func(m *MCTS) {
		m.exploration = exploration
	}
}

func WithRolloutWorkers(workers int) Option {
	return func(m *MCTS) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = newRand(seed)
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithClock(clock Clock) Option {
	return func(m *MCTS) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		sims:        meta.Sims,
		exploration: meta.Exploration,
		workers:     meta.RolloutWorkers,
		clock:       time.Now,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	if m.sims < 1 {
		panic("Must run at least one rollout per node")
	}
	if !(m.exploration > 0) {
		panic("Exploration constant must be positive")
	}
	if m.rng == nil {
		m.rng = newRand(uint64(time.Now().UnixNano()))
	}
	return m
}

// ChooseMove searches board for thinkingTime and returns the column to play.
func ChooseMove(board *game.Board, thinkingTime time.Duration, sims int, exploration float64) int {
	m := NewMCTS(WithDuration(thinkingTime), WithSims(sims), WithExploration(exploration))
	move, _ := m.FindNextMove(board)
	return move
}

// FindNextMove grows a fresh tree for board until the time budget (or the
// episode count) is used up and returns the move with the highest win rate.
// It panics if the game on board is already decided.
func (m *MCTS) FindNextMove(board *game.Board) (int, metrics.SearchMetric) {
	if len(board.LegalMoves()) == 0 {
		panic("cannot search a decided position")
	}

	m.metrics.Start(m.duration, m.sims, m.exploration, m.workers)
	m.tree = NewTree(board, m.exploration, m.sims, m.rng, WithTreeWorkers(m.workers), WithTreeMetrics(m.metrics))
	if m.episodes > 0 {
		m.iterate()
	} else {
		m.countdown()
	}

	move := m.tree.BestMove()
	winRates := m.tree.WinRates()
	metric := m.metrics.Complete(m.tree.Depth(), m.tree.Size(), winRates[move])

	if e := log.Debug(); e.Enabled() {
		e.Int("column", move).
			Int("visits", m.tree.Visits()).
			Int("depth", metric.TreeDepth).
			Int("size", metric.TreeSize).
			Interface("win_rates", winRates).
			Msg("chose move")
	}
	return move, metric
}

// Tree returns the tree built by the last search.
func (m *MCTS) Tree() *Tree {
	return m.tree
}

func (m *MCTS) iterate() {
	for i := 0; i < m.episodes; i++ {
		m.tree.Visit()
	}
}

// countdown always completes the first step, which expands the root, so a
// move is available however short the budget.
func (m *MCTS) countdown() {
	start := m.clock()
	for {
		m.tree.Visit()
		if m.clock().Sub(start) >= m.duration {
			return
		}
	}
}
