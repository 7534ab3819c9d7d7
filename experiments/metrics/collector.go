package metrics

import (
	"sync/atomic"
	"time"

	"connectfour/game"
)

type SearchMetric struct {
	ThinkingTime time.Duration
	Sims         int
	Exploration  float64
	Workers      int
	Duration     time.Duration
	Visits       int // Tree growth steps
	Rollouts     int // Random playouts, including those run at node creation
	TreeDepth    int
	TreeSize     int
	WinRate      float64 // Win rate of the chosen move
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	SearchMetric
}

type GameMetric struct {
	Rows          int
	Cols          int
	StartingAgent int // AgentConfig.ID
	Winner        int // AgentConfig.ID, 0 for a draw
	Status        game.Status
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(thinkingTime time.Duration, sims int, exploration float64, workers int)
	AddVisit()
	AddRollouts(n int)
	Complete(depth, size int, winRate float64) SearchMetric
}

type collector struct {
	thinkingTime time.Duration
	sims         int
	exploration  float64
	workers      int
	startTime    time.Time
	visits       atomic.Int64
	rollouts     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(thinkingTime time.Duration, sims int, exploration float64, workers int) {
	m.startTime = time.Now()
	m.thinkingTime = thinkingTime
	m.sims = sims
	m.exploration = exploration
	m.workers = workers
	m.visits.Store(0)
	m.rollouts.Store(0)
}

func (m *collector) AddVisit() {
	m.visits.Add(1)
}

func (m *collector) AddRollouts(n int) {
	m.rollouts.Add(int64(n))
}

func (m *collector) Complete(depth, size int, winRate float64) SearchMetric {
	return SearchMetric{
		ThinkingTime: m.thinkingTime,
		Sims:         m.sims,
		Exploration:  m.exploration,
		Workers:      m.workers,
		Duration:     time.Since(m.startTime),
		Visits:       int(m.visits.Load()),
		Rollouts:     int(m.rollouts.Load()),
		TreeDepth:    depth,
		TreeSize:     size,
		WinRate:      winRate,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(time.Duration, int, float64, int)  {}
func (m *dummyCollector) AddVisit()                               {}
func (m *dummyCollector) AddRollouts(int)                         {}
func (m *dummyCollector) Complete(int, int, float64) SearchMetric { return SearchMetric{} }
