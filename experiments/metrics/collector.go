package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration   time.Duration
	Iterations int
	Playouts   int // Iterations that reached a fresh node and played it out
	Nodes      int // Nodes created in the tree, root excluded
	StopReason string
}

type MoveMetric struct {
	Step   int
	Player int
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // -1 when the top score is shared
	Points         []int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start()
	AddIteration()
	AddPlayout()
	AddNodes(n int)
	Complete(stopReason string) SearchMetric
}

type collector struct {
	startTime  time.Time
	iterations atomic.Int32
	playouts   atomic.Int32
	nodes      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.playouts.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int32(n))
}

func (m *collector) Complete(stopReason string) SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Iterations: int(m.iterations.Load()),
		Playouts:   int(m.playouts.Load()),
		Nodes:      int(m.nodes.Load()),
		StopReason: stopReason,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                       {}
func (m *dummyCollector) AddIteration()                {}
func (m *dummyCollector) AddPlayout()                  {}
func (m *dummyCollector) AddNodes(n int)               {}
func (m *dummyCollector) Complete(string) SearchMetric { return SearchMetric{} }
