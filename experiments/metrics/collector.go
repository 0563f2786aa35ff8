package metrics

import (
	"time"

	"reversi/game"
)

type SearchMetric struct {
	Depth    int
	Colour   game.Colour
	Nodes    int
	Leaves   int
	Rollouts int
	Wins     int
	Duration time.Duration
}

type GameMetric struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Plies     int
	Passes    int
	Declines  int
	Dark      int
	Light     int
	Winner    string // "dark", "light" or "" for a tie
}

// BranchRecord is one first move out of the search root with its statistics.
type BranchRecord struct {
	Rank  int
	Move  string
	Wins  uint32
	Plays uint32
}

func (r BranchRecord) WinRate() float64 {
	if r.Plays == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Plays)
}

// Collector gathers counters while a tree is built and evaluated.
type Collector interface {
	Start(depth int, colour game.Colour)
	AddNode()
	AddLeaf()
	AddRollout(win bool)
	Complete() SearchMetric
}

type collector struct {
	metric    SearchMetric
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, colour game.Colour) {
	m.metric = SearchMetric{Depth: depth, Colour: colour}
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddLeaf() {
	m.metric.Leaves++
}

func (m *collector) AddRollout(win bool) {
	m.metric.Rollouts++
	if win {
		m.metric.Wins++
	}
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, colour game.Colour) {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddLeaf()                            {}
func (m *dummyCollector) AddRollout(win bool)                 {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
