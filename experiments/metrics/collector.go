package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one move search.
type SearchMetric struct {
	Cutoff      int // -1 when unbounded
	Duration    time.Duration
	Nodes       int // Nodes visited, root included
	Evaluations int // Leaves scored by the heuristic
	Terminals   int // Leaves scored as a win
	Prunes      int // Nodes that stopped before their last child
	MaxDepth    int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Hash   uint64
	SearchMetric
}

type GameMetric struct {
	ID            string
	Goat          string // Goat agent name
	Tiger         string // Tiger agent name
	Winner        string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	GoatsCaptured int
}

type Collector interface {
	Start(cutoff int)
	AddNode(depth int)
	AddEvaluation()
	AddTerminal()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	cutoff      int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	terminals   atomic.Int64
	prunes      atomic.Int64
	maxDepth    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(cutoff int) {
	m.startTime = time.Now()
	m.cutoff = cutoff
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.terminals.Store(0)
	m.prunes.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddNode(depth int) {
	m.nodes.Add(1)
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Cutoff:      m.cutoff,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Terminals:   int(m.terminals.Load()),
		Prunes:      int(m.prunes.Load()),
		MaxDepth:    int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int)       {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) AddPrune()              {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
