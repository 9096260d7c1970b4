package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	MaxDepth    int
	Duration    time.Duration
	Expansions  int
	Nodes       int
	Terminals   int
	Depth       int // Deepest layer reached by the tree
	DeadlineHit bool
	Fallback    bool // Move was taken from the legal moves because the root had no children
}

type MoveMetric struct {
	Step int
	Role string
	SearchMetric
}

type GameMetric struct {
	Winner     string // Role with the strictly highest goal, "" on a draw
	Goals      map[string]int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type AgentConfig struct {
	ID       int
	Kind     string // "minimax" or "random"
	Strategy string
	MaxDepth int
	Clock    time.Duration
}

type Collector interface {
	Start(strategy string, maxDepth int)
	AddExpansion()
	AddNode(terminal bool, depth int)
	SetDeadlineHit(value bool)
	SetFallback(value bool)
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	maxDepth    int
	startTime   time.Time
	expansions  atomic.Int32
	nodes       atomic.Int32
	terminals   atomic.Int32
	depth       atomic.Int32
	deadlineHit atomic.Bool
	fallback    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, maxDepth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.maxDepth = maxDepth
	m.expansions.Store(0)
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.depth.Store(0)
	m.deadlineHit.Store(false)
	m.fallback.Store(false)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddNode(terminal bool, depth int) {
	m.nodes.Add(1)
	if terminal {
		m.terminals.Add(1)
	}
	for {
		current := m.depth.Load()
		if int32(depth) <= current || m.depth.CompareAndSwap(current, int32(depth)) {
			return
		}
	}
}

func (m *collector) SetDeadlineHit(value bool) {
	m.deadlineHit.Store(value)
}

func (m *collector) SetFallback(value bool) {
	m.fallback.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		MaxDepth:    m.maxDepth,
		Duration:    time.Since(m.startTime),
		Expansions:  int(m.expansions.Load()),
		Nodes:       int(m.nodes.Load()),
		Terminals:   int(m.terminals.Load()),
		Depth:       int(m.depth.Load()),
		DeadlineHit: m.deadlineHit.Load(),
		Fallback:    m.fallback.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, maxDepth int) {}
func (m *dummyCollector) AddExpansion()                       {}
func (m *dummyCollector) AddNode(terminal bool, depth int)    {}
func (m *dummyCollector) SetDeadlineHit(value bool)           {}
func (m *dummyCollector) SetFallback(value bool)              {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
