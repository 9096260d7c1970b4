package searcher

import (
	"ggp/experiments/metrics"
	"ggp/game"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// SelectedMoveEvent is published after every decision.
type SelectedMoveEvent struct {
	Moves   []game.Move // All legal moves of the role
	Move    game.Move
	Elapsed time.Duration
}

type Observer func(event SelectedMoveEvent)

// Minimax picks moves by building a fresh game tree for every decision and scoring it with the
// minimax rule. The tree is discarded once the move is returned.
type Minimax struct {
	machine   game.StateMachine
	strategy  Strategy
	maxDepth  int
	margin    time.Duration
	now       func() time.Time
	metrics   metrics.Collector
	observers []Observer
}

func WithStrategy(strategy Strategy) Option {
	return func(m *Minimax) {
		if strategy != "" {
			m.strategy = strategy
		}
	}
}

// WithMaxDepth sets the lookahead of the FixedDepth strategy. A negative depth means no bound.
func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		m.maxDepth = depth
	}
}

// WithSafetyMargin stops tree building this long before the deadline, leaving time to score it.
func WithSafetyMargin(margin time.Duration) Option {
	return func(m *Minimax) {
		if margin >= 0 {
			m.margin = margin
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Minimax) {
		if now != nil {
			m.now = now
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func WithObserver(observer Observer) Option {
	return func(m *Minimax) {
		if observer != nil {
			m.observers = append(m.observers, observer)
		}
	}
}

func NewMinimax(machine game.StateMachine, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		machine:  machine,
		strategy: BreadthFirst,
		maxDepth: -1,
		now:      time.Now,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// SelectMove returns the move of role whose subtree has the best minimax score. A zero deadline
// means no time bound. When no child of the current state could be built in time, it falls back
// to the first legal move. Errors of the state machine are returned unchanged.
func (m *Minimax) SelectMove(state game.State, role game.Role, deadline time.Time) (game.Move, error) {
	move, _, err := m.Search(state, role, deadline)
	return move, err
}

// Search is SelectMove that also reports the metrics of the search.
func (m *Minimax) Search(state game.State, role game.Role, deadline time.Time) (game.Move, metrics.SearchMetric, error) {
	start := m.now()
	m.metrics.Start(string(m.strategy), m.maxDepth)

	root, err := m.BuildTree(state, role, deadline)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	moves, err := m.machine.LegalMoves(state, role)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	var move game.Move
	if best, ok := bestChild(root); ok {
		move = best.Move()
	} else {
		if len(moves) == 0 {
			return nil, metrics.SearchMetric{}, ErrNoLegalMoves
		}
		log.Warn().Str("role", string(role)).Msgf("no move could be searched in time, falling back to %v", moves[0])
		move = moves[0]
		m.metrics.SetFallback(true)
	}

	elapsed := m.now().Sub(start)
	metric := m.metrics.Complete()
	log.Debug().
		Str("role", string(role)).
		Str("strategy", string(m.strategy)).
		Int("nodes", metric.Nodes).
		Int("expansions", metric.Expansions).
		Dur("elapsed", elapsed).
		Msgf("selected move %v with score %d", move, root.Score())

	event := SelectedMoveEvent{Moves: moves, Move: move, Elapsed: elapsed}
	for _, observer := range m.observers {
		observer(event)
	}
	return move, metric, nil
}

// BuildTree builds the game tree of state from role's perspective with the configured strategy.
func (m *Minimax) BuildTree(state game.State, role game.Role, deadline time.Time) (*Node, error) {
	b := &builder{
		machine: m.machine,
		role:    role,
		now:     m.now,
		metrics: m.metrics,
	}

	if m.strategy == FixedDepth {
		return b.depthBounded(state, m.maxDepth)
	}
	if !deadline.IsZero() {
		deadline = deadline.Add(-m.margin)
	}
	return b.breadthFirst(state, deadline)
}
