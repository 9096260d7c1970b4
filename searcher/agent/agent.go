package agent

import (
	"ggp/experiments/metrics"
	"ggp/game"
	"time"
)

type Agent interface {
	// FindMove returns a move for role and the metrics of the search that produced it.
	// A zero deadline means no time bound.
	FindMove(state game.State, role game.Role, deadline time.Time) (game.Move, metrics.SearchMetric, error)
}
