package engine

import "ggp/experiments/metrics"

type Engine interface {
	// Run plays a match till a terminal state or a max number of turns is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
