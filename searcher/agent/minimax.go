package agent

import (
	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/searcher"
	"time"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that builds and scores a fresh game tree for every move.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(state game.State, role game.Role, deadline time.Time) (game.Move, metrics.SearchMetric, error) {
	return a.minimax.Search(state, role, deadline)
}
