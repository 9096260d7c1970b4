package agent

import (
	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/searcher"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	machine game.StateMachine
	rng     *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move. Not safe for
// concurrent use.
func NewRandomAgent(machine game.StateMachine, seed uint64) Agent {
	return &randomAgent{
		machine: machine,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(state game.State, role game.Role, deadline time.Time) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves, err := a.machine.LegalMoves(state, role)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}

	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Strategy: "random", Duration: time.Since(start)}, nil
}
