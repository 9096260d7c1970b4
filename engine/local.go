package engine

import (
	"fmt"
	"ggp/experiments/metrics"
	"ggp/game"
	"ggp/meta"
	"ggp/searcher/agent"
	"ggp/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	Rules    game.Rules
	State    game.State
	Agents   []agent.Agent // One per role, in the order of Rules.Roles()
	Clock    time.Duration // Time budget per move, zero for no bound
	MaxTurns int
}

func LocalEngine(rules game.Rules, agents []agent.Agent, clock time.Duration) *Local {
	if len(rules.Roles()) != len(agents) {
		panic("number of roles does not match number of agents")
	}

	return &Local{
		Rules:    rules,
		State:    rules.InitialState(),
		Agents:   agents,
		Clock:    clock,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the match loop: every turn each role picks a move for the same state, then the
// joint move is applied.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	roles := e.Rules.Roles()
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("match started with roles %v", roles)

	turn := 1
	for !e.Rules.IsTerminal(e.State) && turn <= e.MaxTurns {
		joint := make(map[game.Role]game.Move, len(roles))
		for i, role := range roles {
			move, metric, err := e.findMove(i, role)
			if err != nil {
				return gameMetric, moveMetrics, err
			}
			joint[role] = move
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turn,
				Role:         string(role),
				SearchMetric: metric,
			})
		}

		next, err := e.Rules.NextState(e.State, joint)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("failed to apply turn %d: %w", turn, err)
		}
		log.Debug().Int("turn", turn).Msgf("%v -> %v", joint, next)

		e.State = next
		gameMetric.TotalMoves++
		turn++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if !e.Rules.IsTerminal(e.State) {
		log.Info().Msgf("stopped after %d turns (no result yet)", e.MaxTurns)
		return gameMetric, moveMetrics, nil
	}

	gameMetric.Goals = make(map[string]int, len(roles))
	for _, role := range roles {
		goal, err := e.Rules.Goal(e.State, role)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("failed to read goal of %s: %w", role, err)
		}
		gameMetric.Goals[string(role)] = goal
	}
	gameMetric.Winner = winner(roles, gameMetric.Goals)

	log.Info().Msgf("match over after %d turns, goals %v", gameMetric.TotalMoves, gameMetric.Goals)
	return gameMetric, moveMetrics, nil
}

// findMove asks the agent of role for a move and replaces illegal answers by the first legal move.
func (e *Local) findMove(i int, role game.Role) (game.Move, metrics.SearchMetric, error) {
	var deadline time.Time
	if e.Clock > 0 {
		deadline = time.Now().Add(e.Clock)
	}

	move, metric, err := e.Agents[i].FindMove(e.State, role, deadline)
	if err != nil {
		return nil, metric, fmt.Errorf("agent of %s failed: %w", role, err)
	}
	if !deadline.IsZero() {
		if overshoot := time.Since(deadline); overshoot > 0 {
			log.Warn().Str("role", string(role)).Dur("overshoot", overshoot).Msg("agent exceeded its move clock")
		}
	}

	legal, err := e.Rules.LegalMoves(e.State, role)
	if err != nil {
		return nil, metric, fmt.Errorf("failed to list legal moves of %s: %w", role, err)
	}
	if utils.FindIndex(legal, move) == -1 {
		if len(legal) == 0 {
			return nil, metric, fmt.Errorf("no legal moves for %s in %v", role, e.State)
		}
		log.Warn().Str("role", string(role)).Msgf("agent returned illegal move %v, forcing %v", move, legal[0])
		return legal[0], metric, nil
	}
	return move, metric, nil
}

// winner returns the role with the strictly highest goal, or "" if several share it.
func winner(roles []game.Role, goals map[string]int) string {
	best := ""
	bestGoal := -1
	tied := false
	for _, role := range roles {
		goal := goals[string(role)]
		switch {
		case goal > bestGoal:
			best, bestGoal, tied = string(role), goal, false
		case goal == bestGoal:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return best
}
