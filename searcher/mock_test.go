package searcher

import (
	"ggp/game"
	"ggp/game/table"
	"time"
)

const player game.Role = "player"

// countingMachine records how often each collaborator call is made.
type countingMachine struct {
	game.StateMachine
	nextStates int
	goals      int
}

func (c *countingMachine) NextStates(state game.State, role game.Role) ([]game.Successors, error) {
	c.nextStates++
	return c.StateMachine.NextStates(state, role)
}

func (c *countingMachine) Goal(state game.State, role game.Role) (int, error) {
	c.goals++
	return c.StateMachine.Goal(state, role)
}

func goal(score int) map[game.Role]int {
	return map[game.Role]int{player: score}
}

// twoPly: a leads to a terminal with goal 80, b to a terminal with goal 20.
func twoPly() *table.Machine {
	return table.New("root", player).
		Move("root", player, "a", "t80").
		Move("root", player, "b", "t20").
		Terminal("t80", goal(80)).
		Terminal("t20", goal(20))
}

// threePly: the opponent answers a with 80 or 30, and b with 50 or 60.
func threePly() *table.Machine {
	return table.New("root", player).
		Move("root", player, "a", "s1").
		Move("root", player, "b", "s2").
		Move("s1", player, "c", "t80").
		Move("s1", player, "d", "t30").
		Move("s2", player, "e", "t50").
		Move("s2", player, "f", "t60").
		Terminal("t80", goal(80)).
		Terminal("t30", goal(30)).
		Terminal("t50", goal(50)).
		Terminal("t60", goal(60))
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// steppingClock advances by step on every reading.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
