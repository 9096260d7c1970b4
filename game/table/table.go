// Package table provides a game whose rules are given as an explicit state table: for every
// state, the moves of each role with their successor states, or the goals if it is terminal.
package table

import (
	"fmt"
	"ggp/game"
)

type State string

func (s State) String() string {
	return string(s)
}

type Move string

func (m Move) String() string {
	return string(m)
}

type transition struct {
	move Move
	next []game.State
}

type entry struct {
	goals map[game.Role]int // Non-nil for terminal states
	moves map[game.Role][]transition
	err   error
}

// Machine is a game.StateMachine backed by a state table.
type Machine struct {
	roles   []game.Role
	initial State
	states  map[State]*entry
}

func New(initial string, roles ...game.Role) *Machine {
	return &Machine{
		roles:   roles,
		initial: State(initial),
		states:  map[State]*entry{},
	}
}

func (m *Machine) entry(state State) *entry {
	e, ok := m.states[state]
	if !ok {
		e = &entry{moves: map[game.Role][]transition{}}
		m.states[state] = e
	}
	return e
}

// Move adds a move of role in state from, leading to each of next. Moves are enumerated in the
// order they were added.
func (m *Machine) Move(from string, role game.Role, move string, next ...string) *Machine {
	states := make([]game.State, len(next))
	for i, s := range next {
		states[i] = State(s)
		m.entry(State(s))
	}
	e := m.entry(State(from))
	e.moves[role] = append(e.moves[role], transition{move: Move(move), next: states})
	return m
}

// Terminal marks state as terminal with the given goals.
func (m *Machine) Terminal(state string, goals map[game.Role]int) *Machine {
	e := m.entry(State(state))
	e.goals = goals
	return m
}

// Fail makes every query about state fail with err.
func (m *Machine) Fail(state string, err error) *Machine {
	m.entry(State(state)).err = err
	return m
}

func (m *Machine) Roles() []game.Role {
	return m.roles
}

func (m *Machine) InitialState() game.State {
	return m.initial
}

func (m *Machine) lookup(state game.State, sentinel error) (*entry, error) {
	s, ok := state.(State)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected state type %T", sentinel, state)
	}
	e, ok := m.states[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown state %q", sentinel, s)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

func (m *Machine) NextStates(state game.State, role game.Role) ([]game.Successors, error) {
	e, err := m.lookup(state, game.ErrTransition)
	if err != nil {
		return nil, err
	}

	transitions := e.moves[role]
	successors := make([]game.Successors, len(transitions))
	for i, t := range transitions {
		successors[i] = game.Successors{Move: t.move, States: t.next}
	}
	return successors, nil
}

func (m *Machine) IsTerminal(state game.State) bool {
	s, ok := state.(State)
	if !ok {
		return false
	}
	e, ok := m.states[s]
	return ok && e.goals != nil
}

func (m *Machine) Goal(state game.State, role game.Role) (int, error) {
	e, err := m.lookup(state, game.ErrGoal)
	if err != nil {
		return 0, err
	}
	if e.goals == nil {
		return 0, fmt.Errorf("%w: state %v is not terminal", game.ErrGoal, state)
	}
	goal, ok := e.goals[role]
	if !ok {
		return 0, fmt.Errorf("%w: no goal for role %s in state %v", game.ErrGoal, role, state)
	}
	return goal, nil
}

func (m *Machine) LegalMoves(state game.State, role game.Role) ([]game.Move, error) {
	e, err := m.lookup(state, game.ErrMoveDefinition)
	if err != nil {
		return nil, err
	}

	transitions := e.moves[role]
	moves := make([]game.Move, len(transitions))
	for i, t := range transitions {
		moves[i] = t.move
	}
	return moves, nil
}
