package game

import "fmt"

// Role is a participant in the game. Scores are always computed from one role's perspective.
type Role string

// Move is an action available to a role in a given state. Implementations must be comparable.
type Move interface {
	fmt.Stringer
}

// State is a complete description of the game at one point in time. It is opaque to the searcher.
type State interface {
	fmt.Stringer
}

// Successors lists every state that may follow when a role plays Move. There can be several
// because the other roles' simultaneous choices are folded into the set.
type Successors struct {
	Move   Move
	States []State
}

// StateMachine is the only source of game-rule knowledge available to the searcher.
type StateMachine interface {
	// NextStates returns, in a deterministic order, every legal move of role and its successors.
	NextStates(state State, role Role) ([]Successors, error)
	IsTerminal(state State) bool
	// Goal returns the outcome of a terminal state for role, conventionally in [MinGoal, MaxGoal].
	Goal(state State, role Role) (int, error)
	LegalMoves(state State, role Role) ([]Move, error)
}

const (
	MinGoal = 0
	MaxGoal = 100
)
