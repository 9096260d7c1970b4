package game

// Rules extends a StateMachine with what is needed to actually play a match.
type Rules interface {
	StateMachine
	Roles() []Role
	InitialState() State
	// NextState applies one joint move (one move per role) to state.
	NextState(state State, moves map[Role]Move) (State, error)
}
