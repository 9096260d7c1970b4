// Package tictactoe implements tic-tac-toe the way a general game player sees it: both roles
// move every turn, and the role not in control can only play noop.
package tictactoe

import (
	"fmt"
	"ggp/game"
	"strings"
)

const (
	X game.Role = "xplayer"
	O game.Role = "oplayer"
)

const (
	Win  = game.MaxGoal
	Draw = 50
	Loss = game.MinGoal
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

type Move struct {
	Noop bool
	Cell int // 0..8, row-major
}

var Noop = Move{Noop: true}

func Mark(row, col int) Move {
	return Move{Cell: row*3 + col}
}

func (m Move) String() string {
	if m.Noop {
		return "noop"
	}
	return fmt.Sprintf("(mark %d %d)", m.Cell/3+1, m.Cell%3+1)
}

type State struct {
	Board   [9]byte // 'x', 'o' or 0
	Control game.Role
}

func (s State) String() string {
	var sb strings.Builder
	for i, c := range s.Board {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('|')
		}
		if c == 0 {
			c = '.'
		}
		sb.WriteByte(c)
	}
	sb.WriteString(" control=")
	sb.WriteString(string(s.Control))
	return sb.String()
}

func (s State) winner() byte {
	for _, line := range lines {
		c := s.Board[line[0]]
		if c != 0 && c == s.Board[line[1]] && c == s.Board[line[2]] {
			return c
		}
	}
	return 0
}

func (s State) full() bool {
	for _, c := range s.Board {
		if c == 0 {
			return false
		}
	}
	return true
}

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

func (Rules) Roles() []game.Role {
	return []game.Role{X, O}
}

func (Rules) InitialState() game.State {
	return State{Control: X}
}

func mark(role game.Role) byte {
	if role == X {
		return 'x'
	}
	return 'o'
}

func opponent(role game.Role) game.Role {
	if role == X {
		return O
	}
	return X
}

func toState(state game.State, sentinel error) (State, error) {
	s, ok := state.(State)
	if !ok {
		return State{}, fmt.Errorf("%w: unexpected state type %T", sentinel, state)
	}
	return s, nil
}

func checkRole(role game.Role, sentinel error) error {
	if role != X && role != O {
		return fmt.Errorf("%w: unknown role %q", sentinel, role)
	}
	return nil
}

func (r Rules) IsTerminal(state game.State) bool {
	s, ok := state.(State)
	return ok && (s.winner() != 0 || s.full())
}

func (r Rules) Goal(state game.State, role game.Role) (int, error) {
	s, err := toState(state, game.ErrGoal)
	if err != nil {
		return 0, err
	}
	if err := checkRole(role, game.ErrGoal); err != nil {
		return 0, err
	}

	switch s.winner() {
	case mark(role):
		return Win, nil
	case mark(opponent(role)):
		return Loss, nil
	}
	if !s.full() {
		return 0, fmt.Errorf("%w: state %v is not terminal", game.ErrGoal, s)
	}
	return Draw, nil
}

func (r Rules) LegalMoves(state game.State, role game.Role) ([]game.Move, error) {
	s, err := toState(state, game.ErrMoveDefinition)
	if err != nil {
		return nil, err
	}
	if err := checkRole(role, game.ErrMoveDefinition); err != nil {
		return nil, err
	}
	if r.IsTerminal(s) {
		return nil, nil
	}

	if role != s.Control {
		return []game.Move{Noop}, nil
	}
	var moves []game.Move
	for cell, c := range s.Board {
		if c == 0 {
			moves = append(moves, Move{Cell: cell})
		}
	}
	return moves, nil
}

// NextStates folds the opponent's choices into the successors of each of role's moves.
func (r Rules) NextStates(state game.State, role game.Role) ([]game.Successors, error) {
	moves, err := r.LegalMoves(state, role)
	if err != nil {
		return nil, err
	}
	replies, err := r.LegalMoves(state, opponent(role))
	if err != nil {
		return nil, err
	}

	successors := make([]game.Successors, 0, len(moves))
	for _, move := range moves {
		states := make([]game.State, 0, len(replies))
		for _, reply := range replies {
			next, err := r.NextState(state, map[game.Role]game.Move{role: move, opponent(role): reply})
			if err != nil {
				return nil, err
			}
			states = append(states, next)
		}
		successors = append(successors, game.Successors{Move: move, States: states})
	}
	return successors, nil
}

func (r Rules) NextState(state game.State, moves map[game.Role]game.Move) (game.State, error) {
	s, err := toState(state, game.ErrTransition)
	if err != nil {
		return nil, err
	}
	if r.IsTerminal(s) {
		return nil, fmt.Errorf("%w: state %v is terminal", game.ErrTransition, s)
	}

	for _, role := range r.Roles() {
		move, ok := moves[role].(Move)
		if !ok {
			return nil, fmt.Errorf("%w: no move for role %s", game.ErrTransition, role)
		}
		if role != s.Control {
			if !move.Noop {
				return nil, fmt.Errorf("%w: role %s is not in control", game.ErrTransition, role)
			}
			continue
		}
		if move.Noop || move.Cell < 0 || move.Cell > 8 || s.Board[move.Cell] != 0 {
			return nil, fmt.Errorf("%w: illegal move %v for role %s", game.ErrTransition, move, role)
		}
		s.Board[move.Cell] = mark(role)
	}
	s.Control = opponent(s.Control)
	return s, nil
}
