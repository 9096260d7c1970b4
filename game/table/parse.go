package table

import (
	"fmt"
	"ggp/game"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Description is the YAML form of a table game:
//
//	roles: [xplayer, oplayer]
//	initial: root
//	states:
//	  root:
//	    moves:
//	      xplayer:
//	        - move: a
//	          next: [won]
//	  won:
//	    goals: {xplayer: 100, oplayer: 0}
type Description struct {
	Roles   []string                    `yaml:"roles"`
	Initial string                      `yaml:"initial"`
	States  map[string]StateDescription `yaml:"states"`
}

type StateDescription struct {
	Goals map[string]int               `yaml:"goals"`
	Moves map[string][]MoveDescription `yaml:"moves"`
}

type MoveDescription struct {
	Move string   `yaml:"move"`
	Next []string `yaml:"next"`
}

// Parse reads a YAML game description and checks that it is complete: every referenced state is
// described, and every terminal state has a goal in [game.MinGoal, game.MaxGoal] for every role.
func Parse(r io.Reader) (*Machine, error) {
	var desc Description
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to decode game description: %w", err)
	}
	return desc.Machine()
}

func (d Description) Machine() (*Machine, error) {
	if len(d.Roles) == 0 {
		return nil, fmt.Errorf("game description has no roles")
	}
	if _, ok := d.States[d.Initial]; !ok {
		return nil, fmt.Errorf("initial state %q is not described", d.Initial)
	}

	roles := make([]game.Role, len(d.Roles))
	for i, role := range d.Roles {
		roles[i] = game.Role(role)
	}
	m := New(d.Initial, roles...)

	// Sorted for reproducible error messages
	names := make([]string, 0, len(d.States))
	for name := range d.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		state := d.States[name]
		if state.Goals != nil {
			if len(state.Moves) > 0 {
				return nil, fmt.Errorf("terminal state %q has moves", name)
			}
			goals := make(map[game.Role]int, len(roles))
			for _, role := range roles {
				goal, ok := state.Goals[string(role)]
				if !ok {
					return nil, fmt.Errorf("terminal state %q has no goal for role %s", name, role)
				}
				if goal < game.MinGoal || goal > game.MaxGoal {
					return nil, fmt.Errorf("goal %d of role %s in state %q is out of range", goal, role, name)
				}
				goals[role] = goal
			}
			m.Terminal(name, goals)
			continue
		}

		m.entry(State(name))
		for _, role := range roles {
			for _, move := range state.Moves[string(role)] {
				for _, next := range move.Next {
					if _, ok := d.States[next]; !ok {
						return nil, fmt.Errorf("move %q in state %q leads to undescribed state %q", move.Move, name, next)
					}
				}
				m.Move(name, role, move.Move, move.Next...)
			}
		}
	}
	return m, nil
}
