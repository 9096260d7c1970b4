package game

import "errors"

var (
	ErrTransition     = errors.New("transition definition error")
	ErrGoal           = errors.New("goal definition error")
	ErrMoveDefinition = errors.New("move definition error")
)
