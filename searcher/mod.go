package searcher

import (
	"errors"
	"fmt"
	"ggp/game"
)

// Bounds of the score range the evaluator assumes. Every terminal goal the state machine
// reports must lie in [MinScore, MaxScore]; out-of-range goals silently produce wrong choices.
const (
	MinScore = game.MinGoal
	MaxScore = game.MaxGoal
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Strategy selects how the game tree is built before it is scored.
type Strategy string

const (
	// BreadthFirst expands layer by layer until the deadline passes or the frontier is empty.
	BreadthFirst Strategy = "breadth-first-until-deadline"
	// FixedDepth expands depth-first down to a fixed number of plies, ignoring the deadline.
	FixedDepth Strategy = "fixed-depth-lookahead"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case BreadthFirst, FixedDepth:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}
