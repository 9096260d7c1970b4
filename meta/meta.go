// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of games played concurrently by experiments.
const GO_ROUTINES = 8

// SAFETY_MARGIN is the part of each move clock reserved for scoring the tree.
const SAFETY_MARGIN = 1000 * time.Millisecond

// MOVE_CLOCK defines the default time budget per move.
const MOVE_CLOCK = 3 * time.Second

// MAX_DEPTH defines the default lookahead of the fixed-depth strategy.
const MAX_DEPTH = 4

// MAX_TURNS caps the length of a match.
const MAX_TURNS = 300
