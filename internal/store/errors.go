package store

import "errors"

// ErrNotFound is returned when an operation addresses a game that does
// not exist (for example renaming a game that was just deleted).
var ErrNotFound = errors.New("not found")

// ErrInvalidRound is returned when a round fails referential checks:
// an unknown contract tier, or an attacker or called player that does
// not belong to the round's game.
var ErrInvalidRound = errors.New("invalid round")
