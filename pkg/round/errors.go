package round

import (
	"errors"
	"fmt"
)

// ErrRoundNotActive is returned when the round is asked to progress before Start() or after it ended
var ErrRoundNotActive = errors.New("round is not active")

// ErrRoundAlreadyStarted is returned when Start() is called twice
var ErrRoundAlreadyStarted = errors.New("round has already started")

// ErrTransitionPending is returned when an action or increment arrives while the dealer is
// waiting to move to the next street
var ErrTransitionPending = errors.New("waiting on the dealer")

// ErrInvalidSeat is returned when an action references a seat that does not exist
var ErrInvalidSeat = errors.New("invalid seat")

// ErrNoActivePlayers is returned when a showdown is attempted without any active player
// This can only happen if the round state was corrupted
var ErrNoActivePlayers = errors.New("no active players at showdown")

// ErrBlindSeat is returned when the blinds cannot be resolved to a seated player
var ErrBlindSeat = errors.New("could not resolve the blind seats")

// PlayerCountError is an error on the number of players in the round
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}
