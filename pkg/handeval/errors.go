package handeval

import (
	"errors"
	"fmt"
)

// ErrNilCard is returned when a hand contains a nil card
var ErrNilCard = errors.New("hand contains a nil card")

// ErrNoPlayers is returned when winners are requested for an empty list
var ErrNoPlayers = errors.New("no players to evaluate")

// CardCountError is returned when a hand cannot be evaluated with the number of cards given
type CardCountError struct {
	PlayerID int64
	Got      int
}

func (c CardCountError) Error() string {
	return fmt.Sprintf("player %d: expected 5–7 cards, got %d", c.PlayerID, c.Got)
}
