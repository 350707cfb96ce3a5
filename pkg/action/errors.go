package action

import "fmt"

// IllegalActionError is returned when a player attempts an action the rules do not allow
// It is an expected outcome, the caller should prompt the player again
type IllegalActionError string

func (i IllegalActionError) Error() string {
	return string(i)
}

func newIllegalActionError(format string, a ...interface{}) IllegalActionError {
	return IllegalActionError(fmt.Sprintf(format, a...))
}

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = IllegalActionError("it is not your turn")

// ErrCannotAct is returned when a folded or all-in player tries to act
var ErrCannotAct = IllegalActionError("you cannot act for the rest of the hand")
