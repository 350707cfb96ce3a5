package room

import (
	"time"
)

// pendingHand is the next hand, dealt automatically once Start has passed
type pendingHand struct {
	Number int
	Start  time.Time
}

func newPendingHand(number int, delay time.Duration) *pendingHand {
	return &pendingHand{
		Number: number,
		Start:  time.Now().Add(delay),
	}
}

func (p *pendingHand) isDue() bool {
	return !time.Now().Before(p.Start)
}
