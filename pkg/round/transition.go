package round

import (
	"time"
)

type pendingTransition struct {
	Transition   func() error
	ExecuteAfter time.Time
}

// schedule queues a transition, only one can be pending at a time
func (r *Round) schedule(delay time.Duration, transition func() error) {
	if r.pending != nil {
		panic("a transition is already pending")
	}

	r.pending = &pendingTransition{
		Transition:   transition,
		ExecuteAfter: time.Now().Add(delay),
	}
}

// IsTransitionPending returns true if the dealer is waiting to move the round along
func (r *Round) IsTransitionPending() bool {
	return r.pending != nil
}

// Interval determines how often Tick() should be called
func (r *Round) Interval() time.Duration {
	return time.Millisecond * 100
}

// Tick applies a pending transition once it is due
// Returns true if the round changed
func (r *Round) Tick() (bool, error) {
	if r.closed || r.pending == nil {
		return false, nil
	}

	if time.Now().Before(r.pending.ExecuteAfter) {
		return false, nil
	}

	transition := r.pending.Transition
	// cleared first so the transition can schedule the next one
	r.pending = nil

	if err := transition(); err != nil {
		return true, err
	}

	return true, nil
}
