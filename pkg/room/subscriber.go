package room

import (
	"fmt"

	"holdem-round/pkg/round"
)

// Subscriber receives the events of every round the dealer runs
type Subscriber struct {
	name string

	// send is a channel for sending events to the subscriber
	send chan round.Event
}

// NewSubscriber returns a new subscriber
func NewSubscriber(name string) *Subscriber {
	return &Subscriber{
		name: name,
		send: make(chan round.Event, 256),
	}
}

// Send sends an event to the subscriber
// A subscriber that is not keeping up misses the event
func (s *Subscriber) Send(e round.Event) bool {
	select {
	case s.send <- e:
		return true
	default:
		return false
	}
}

// Events returns a read-only channel
func (s *Subscriber) Events() <-chan round.Event {
	return s.send
}

// String returns a traceable identifier for the subscriber
func (s *Subscriber) String() string {
	return fmt.Sprintf("subscriber:%s", s.name)
}
