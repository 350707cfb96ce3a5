package round

// EventType is the kind of event a round emits
type EventType int

// EventType constants
const (
	// EventStateUpdated is sent any time the round changes and observers should re-render
	EventStateUpdated EventType = iota + 1
	// EventRoundEnded is sent exactly once, after the results have been shown
	EventRoundEnded
)

func (e EventType) String() string {
	switch e {
	case EventStateUpdated:
		return "state-updated"
	case EventRoundEnded:
		return "round-ended"
	}

	return "unknown"
}

// Event carries a snapshot of the round taken when the event was emitted
type Event struct {
	Type     EventType
	Snapshot *Snapshot
}

// Events returns the channel events are delivered on
func (r *Round) Events() <-chan Event {
	return r.events
}

func (r *Round) emit(t EventType) {
	if r.closed {
		return
	}

	e := Event{
		Type:     t,
		Snapshot: r.snapshot(),
	}

	select {
	case r.events <- e:
	default:
		r.logger.WithField("event", t.String()).Warn("event channel is full, dropping event")
	}
}
