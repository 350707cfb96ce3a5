package room

import (
	"holdem-round/pkg/round"
)

const logMessageLimit = 25

// addLogMessages adds a lot message
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*round.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// drainLogMessages collects whatever the round has sent so far
// Note: this must only be called from within the run loop
func (d *Dealer) drainLogMessages() {
	if d.round == nil {
		return
	}

	for {
		select {
		case messages := <-d.round.LogChan():
			d.addLogMessages(messages)
		default:
			return
		}
	}
}
