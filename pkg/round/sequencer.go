package round

// Increment moves the turn along after a completed player action
// It finishes the hand when no more betting can happen, schedules the next street when the
// action is back at the stopping point, and otherwise passes the turn to the next seat that can act.
func (r *Round) Increment() error {
	if !r.state.IsActive || r.finished {
		return ErrRoundNotActive
	}

	if r.pending != nil {
		return ErrTransitionPending
	}

	if r.handIsOver() {
		return r.finish()
	}

	n := len(r.players)
	candidate := r.state.CurrentPlayer
	for i := 0; i < n; i++ {
		candidate = (candidate + 1) % n

		if candidate == r.state.StoppingPoint {
			r.logger.WithField("street", r.state.BettingRound.String()).Debug("street closed")
			r.schedule(r.options.StreetDelay, r.nextStreet)
			r.emit(EventStateUpdated)
			return nil
		}

		if r.canAct(candidate) {
			r.state.CurrentPlayer = candidate
			r.emit(EventStateUpdated)
			return nil
		}
	}

	// every seat was skipped without reaching the stopping point, nobody is left to act
	return r.finish()
}

// handIsOver returns true if no more betting can happen this hand
func (r *Round) handIsOver() bool {
	unfolded := len(r.players) - len(r.state.PlayersFolded)
	if unfolded < 2 {
		return true
	}

	actors := make([]int, 0, unfolded)
	for seat := range r.players {
		if r.canAct(seat) {
			actors = append(actors, seat)
		}
	}

	switch len(actors) {
	case 0:
		return true
	case 1:
		// the last player who can act still has to respond to an all-in they have not matched
		return r.players[actors[0]].CurrentBet >= r.state.HighestBet
	}

	return false
}

// advanceToActor moves the turn off a seat that cannot act, the stopping point is left alone
func (r *Round) advanceToActor() {
	n := len(r.players)
	for i := 0; i < n; i++ {
		seat := (r.state.CurrentPlayer + i) % n
		if r.canAct(seat) {
			r.state.CurrentPlayer = seat
			return
		}
	}
}
