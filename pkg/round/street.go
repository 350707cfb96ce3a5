package round

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// startNewBettingRound opens the next street, or finishes the hand if the river is closed
func (r *Round) startNewBettingRound() error {
	if r.state.BettingRound == River {
		return r.finish()
	}

	for seat, p := range r.players {
		p.Status = StatusWaiting
		p.CurrentBet = 0
		p.ActiveInRound = !r.isFolded(seat)

		if r.isFolded(seat) {
			p.Status = StatusFolded
		} else if r.isAllIn(seat) {
			p.Status = StatusAllIn
		}
	}

	r.state.BettingRound++
	r.state.HighestBet = 0

	firstToAct := r.blinds.SmallBlindSeat
	if r.state.BettingRound == PreFlop {
		firstToAct = r.blinds.UnderTheGunSeat
	}

	r.state.CurrentPlayer = firstToAct
	r.state.StoppingPoint = firstToAct

	if r.state.BettingRound != PreFlop {
		if err := r.drawCommunityCards(); err != nil {
			return err
		}
	}

	r.logger.WithFields(logrus.Fields{
		"street": r.state.BettingRound.String(),
		"seat":   firstToAct,
	}).Debug("street opened")

	return nil
}

// drawCommunityCards burns a card, then deals the flop or a single card for the turn and river
func (r *Round) drawCommunityCards() error {
	if _, err := r.deck.Draw(); err != nil {
		return fmt.Errorf("could not burn a card: %w", err)
	}

	count := 1
	if len(r.state.Board) == 0 {
		count = 3
	}

	for i := 0; i < count; i++ {
		card, err := r.deck.Draw()
		if err != nil {
			return fmt.Errorf("could not deal the %s: %w", r.state.BettingRound, err)
		}

		r.state.Board.AddCard(card)
	}

	r.sendLogMessages(newLogMessageWithCards(r.state.Board[len(r.state.Board)-count:], "dealer dealt the %s", r.state.BettingRound))
	return nil
}

// nextStreet is the deferred transition scheduled when a street closes
func (r *Round) nextStreet() error {
	if err := r.startNewBettingRound(); err != nil {
		return err
	}

	if r.finished {
		return nil
	}

	if r.handIsOver() {
		return r.finish()
	}

	r.advanceToActor()
	r.emit(EventStateUpdated)
	return nil
}
