package round

import (
	"fmt"

	"holdem-round/pkg/deck"
	"holdem-round/pkg/handeval"

	"github.com/sirupsen/logrus"
)

// DetermineWinners returns the winners among the players still in the hand
// A lone remaining player wins without their cards being evaluated
func DetermineWinners(players []*Player, board deck.Hand) (*Winners, error) {
	return determineWinners(handeval.Evaluator{}, players, board)
}

func determineWinners(evaluator HandEvaluator, players []*Player, board deck.Hand) (*Winners, error) {
	active := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.ActiveInRound {
			active = append(active, p)
		}
	}

	switch len(active) {
	case 0:
		return nil, ErrNoActivePlayers
	case 1:
		return &Winners{IDs: []int64{active[0].ID}}, nil
	}

	hands := make([]handeval.PlayerCards, len(active))
	for i, p := range active {
		cards := make(deck.Hand, 0, len(p.Pocket)+len(board))
		cards = append(cards, p.Pocket...)
		cards = append(cards, board...)

		hands[i] = handeval.PlayerCards{
			ID:    p.ID,
			Cards: cards,
		}
	}

	result, err := evaluator.DetermineWinners(hands)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate the showdown: %w", err)
	}

	return &Winners{
		IDs:  result.IDs,
		Desc: result.Desc,
	}, nil
}

// finish settles the hand and schedules the end of the round
func (r *Round) finish() error {
	if r.finished {
		return nil
	}

	r.finished = true

	if r.contestants() > 1 {
		if err := r.runOutBoard(); err != nil {
			return err
		}
	}

	winners, err := determineWinners(r.evaluator, r.players, r.state.Board)
	if err != nil {
		return err
	}

	r.state.Winners = winners
	r.payout()

	r.logger.WithFields(logrus.Fields{
		"winners": winners.IDs,
		"pot":     r.state.Pot,
	}).Info("hand finished")

	r.emit(EventStateUpdated)
	r.schedule(r.options.FinishDelay, func() error {
		r.end()
		return nil
	})

	return nil
}

func (r *Round) contestants() int {
	count := 0
	for _, p := range r.players {
		if p.ActiveInRound {
			count++
		}
	}

	return count
}

// runOutBoard deals the streets nobody bet on so the showdown compares full hands
func (r *Round) runOutBoard() error {
	for len(r.state.Board) < 5 && r.state.BettingRound < River {
		r.state.BettingRound++
		if err := r.drawCommunityCards(); err != nil {
			return err
		}
	}

	return nil
}

// payout splits the pot between the winners
// Chips that do not divide evenly go to the first winner left of the dealer
func (r *Round) payout() {
	ids := r.state.Winners.IDs
	if len(ids) == 0 {
		return
	}

	share := r.state.Pot / len(ids)
	remainder := r.state.Pot % len(ids)

	won := make(map[int64]bool, len(ids))
	for _, id := range ids {
		won[id] = true
	}

	r.state.Payouts = make(map[int64]int, len(ids))

	n := len(r.players)
	for i := 1; i <= n; i++ {
		p := r.players[(r.dealer+i)%n]
		if !won[p.ID] {
			continue
		}

		amount := share + remainder
		remainder = 0

		p.ChipCount += amount
		r.state.Payouts[p.ID] = amount

		if r.state.Winners.Desc == "" {
			r.sendLogMessages(newLogMessage(p.ID, "{} won ${%d}", amount))
		} else {
			r.sendLogMessages(newLogMessage(p.ID, "{} won ${%d} with %s", amount, r.state.Winners.Desc))
		}
	}
}
