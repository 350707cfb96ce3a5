package main

import (
	"holdem-round/internal/rng"
	"holdem-round/pkg/action"
	"holdem-round/pkg/round"
)

// bot picks a random action, weighted towards passive play
type bot struct {
	name     string
	rng      rng.Generator
	bigBlind int
}

func newBot(name string, gen rng.Generator, bigBlind int) *bot {
	return &bot{
		name:     name,
		rng:      gen,
		bigBlind: bigBlind,
	}
}

func (b *bot) decide(snap *round.Snapshot, p round.Player) (action.Action, int) {
	toCall := snap.State.HighestBet - p.CurrentBet
	roll := b.rng.Intn(100)

	if toCall <= 0 {
		switch {
		case roll < 65:
			return action.Check, 0
		case roll < 92:
			if snap.State.HighestBet > 0 {
				return action.Raise, snap.State.HighestBet + b.bigBlind*(1+b.rng.Intn(3))
			}

			return action.Bet, b.bigBlind * (1 + b.rng.Intn(3))
		case roll < 95:
			return action.AllIn, 0
		default:
			return action.Fold, 0
		}
	}

	switch {
	case roll < 30:
		return action.Fold, 0
	case roll < 85:
		return action.Call, 0
	case roll < 97:
		return action.Raise, snap.State.HighestBet * 2
	default:
		return action.AllIn, 0
	}
}

// fallback is always legal for the player whose turn it is
func fallback(snap *round.Snapshot, p round.Player) (action.Action, int) {
	if snap.State.HighestBet <= p.CurrentBet {
		return action.Check, 0
	}

	return action.Fold, 0
}
