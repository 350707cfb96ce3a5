package handeval

import (
	"fmt"

	"holdem-round/pkg/deck"

	"github.com/paulhankin/poker"
)

// toPoker converts a deck card into the evaluator's representation
// The evaluator ranks aces as 1, we rank them as 14
func toPoker(c *deck.Card) (poker.Card, error) {
	var invalid poker.Card
	if c == nil {
		return invalid, ErrNilCard
	}

	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	default:
		return invalid, fmt.Errorf("unknown suit: %s", c.Suit)
	}

	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}

	card, err := poker.MakeCard(s, r)
	if err != nil {
		return invalid, fmt.Errorf("could not convert %s: %w", deck.CardToString(c), err)
	}

	return card, nil
}

func toPokerCards(cards deck.Hand) ([]poker.Card, error) {
	converted := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPoker(c)
		if err != nil {
			return nil, err
		}

		converted[i] = pc
	}

	return converted, nil
}
