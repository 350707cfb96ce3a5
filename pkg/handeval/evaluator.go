package handeval

import (
	"holdem-round/pkg/deck"

	"github.com/paulhankin/poker"
)

// PlayerCards are the cards a player can make a hand from (hole cards and the board)
type PlayerCards struct {
	ID    int64
	Cards deck.Hand
}

// Result is the outcome of a showdown
// IDs contains every player that tied for the best hand
type Result struct {
	IDs  []int64 `json:"ids"`
	Desc string  `json:"desc"`
}

// Evaluator determines the winners of a showdown
type Evaluator struct{}

// DetermineWinners returns the ids of the players holding the best hand, in the order they were
// provided, along with a description of the winning hand
func (e Evaluator) DetermineWinners(players []PlayerCards) (*Result, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	tiers := newTiers()
	var best []poker.Card
	var bestStrength int16
	for i, p := range players {
		strength, cards, err := evaluate(p)
		if err != nil {
			return nil, err
		}

		tiers.add(p.ID, strength)
		if i == 0 || strength > bestStrength {
			bestStrength = strength
			best = cards
		}
	}

	desc, err := poker.Describe(best)
	if err != nil {
		return nil, err
	}

	return &Result{
		IDs:  tiers.sorted()[0],
		Desc: desc,
	}, nil
}

// Strength returns the strength of the best five-card hand, higher is better
func Strength(cards deck.Hand) (int16, error) {
	strength, _, err := evaluate(PlayerCards{Cards: cards})
	return strength, err
}

// Describe returns a human readable name for the best five-card hand
func Describe(cards deck.Hand) (string, error) {
	_, best, err := evaluate(PlayerCards{Cards: cards})
	if err != nil {
		return "", err
	}

	return poker.Describe(best)
}

// evaluate returns the strength along with the cards that make up the hand
func evaluate(p PlayerCards) (int16, []poker.Card, error) {
	cards, err := toPokerCards(p.Cards)
	if err != nil {
		return 0, nil, err
	}

	switch len(cards) {
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], cards)
		return poker.Eval7(&a7), cards, nil
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], cards)
		return poker.Eval5(&a5), cards, nil
	case 6:
		strength, five := bestOfFive(cards)
		return strength, five, nil
	}

	return 0, nil, CardCountError{PlayerID: p.ID, Got: len(cards)}
}

// bestOfFive tries every five card subset
func bestOfFive(cards []poker.Card) (int16, []poker.Card) {
	var best int16
	var bestCards []poker.Card

	n := len(cards)
	var choose [5]int
	var five [5]poker.Card
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := 0; i < 5; i++ {
				five[i] = cards[choose[i]]
			}

			if s := poker.Eval5(&five); bestCards == nil || s > best {
				best = s
				bestCards = append([]poker.Card(nil), five[:]...)
			}

			return
		}

		for i := start; i <= n-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}

	rec(0, 0)
	return best, bestCards
}
