package round

import (
	"fmt"

	"holdem-round/pkg/action"
)

// Blinds are the forced bets and the seats that post them
type Blinds struct {
	SmallBlind      int `json:"smallBlind"`
	BigBlind        int `json:"bigBlind"`
	SmallBlindSeat  int `json:"smallBlindSeat"`
	BigBlindSeat    int `json:"bigBlindSeat"`
	UnderTheGunSeat int `json:"underTheGunSeat"`
}

func resolveBlinds(players []*Player, dealer int, opts Options) (Blinds, error) {
	n := len(players)
	if n == 0 || dealer < 0 || dealer >= n {
		return Blinds{}, fmt.Errorf("%w: dealer %d with %d players", ErrBlindSeat, dealer, n)
	}

	b := Blinds{
		SmallBlind:      opts.SmallBlind,
		BigBlind:        opts.BigBlind,
		SmallBlindSeat:  (dealer + 1) % n,
		BigBlindSeat:    (dealer + 2) % n,
		UnderTheGunSeat: (dealer + 3) % n,
	}

	for seat, p := range players {
		if p == nil {
			return Blinds{}, fmt.Errorf("%w: seat %d is empty", ErrBlindSeat, seat)
		}
	}

	return b, nil
}

// postBlinds forces the small and big blind to bet
func (r *Round) postBlinds() error {
	posts := []struct {
		seat   int
		amount int
	}{
		{r.blinds.SmallBlindSeat, r.blinds.SmallBlind},
		{r.blinds.BigBlindSeat, r.blinds.BigBlind},
	}

	for _, post := range posts {
		if _, err := r.apply(action.Command{
			Seat:   post.seat,
			Action: action.Blind,
			Amount: post.amount,
		}); err != nil {
			return fmt.Errorf("could not post the blind for seat %d: %w", post.seat, err)
		}
	}

	return nil
}
