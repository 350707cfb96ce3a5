package round

import (
	"encoding/json"
	"fmt"

	"holdem-round/pkg/action"
	"holdem-round/pkg/deck"
)

// BettingRound is a street of betting
type BettingRound int

// constants for BettingRound
const (
	NotStarted BettingRound = iota
	PreFlop
	Flop
	Turn
	River
)

func (b BettingRound) String() string {
	switch b {
	case NotStarted:
		return "not-started"
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	return ""
}

// MarshalJSON encodes JSON
func (b BettingRound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(b),
		Name: b.String(),
	})
}

// Status is what the player last did on the current street
type Status string

// Status constants
const (
	StatusWaiting Status = ""
	StatusFolded  Status = "folded"
	StatusAllIn   Status = "all-in"
)

func statusFromAction(a action.Action) Status {
	switch a {
	case action.Fold:
		return StatusFolded
	case action.AllIn:
		return StatusAllIn
	}

	return Status(a)
}

// Player is a seated player
// Players are owned by the table, chip counts live on after the round is discarded
type Player struct {
	ID            int64     `json:"id"`
	Pocket        deck.Hand `json:"pocket"`
	ChipCount     int       `json:"chipCount"`
	Status        Status    `json:"status"`
	CurrentBet    int       `json:"currentBet"`
	ActiveInRound bool      `json:"isActiveInRound"`
}

// NewPlayer returns a player with a chip stack
func NewPlayer(id int64, chips int) *Player {
	return &Player{
		ID:        id,
		ChipCount: chips,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("player %d", p.ID)
}

func (p *Player) clone() Player {
	cp := *p
	cp.Pocket = p.Pocket.Clone()
	return cp
}

// Winners are the players who won the pot
// Desc is empty when the pot was won uncontested
type Winners struct {
	IDs  []int64 `json:"ids"`
	Desc string  `json:"desc"`
}

// State is the state of a round
type State struct {
	Board         deck.Hand     `json:"board"`
	Pot           int           `json:"pot"`
	HighestBet    int           `json:"highestBet"`
	CurrentPlayer int           `json:"currentPlayer"`
	StoppingPoint int           `json:"stoppingPoint"`
	BettingRound  BettingRound  `json:"bettingRound"`
	PlayersFolded []int         `json:"playersFolded"`
	PlayersAllIn  []int         `json:"playersAllIn"`
	IsActive      bool          `json:"isActive"`
	Winners       *Winners      `json:"winners"`
	Payouts       map[int64]int `json:"payouts"`
}

func (s State) clone() State {
	cp := s
	cp.Board = s.Board.Clone()
	cp.PlayersFolded = append([]int(nil), s.PlayersFolded...)
	cp.PlayersAllIn = append([]int(nil), s.PlayersAllIn...)

	if s.Winners != nil {
		cp.Winners = &Winners{
			IDs:  append([]int64(nil), s.Winners.IDs...),
			Desc: s.Winners.Desc,
		}
	}

	if s.Payouts != nil {
		cp.Payouts = make(map[int64]int, len(s.Payouts))
		for id, amount := range s.Payouts {
			cp.Payouts[id] = amount
		}
	}

	return cp
}

// Snapshot is a copy of the round taken at a point in time
// Waiting is true while the dealer is pausing before the next street or the end of the round
type Snapshot struct {
	ID       string   `json:"id"`
	Dealer   int      `json:"dealer"`
	Blinds   Blinds   `json:"blinds"`
	State    State    `json:"state"`
	Players  []Player `json:"players"`
	Waiting  bool     `json:"waiting"`
	Finished bool     `json:"finished"`
}

func (r *Round) snapshot() *Snapshot {
	players := make([]Player, len(r.players))
	for i, p := range r.players {
		players[i] = p.clone()
	}

	return &Snapshot{
		ID:       r.id,
		Dealer:   r.dealer,
		Blinds:   r.blinds,
		State:    r.state.clone(),
		Players:  players,
		Waiting:  r.pending != nil,
		Finished: r.finished,
	}
}
