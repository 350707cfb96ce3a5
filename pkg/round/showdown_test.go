package round

import (
	"errors"
	"testing"

	"holdem-round/pkg/handeval"

	"github.com/stretchr/testify/assert"
)

func TestDetermineWinners(t *testing.T) {
	a := assert.New(t)

	board := hand("2c,7d,9h,11s,13d")
	p1 := &Player{ID: 1, Pocket: hand("14s,14c"), ActiveInRound: true}
	p2 := &Player{ID: 2, Pocket: hand("13h,13s"), ActiveInRound: true}
	p3 := &Player{ID: 3, Pocket: hand("13c,12c"), ActiveInRound: false}

	winners, err := DetermineWinners([]*Player{p1, p2, p3}, board)
	a.NoError(err)
	a.Equal([]int64{2}, winners.IDs)
	a.NotEmpty(winners.Desc)

	// a single player still in the hand wins without a showdown
	p2.ActiveInRound = false
	winners, err = DetermineWinners([]*Player{p1, p2, p3}, board)
	a.NoError(err)
	a.Equal(&Winners{IDs: []int64{1}}, winners)

	p1.ActiveInRound = false
	winners, err = DetermineWinners([]*Player{p1, p2, p3}, board)
	a.Nil(winners)
	a.Equal(ErrNoActivePlayers, err)
}

func TestDetermineWinners_tie(t *testing.T) {
	a := assert.New(t)

	board := hand("14h,13h,12h,11h,10h")
	players := []*Player{
		{ID: 1, Pocket: hand("2c,3d"), ActiveInRound: true},
		{ID: 2, Pocket: hand("4c,5d"), ActiveInRound: true},
		{ID: 3, Pocket: hand("6c,7d"), ActiveInRound: false},
	}

	winners, err := DetermineWinners(players, board)
	a.NoError(err)
	a.ElementsMatch([]int64{1, 2}, winners.IDs)
}

func TestDetermineWinners_evaluator(t *testing.T) {
	a := assert.New(t)

	players := []*Player{
		{ID: 1, Pocket: hand("2c,3d"), ActiveInRound: true},
		{ID: 2, Pocket: hand("4c,5d"), ActiveInRound: true},
	}

	eval := &recordingEvaluator{result: &handeval.Result{IDs: []int64{2}, Desc: "a pair"}}
	winners, err := determineWinners(eval, players, hand("9s,9c,10d,12h,14c"))
	a.NoError(err)
	a.Equal(&Winners{IDs: []int64{2}, Desc: "a pair"}, winners)
	a.Equal(1, eval.calls)

	players[0].ActiveInRound = false
	_, err = determineWinners(eval, players, nil)
	a.NoError(err)
	a.Equal(1, eval.calls, "an uncontested pot is not evaluated")

	failing := errors.New("bad cards")
	players[0].ActiveInRound = true
	_, err = determineWinners(&recordingEvaluator{err: failing}, players, nil)
	a.True(errors.Is(err, failing))
}

func TestRound_payout(t *testing.T) {
	a := assert.New(t)

	r, players := newTestRound(t, []int{0, 0, 0, 0}, 0, "")
	r.state.Pot = 100
	r.state.Winners = &Winners{IDs: []int64{4, 2, 3}}
	r.payout()

	// the remainder goes to the first winner left of the dealer, seat 1
	a.Equal(map[int64]int{2: 34, 3: 33, 4: 33}, r.state.Payouts)
	a.Equal(0, players[0].ChipCount)
	a.Equal(34, players[1].ChipCount)
	a.Equal(33, players[2].ChipCount)
	a.Equal(33, players[3].ChipCount)
	a.Equal(100, r.state.Pot)

	r, players = newTestRound(t, []int{10, 10, 10, 10}, 2, "")
	r.state.Pot = 5
	r.state.Winners = &Winners{IDs: []int64{1, 3}}
	r.payout()

	// left of the dealer at seat 2 is seat 3, then seat 0
	a.Equal(map[int64]int{1: 3, 3: 2}, r.state.Payouts)
	a.Equal(13, players[0].ChipCount)
	a.Equal(12, players[2].ChipCount)

	r, players = newTestRound(t, []int{10, 10}, 0, "")
	r.state.Pot = 50
	r.state.Winners = &Winners{IDs: []int64{1, 2}}
	r.payout()
	a.Equal(35, players[0].ChipCount)
	a.Equal(35, players[1].ChipCount)
}

func TestRound_runOutBoard(t *testing.T) {
	a := assert.New(t)

	r, _ := newTestRound(t, []int{100, 100}, 0, "9d,2c,3c,4c,10d,6c,11d,8c")
	r.state.BettingRound = PreFlop
	r.state.Board = hand("")

	a.NoError(r.runOutBoard())
	a.Equal(River, r.state.BettingRound)
	a.Equal(hand("2c,3c,4c,6c,8c"), r.state.Board)
}
