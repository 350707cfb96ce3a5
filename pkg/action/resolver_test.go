package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := Resolver{}

	assertResult := func(t *testing.T, cmd Command, v View, expected Result) {
		t.Helper()

		res, err := r.Resolve(cmd, v)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
	}

	t.Run("blind", func(t *testing.T) {
		assertResult(t, Command{Seat: 1, Action: Blind, Amount: 25}, View{CurrentPlayer: 3, Chips: 1000}, Result{
			Action:     Blind,
			Committed:  25,
			Bet:        25,
			HighestBet: 25,
		})
	})

	t.Run("short blind goes all-in", func(t *testing.T) {
		assertResult(t, Command{Seat: 2, Action: Blind, Amount: 50}, View{CurrentPlayer: 3, Chips: 30, HighestBet: 25}, Result{
			Action:     Blind,
			Committed:  30,
			Bet:        30,
			HighestBet: 30,
			AllIn:      true,
		})
	})

	t.Run("fold", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: Fold}, View{HighestBet: 50, Chips: 100}, Result{
			Action:     Fold,
			HighestBet: 50,
			Folded:     true,
		})
	})

	t.Run("check", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: Check}, View{HighestBet: 50, CurrentBet: 50, Chips: 100}, Result{
			Action:     Check,
			Bet:        50,
			HighestBet: 50,
		})
	})

	t.Run("call", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: Call}, View{HighestBet: 50, CurrentBet: 25, Chips: 100}, Result{
			Action:     Call,
			Committed:  25,
			Bet:        50,
			HighestBet: 50,
		})
	})

	t.Run("call for everything becomes all-in", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: Call}, View{HighestBet: 500, Chips: 100}, Result{
			Action:     AllIn,
			Committed:  100,
			Bet:        100,
			HighestBet: 500,
			AllIn:      true,
		})
	})

	t.Run("bet", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: Bet, Amount: 100}, View{Chips: 1000}, Result{
			Action:     Bet,
			Committed:  100,
			Bet:        100,
			HighestBet: 100,
			Reopens:    true,
		})
	})

	t.Run("raise", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: Raise, Amount: 200}, View{HighestBet: 100, CurrentBet: 50, Chips: 1000}, Result{
			Action:     Raise,
			Committed:  150,
			Bet:        200,
			HighestBet: 200,
			Reopens:    true,
		})
	})

	t.Run("all-in over the bet reopens", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: AllIn}, View{HighestBet: 100, Chips: 300}, Result{
			Action:     AllIn,
			Committed:  300,
			Bet:        300,
			HighestBet: 300,
			AllIn:      true,
			Reopens:    true,
		})
	})

	t.Run("all-in under the bet", func(t *testing.T) {
		assertResult(t, Command{Seat: 0, Action: AllIn}, View{HighestBet: 100, Chips: 40}, Result{
			Action:     AllIn,
			Committed:  40,
			Bet:        40,
			HighestBet: 100,
			AllIn:      true,
		})
	})
}

func TestResolver_Resolve_illegal(t *testing.T) {
	r := Resolver{}

	assertIllegal := func(t *testing.T, cmd Command, v View, expectedErr string) {
		t.Helper()

		res, err := r.Resolve(cmd, v)
		assert.EqualError(t, err, expectedErr)
		assert.IsType(t, IllegalActionError(""), err)
		assert.Equal(t, Result{}, res)
	}

	assertIllegal(t, Command{Seat: 1, Action: Check}, View{CurrentPlayer: 0}, "it is not your turn")
	assertIllegal(t, Command{Seat: 0, Action: Check}, View{Folded: true}, "you cannot act for the rest of the hand")
	assertIllegal(t, Command{Seat: 0, Action: Blind, Amount: 25}, View{AllIn: true}, "you cannot act for the rest of the hand")
	assertIllegal(t, Command{Seat: 0, Action: "discard"}, View{}, "discard is not a valid action")
	assertIllegal(t, Command{Seat: 0, Action: Blind}, View{Chips: 100}, "blind must be greater than ${0}")
	assertIllegal(t, Command{Seat: 0, Action: Check}, View{HighestBet: 50, Chips: 100}, "you cannot check with an active bet")
	assertIllegal(t, Command{Seat: 0, Action: Call}, View{Chips: 100}, "you cannot call without an active bet")
	assertIllegal(t, Command{Seat: 0, Action: Bet, Amount: 100}, View{HighestBet: 50, Chips: 100}, "you cannot bet when there is an active bet, raise instead")
	assertIllegal(t, Command{Seat: 0, Action: Raise, Amount: 50}, View{HighestBet: 50, Chips: 100}, "your raise of ${50} must be greater than the previous bet of ${50}")
	assertIllegal(t, Command{Seat: 0, Action: Raise, Amount: 500}, View{HighestBet: 50, Chips: 100}, "your bet of ${500} exceeds your chips")
	assertIllegal(t, Command{Seat: 0, Action: AllIn}, View{Chips: 0}, "you have no chips to go all-in with")
}
