package action

// Command is a request from a seat to perform an action
// For Bet and Raise, Amount is the total the player is betting to on this street.
// For Blind, Amount is the size of the blind.
type Command struct {
	Seat   int
	Action Action
	Amount int
}

// View is the read-only slice of round state a command is resolved against
type View struct {
	CurrentPlayer int
	HighestBet    int

	// the acting player
	Chips      int
	CurrentBet int
	Folded     bool
	AllIn      bool
}

// Result describes how the round state changes when a command is applied
type Result struct {
	// Action is what was actually performed, a call for more than the player has becomes an all-in
	Action Action
	// Committed is how many chips move from the player to the pot
	Committed int
	// Bet is the player's total bet on the street after the action
	Bet int
	// HighestBet is the highest bet on the street after the action
	HighestBet int
	Folded     bool
	AllIn      bool
	// Reopens is true if the action raised the highest bet, every other player must respond to it
	Reopens bool
}

// Resolver applies the betting rules to a command
type Resolver struct{}

// Resolve validates the command and returns the resulting state change
// Blinds are forced bets and skip the turn check
func (Resolver) Resolve(cmd Command, v View) (Result, error) {
	if !cmd.Action.IsValid() {
		return Result{}, newIllegalActionError("%s is not a valid action", string(cmd.Action))
	}

	if v.Folded || v.AllIn {
		return Result{}, ErrCannotAct
	}

	if cmd.Action != Blind && cmd.Seat != v.CurrentPlayer {
		return Result{}, ErrNotYourTurn
	}

	res := Result{
		Action:     cmd.Action,
		Bet:        v.CurrentBet,
		HighestBet: v.HighestBet,
	}

	switch cmd.Action {
	case Blind:
		if cmd.Amount <= 0 {
			return Result{}, newIllegalActionError("blind must be greater than ${0}")
		}

		commit(&res, v, cmd.Amount-v.CurrentBet)
	case Fold:
		res.Folded = true
	case Check:
		if v.CurrentBet != v.HighestBet {
			return Result{}, newIllegalActionError("you cannot check with an active bet")
		}
	case Call:
		toCall := v.HighestBet - v.CurrentBet
		if toCall <= 0 {
			return Result{}, newIllegalActionError("you cannot call without an active bet")
		}

		commit(&res, v, toCall)
	case Bet, Raise:
		if cmd.Action == Bet && v.HighestBet > 0 {
			return Result{}, newIllegalActionError("you cannot bet when there is an active bet, raise instead")
		}

		if cmd.Amount <= v.HighestBet {
			return Result{}, newIllegalActionError("your raise of ${%d} must be greater than the previous bet of ${%d}", cmd.Amount, v.HighestBet)
		}

		if cmd.Amount-v.CurrentBet > v.Chips {
			return Result{}, newIllegalActionError("your bet of ${%d} exceeds your chips", cmd.Amount)
		}

		commit(&res, v, cmd.Amount-v.CurrentBet)
	case AllIn:
		if v.Chips <= 0 {
			return Result{}, newIllegalActionError("you have no chips to go all-in with")
		}

		commit(&res, v, v.Chips)
	}

	return res, nil
}

// commit moves up to amount chips into the pot, capping at the player's chips
func commit(res *Result, v View, amount int) {
	if amount >= v.Chips {
		amount = v.Chips
		res.AllIn = true
		if res.Action != Blind {
			res.Action = AllIn
		}
	}

	res.Committed = amount
	res.Bet = v.CurrentBet + amount
	if res.Bet > res.HighestBet {
		res.HighestBet = res.Bet
		if res.Action != Blind {
			res.Reopens = true
		}
	}
}
