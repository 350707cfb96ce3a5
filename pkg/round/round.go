package round

import (
	"fmt"
	"time"

	"holdem-round/pkg/action"
	"holdem-round/pkg/deck"
	"holdem-round/pkg/handeval"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	minPlayers = 2
	maxPlayers = 10
)

// Deck is the source of cards for a round
type Deck interface {
	Draw() (*deck.Card, error)
}

// ActionResolver applies the betting rules to a player's command
type ActionResolver interface {
	Resolve(cmd action.Command, v action.View) (action.Result, error)
}

// HandEvaluator compares the hands at showdown
type HandEvaluator interface {
	DetermineWinners(players []handeval.PlayerCards) (*handeval.Result, error)
}

// Options configures a round
type Options struct {
	SmallBlind int
	BigBlind   int

	// StreetDelay is how long the dealer waits after a street closes before dealing the next one
	StreetDelay time.Duration
	// FinishDelay is how long the results are shown before the round ends
	FinishDelay time.Duration

	// Deck defaults to a freshly shuffled deck using Seed
	Deck Deck
	Seed int64

	Resolver  ActionResolver
	Evaluator HandEvaluator
}

// DefaultOptions returns the default options for a round
func DefaultOptions() Options {
	return Options{
		SmallBlind:  25,
		BigBlind:    50,
		StreetDelay: time.Second * 2,
		FinishDelay: time.Second * 3,
	}
}

// Round is a single hand of Texas Hold'em
type Round struct {
	id      string
	options Options
	logger  logrus.FieldLogger

	players []*Player
	dealer  int
	blinds  Blinds

	deck      Deck
	resolver  ActionResolver
	evaluator HandEvaluator

	state   State
	pending *pendingTransition

	started  bool
	finished bool
	ended    bool
	closed   bool

	events  chan Event
	logChan chan []*LogMessage
}

// New returns a new round
// players are referenced, not copied: the round updates their cards, bets and chip counts
func New(logger logrus.FieldLogger, players []*Player, dealer int, opts Options) (*Round, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	blinds, err := resolveBlinds(players, dealer, opts)
	if err != nil {
		return nil, err
	}

	d := opts.Deck
	if d == nil {
		shuffled := deck.New()
		shuffled.Shuffle(opts.Seed)
		d = shuffled
	}

	var resolver ActionResolver = action.Resolver{}
	if opts.Resolver != nil {
		resolver = opts.Resolver
	}

	var evaluator HandEvaluator = handeval.Evaluator{}
	if opts.Evaluator != nil {
		evaluator = opts.Evaluator
	}

	id := uuid.New().String()
	return &Round{
		id:      id,
		options: opts,
		logger: logger.WithFields(logrus.Fields{
			"round":  id,
			"dealer": dealer,
		}),
		players:   players,
		dealer:    dealer,
		blinds:    blinds,
		deck:      d,
		resolver:  resolver,
		evaluator: evaluator,
		state: State{
			Board:         make(deck.Hand, 0, 5),
			CurrentPlayer: -1,
			StoppingPoint: -1,
			BettingRound:  NotStarted,
			PlayersFolded: make([]int, 0),
			PlayersAllIn:  make([]int, 0),
		},
		events:  make(chan Event, 256),
		logChan: make(chan []*LogMessage, 256),
	}, nil
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return fmt.Errorf("big blind must be >= the small blind")
	}

	if opts.StreetDelay < 0 || opts.FinishDelay < 0 {
		return fmt.Errorf("delays must be >= 0")
	}

	return nil
}

// ID returns the unique id of the round
func (r *Round) ID() string {
	return r.id
}

// Start deals the cards, opens the pre-flop betting round and posts the blinds
func (r *Round) Start() error {
	if r.started {
		return ErrRoundAlreadyStarted
	}

	if n := len(r.players); n < minPlayers || n > maxPlayers {
		return PlayerCountError{
			Min: minPlayers,
			Max: maxPlayers,
			Got: n,
		}
	}

	r.started = true
	r.state.IsActive = true

	if err := r.dealPockets(); err != nil {
		return err
	}

	if err := r.startNewBettingRound(); err != nil {
		return err
	}

	if err := r.postBlinds(); err != nil {
		return err
	}

	// short stacks can be put all-in by the blinds
	if r.handIsOver() {
		return r.finish()
	}

	r.advanceToActor()

	r.logger.WithField("pot", r.state.Pot).Debug("round started")
	r.emit(EventStateUpdated)
	return nil
}

// dealPockets deals one card at a time to each player, twice
func (r *Round) dealPockets() error {
	for _, p := range r.players {
		p.Pocket = make(deck.Hand, 0, 2)
		p.ActiveInRound = true
	}

	for i := 0; i < 2; i++ {
		for _, p := range r.players {
			card, err := r.deck.Draw()
			if err != nil {
				return fmt.Errorf("could not deal to %s: %w", p, err)
			}

			p.Pocket.AddCard(card)
		}
	}

	return nil
}

// end is called once the results have been shown
func (r *Round) end() {
	if r.ended {
		return
	}

	r.ended = true
	r.state.IsActive = false
	r.state.CurrentPlayer = -1

	r.logger.Debug("round ended")
	r.emit(EventRoundEnded)
}

// Close tears the round down, any pending transition is dropped
func (r *Round) Close() {
	r.closed = true
	r.pending = nil
}

// IsEnded returns true once the round-ended event has been sent
func (r *Round) IsEnded() bool {
	return r.ended
}

// GetCurrentPlayer returns the player whose turn it is, or nil if the round is not active
func (r *Round) GetCurrentPlayer() *Player {
	if !r.state.IsActive || r.finished || r.state.CurrentPlayer < 0 {
		return nil
	}

	return r.players[r.state.CurrentPlayer]
}

// GetRound returns a snapshot of the round
func (r *Round) GetRound() *Snapshot {
	return r.snapshot()
}

// GetBlinds returns the blinds and the seats that posted them
func (r *Round) GetBlinds() Blinds {
	return r.blinds
}

// PerformAction applies a player's action
// An illegal action returns false along with an action.IllegalActionError, the round is unchanged
func (r *Round) PerformAction(seat int, a action.Action, amount int) (bool, error) {
	if !r.state.IsActive || r.finished {
		return false, ErrRoundNotActive
	}

	if r.pending != nil {
		return false, ErrTransitionPending
	}

	if seat < 0 || seat >= len(r.players) {
		return false, ErrInvalidSeat
	}

	if _, err := r.apply(action.Command{Seat: seat, Action: a, Amount: amount}); err != nil {
		r.logger.WithError(err).WithField("seat", seat).Debug("action rejected")
		return false, err
	}

	return true, nil
}

// apply resolves a command and applies the result to the round and the player
func (r *Round) apply(cmd action.Command) (action.Result, error) {
	p := r.players[cmd.Seat]
	res, err := r.resolver.Resolve(cmd, action.View{
		CurrentPlayer: r.state.CurrentPlayer,
		HighestBet:    r.state.HighestBet,
		Chips:         p.ChipCount,
		CurrentBet:    p.CurrentBet,
		Folded:        r.isFolded(cmd.Seat),
		AllIn:         r.isAllIn(cmd.Seat),
	})
	if err != nil {
		return res, err
	}

	p.ChipCount -= res.Committed
	p.CurrentBet = res.Bet
	p.Status = statusFromAction(res.Action)
	r.state.Pot += res.Committed
	r.state.HighestBet = res.HighestBet

	if res.Folded {
		p.ActiveInRound = false
		r.state.PlayersFolded = append(r.state.PlayersFolded, cmd.Seat)
	}

	if res.AllIn {
		p.Status = StatusAllIn
		r.state.PlayersAllIn = append(r.state.PlayersAllIn, cmd.Seat)
	}

	if res.Reopens {
		r.state.StoppingPoint = cmd.Seat
	}

	amount := res.Bet
	if res.Action == action.Call {
		amount = res.Committed
	}

	r.sendLogMessages(newLogMessage(p.ID, "{} %s", res.Action.LogMessage(amount)))
	return res, nil
}

func (r *Round) isFolded(seat int) bool {
	return containsSeat(r.state.PlayersFolded, seat)
}

func (r *Round) isAllIn(seat int) bool {
	return containsSeat(r.state.PlayersAllIn, seat)
}

// canAct returns true if the seat can still check, call, bet, raise or fold
func (r *Round) canAct(seat int) bool {
	return !r.isFolded(seat) && !r.isAllIn(seat)
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}

	return false
}
