package room

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"holdem-round/internal/rng"
	"holdem-round/pkg/action"
	"holdem-round/pkg/deck"
	"holdem-round/pkg/round"

	"github.com/sirupsen/logrus"
)

const defaultTickInterval = time.Millisecond * 100

// ErrHandInProgress is returned when a hand is requested while one is being played
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrNoHandInProgress is returned when an action arrives between hands
var ErrNoHandInProgress = errors.New("there is no hand in progress")

// ErrNotEnoughPlayers is returned when fewer than two seats have chips
var ErrNotEnoughPlayers = errors.New("at least two players with chips are required")

// ErrShiftEnded is returned when the dealer is asked to do something after its shift ended
var ErrShiftEnded = errors.New("the dealer's shift has ended")

// Options configures a dealer
type Options struct {
	SmallBlind  int
	BigBlind    int
	StreetDelay time.Duration
	FinishDelay time.Duration

	// TickInterval is how often the current round is ticked, defaults to 100ms
	TickInterval time.Duration

	// Hands is how many hands to deal automatically, 0 means hands are only dealt by PlayHand
	Hands int
	// NextHandDelay is the pause between automatically dealt hands
	NextHandDelay time.Duration

	// Generator seeds each hand's shuffle, defaults to rng.Crypto
	Generator rng.Generator
}

// HandResult is the outcome of a completed hand
type HandResult struct {
	Number   int
	RoundID  string
	Dealer   int
	Pot      int
	Winners  *round.Winners
	Payouts  map[int64]int
	DeckSeed int64
}

// Dealer is responsible for running the table
// Every call is serialized through the run loop, so the round is only ever touched by one goroutine
type Dealer struct {
	logger  logrus.FieldLogger
	options Options
	rng     rng.Generator

	seats  []*round.Player
	button int

	round    *round.Round
	handSeed int64
	handNum  int
	results  []HandResult
	pending  *pendingHand

	subscribers map[*Subscriber]bool
	lock        sync.RWMutex

	logMessages []*round.LogMessage

	execInRunLoop chan func()
	cancel        context.CancelFunc
	done          chan struct{}
	startOnce     sync.Once
}

// NewDealer creates a new dealer object
// seats are shared with the caller, chip counts carry over from hand to hand
func NewDealer(logger logrus.FieldLogger, seats []*round.Player, opts Options) *Dealer {
	gen := opts.Generator
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Dealer{
		logger:        logger,
		options:       opts,
		rng:           gen,
		seats:         seats,
		subscribers:   make(map[*Subscriber]bool),
		results:       make([]HandResult, 0),
		execInRunLoop: make(chan func(), 256),
		done:          make(chan struct{}),
	}
}

// Subscribe returns a subscriber that receives every round event
func (d *Dealer) Subscribe(name string) *Subscriber {
	s := NewSubscriber(name)

	d.lock.Lock()
	d.subscribers[s] = true
	d.lock.Unlock()

	return s
}

// Unsubscribe stops sending events to the subscriber
func (d *Dealer) Unsubscribe(s *Subscriber) {
	d.lock.Lock()
	delete(d.subscribers, s)
	d.lock.Unlock()
}

// Subscribers will return a slice of subscribers (at the time)
func (d *Dealer) Subscribers() []*Subscriber {
	d.lock.RLock()
	defer d.lock.RUnlock()

	subscribers := make([]*Subscriber, 0, len(d.subscribers))
	for s := range d.subscribers {
		subscribers = append(subscribers, s)
	}

	return subscribers
}

// StartShift starts the run loop
// The shift ends when the context is cancelled, EndShift is called or the configured hands are played
func (d *Dealer) StartShift(ctx context.Context) {
	d.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		d.cancel = cancel

		if d.options.Hands > 0 {
			d.pending = newPendingHand(1, 0)
		}

		go d.runLoop(ctx)
	})
}

// EndShift is called when the dealer is no longer needed
// It blocks until the run loop has exited
func (d *Dealer) EndShift() {
	if d.cancel == nil {
		return
	}

	d.cancel()
	<-d.done
}

// Done is closed once the run loop has exited
func (d *Dealer) Done() <-chan struct{} {
	return d.done
}

func (d *Dealer) tickInterval() time.Duration {
	if d.options.TickInterval > 0 {
		return d.options.TickInterval
	}

	return defaultTickInterval
}

func (d *Dealer) runLoop(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.tickInterval())
	defer ticker.Stop()

	d.logger.Debug("creating dealer run loop")
	for {
		var events <-chan round.Event
		var logs <-chan []*round.LogMessage
		if d.round != nil {
			events = d.round.Events()
			logs = d.round.LogChan()
		}

		select {
		case fn := <-d.execInRunLoop:
			fn()
		case e := <-events:
			d.sendEvent(e)
			if e.Type == round.EventRoundEnded {
				d.finishHand()
			}
		case messages := <-logs:
			d.addLogMessages(messages)
		case <-ticker.C:
			d.tick()
		case <-ctx.Done():
			d.closeRound()
			d.logger.Debug("terminating dealer run loop")
			return
		}

		if d.options.Hands > 0 && d.handNum >= d.options.Hands && d.round == nil {
			d.logger.WithField("hands", d.handNum).Info("all hands have been played")
			d.cancel()
		}
	}
}

func (d *Dealer) shiftEnded() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// exec runs fn in the run loop and waits for it to complete
// StartShift must have been called
func (d *Dealer) exec(fn func()) error {
	if d.shiftEnded() {
		return ErrShiftEnded
	}

	wait := make(chan struct{})

	select {
	case d.execInRunLoop <- func() {
		fn()
		close(wait)
	}:
	case <-d.done:
		return ErrShiftEnded
	}

	select {
	case <-wait:
		return nil
	case <-d.done:
		// fn may have run just before the loop exited
		select {
		case <-wait:
			return nil
		default:
			return ErrShiftEnded
		}
	}
}

// PlayHand deals a new hand
func (d *Dealer) PlayHand() error {
	var err error
	if execErr := d.exec(func() {
		err = d.playHand()
	}); execErr != nil {
		return execErr
	}

	return err
}

// Act performs an action for the seat in the current round and moves the turn along
// An illegal action returns false and an action.IllegalActionError, the player can try again
func (d *Dealer) Act(seat int, a action.Action, amount int) (bool, error) {
	var ok bool
	var err error
	if execErr := d.exec(func() {
		ok, err = d.act(seat, a, amount)
	}); execErr != nil {
		return false, execErr
	}

	return ok, err
}

// Results returns the results of every completed hand
func (d *Dealer) Results() []HandResult {
	var results []HandResult
	d.execOrRead(func() {
		results = make([]HandResult, len(d.results))
		copy(results, d.results)
	})

	return results
}

// LogMessages returns the most recent hand history
func (d *Dealer) LogMessages() []*round.LogMessage {
	var messages []*round.LogMessage
	d.execOrRead(func() {
		d.drainLogMessages()
		messages = make([]*round.LogMessage, len(d.logMessages))
		copy(messages, d.logMessages)
	})

	return messages
}

// execOrRead runs fn in the run loop, or directly once the run loop has exited
func (d *Dealer) execOrRead(fn func()) {
	if err := d.exec(fn); err != nil {
		fn()
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) playHand() error {
	if d.round != nil {
		return ErrHandInProgress
	}

	players := make([]*round.Player, 0, len(d.seats))
	dealer := -1

	d.button = d.nextSeatWithChips(d.button)
	for seat, p := range d.seats {
		if p.ChipCount <= 0 {
			continue
		}

		if seat == d.button {
			dealer = len(players)
		}

		players = append(players, p)
	}

	if len(players) < 2 || dealer < 0 {
		return ErrNotEnoughPlayers
	}

	d.handSeed = int64(d.rng.Intn(math.MaxInt32)) + 1
	shuffled := deck.New()
	shuffled.Shuffle(d.handSeed)

	r, err := round.New(d.logger, players, dealer, round.Options{
		SmallBlind:  d.options.SmallBlind,
		BigBlind:    d.options.BigBlind,
		StreetDelay: d.options.StreetDelay,
		FinishDelay: d.options.FinishDelay,
		Deck:        shuffled,
	})
	if err != nil {
		return err
	}

	d.handNum++
	d.round = r

	d.logger.WithFields(logrus.Fields{
		"hand":   d.handNum,
		"round":  r.ID(),
		"button": d.button,
		"seed":   d.handSeed,
	}).Info("dealing a new hand")

	if err := r.Start(); err != nil {
		d.closeRound()
		return err
	}

	return nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) act(seat int, a action.Action, amount int) (bool, error) {
	if d.round == nil {
		return false, ErrNoHandInProgress
	}

	ok, err := d.round.PerformAction(seat, a, amount)
	if !ok {
		return false, err
	}

	if err := d.round.Increment(); err != nil {
		return true, err
	}

	return true, nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) tick() {
	if d.round != nil {
		if _, err := d.round.Tick(); err != nil {
			d.logger.WithError(err).Error("could not move the round along")
		}

		return
	}

	if d.pending != nil && d.pending.isDue() {
		d.pending = nil
		if err := d.playHand(); err != nil {
			if errors.Is(err, ErrNotEnoughPlayers) {
				d.logger.Info("not enough players left to deal another hand")
			} else {
				d.logger.WithError(err).Error("could not deal the next hand")
			}

			d.cancel()
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendEvent(e round.Event) {
	for _, s := range d.Subscribers() {
		if !s.Send(e) {
			d.logger.WithField("subscriber", s.String()).Warn("subscriber is not keeping up, dropping event")
		}
	}
}

// finishHand records the result of the round and moves the button
// NOTE: must only be called from the run loop
func (d *Dealer) finishHand() {
	if d.round == nil {
		return
	}

	snap := d.round.GetRound()
	d.results = append(d.results, HandResult{
		Number:   d.handNum,
		RoundID:  snap.ID,
		Dealer:   d.button,
		Pot:      snap.State.Pot,
		Winners:  snap.State.Winners,
		Payouts:  snap.State.Payouts,
		DeckSeed: d.handSeed,
	})

	d.closeRound()
	d.button = d.nextSeatWithChips(d.button + 1)

	if d.options.Hands > 0 && d.handNum < d.options.Hands {
		d.pending = newPendingHand(d.handNum+1, d.options.NextHandDelay)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) closeRound() {
	if d.round == nil {
		return
	}

	d.drainLogMessages()
	d.round.Close()
	d.round = nil
}

// nextSeatWithChips returns the first seat from start (inclusive) that has chips
func (d *Dealer) nextSeatWithChips(start int) int {
	n := len(d.seats)
	if n == 0 {
		return 0
	}

	for i := 0; i < n; i++ {
		seat := (start + i) % n
		if d.seats[seat].ChipCount > 0 {
			return seat
		}
	}

	return start % n
}
