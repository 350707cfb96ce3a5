package round

import (
	"testing"
	"time"

	"holdem-round/pkg/action"
	"holdem-round/pkg/deck"
	"holdem-round/pkg/handeval"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// newTestRound seats one player per chip count, player ids are seat+1
// blinds are 1/2, an empty cards string uses a shuffled deck
func newTestRound(t *testing.T, chips []int, dealer int, cards string) (*Round, []*Player) {
	t.Helper()

	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = NewPlayer(int64(i+1), c)
	}

	opts := DefaultOptions()
	opts.SmallBlind = 1
	opts.BigBlind = 2
	if cards != "" {
		opts.Deck = deck.NewStacked(deck.CardsFromString(cards))
	}

	r, err := New(logrus.StandardLogger(), players, dealer, opts)
	require.NoError(t, err)

	return r, players
}

func startTestRound(t *testing.T, chips []int, dealer int, cards string) (*Round, []*Player) {
	t.Helper()

	r, players := newTestRound(t, chips, dealer, cards)
	require.NoError(t, r.Start())

	return r, players
}

// act performs the action and moves the turn along, the way a driver would
func act(t *testing.T, r *Round, seat int, a action.Action, amount int) {
	t.Helper()

	ok, err := r.PerformAction(seat, a, amount)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, r.Increment())
}

// forceTick runs the pending transition without waiting for it to come due
func forceTick(t *testing.T, r *Round) {
	t.Helper()

	require.NotNil(t, r.pending, "expected a pending transition")
	r.pending.ExecuteAfter = time.Now().Add(-time.Second)

	ok, err := r.Tick()
	require.NoError(t, err)
	require.True(t, ok)
}

// checkAround checks every seat from the current player until the street closes
func checkAround(t *testing.T, r *Round) {
	t.Helper()

	for i := 0; i < len(r.players) && r.pending == nil; i++ {
		act(t, r, r.state.CurrentPlayer, action.Check, 0)
	}

	require.NotNil(t, r.pending, "expected the street to close")
}

func drainEvents(r *Round) []Event {
	events := make([]Event, 0)
	for {
		select {
		case e := <-r.events:
			events = append(events, e)
		default:
			return events
		}
	}
}

func drainLogs(r *Round) []*LogMessage {
	msgs := make([]*LogMessage, 0)
	for {
		select {
		case m := <-r.logChan:
			msgs = append(msgs, m...)
		default:
			return msgs
		}
	}
}

func hand(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}

type recordingEvaluator struct {
	calls  int
	result *handeval.Result
	err    error
}

func (r *recordingEvaluator) DetermineWinners(players []handeval.PlayerCards) (*handeval.Result, error) {
	r.calls++
	return r.result, r.err
}
