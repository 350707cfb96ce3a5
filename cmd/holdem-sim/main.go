package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"holdem-round/internal/config"
	"holdem-round/internal/rng"
	"holdem-round/internal/util"
	"holdem-round/pkg/round"
	"holdem-round/pkg/room"

	"github.com/sirupsen/logrus"
)

var hands = flag.Int("hands", 0, "the number of hands to play, overrides the configuration")
var seats = flag.Int("seats", 0, "the number of seats at the table, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	if *hands > 0 {
		cfg.Hands = *hands
	}

	if *seats > 0 {
		cfg.Table.Seats = *seats
	}

	gen := rng.New(cfg.Seed)

	players := make([]*round.Player, cfg.Table.Seats)
	bots := make(map[int64]*bot, cfg.Table.Seats)
	for i := range players {
		players[i] = round.NewPlayer(int64(i+1), cfg.Table.StartingChips)
		bots[players[i].ID] = newBot(util.GetRandomName(gen), gen, cfg.Table.BigBlind)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pitBoss := room.NewPitBoss(logrus.StandardLogger())
	defer pitBoss.CloseAll()

	dealer, err := pitBoss.OpenTable(ctx, "sim", players, room.Options{
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		StreetDelay:   cfg.StreetDelay(),
		FinishDelay:   cfg.FinishDelay(),
		TickInterval:  cfg.TickInterval(),
		Hands:         cfg.Hands,
		NextHandDelay: cfg.FinishDelay(),
		Generator:     gen,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not open the table")
	}

	play(dealer, dealer.Subscribe("bots"), bots)
	report(dealer, players, bots)
}

// play acts for whichever bot is up until the dealer's shift ends
func play(dealer *room.Dealer, s *room.Subscriber, bots map[int64]*bot) {
	for {
		select {
		case e := <-s.Events():
			snap := e.Snapshot
			if e.Type == round.EventRoundEnded {
				logHand(snap, bots)
				continue
			}

			if snap.Waiting || snap.Finished || !snap.State.IsActive || snap.State.CurrentPlayer < 0 {
				continue
			}

			seat := snap.State.CurrentPlayer
			p := snap.Players[seat]
			b := bots[p.ID]

			a, amount := b.decide(snap, p)
			ok, err := dealer.Act(seat, a, amount)
			if !ok && err != nil {
				logrus.WithError(err).WithField("bot", b.name).Debug("bot made an illegal move, folding")
				a, amount = fallback(snap, p)
				_, err = dealer.Act(seat, a, amount)
			}

			if err != nil && !errors.Is(err, room.ErrShiftEnded) {
				logrus.WithError(err).WithField("bot", b.name).Warn("could not act")
			}
		case <-dealer.Done():
			return
		}
	}
}

func logHand(snap *round.Snapshot, bots map[int64]*bot) {
	if snap.State.Winners == nil {
		return
	}

	names := make([]string, 0, len(snap.State.Winners.IDs))
	for _, id := range snap.State.Winners.IDs {
		names = append(names, bots[id].name)
	}

	logrus.WithFields(logrus.Fields{
		"board":   snap.State.Board.String(),
		"pot":     snap.State.Pot,
		"winners": strings.Join(names, ", "),
		"hand":    snap.State.Winners.Desc,
	}).Info("hand complete")
}

func report(dealer *room.Dealer, players []*round.Player, bots map[int64]*bot) {
	results := dealer.Results()

	sorted := make([]*round.Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ChipCount > sorted[j].ChipCount
	})

	for _, p := range sorted {
		logrus.WithFields(logrus.Fields{
			"bot":   bots[p.ID].name,
			"chips": p.ChipCount,
		}).Info("final chip count")
	}

	logrus.WithField("hands", len(results)).Info("simulation complete")
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}
}
