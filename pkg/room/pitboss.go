package room

import (
	"context"
	"fmt"
	"sync"

	"holdem-round/pkg/round"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for opening and closing tables
type PitBoss struct {
	logger  logrus.FieldLogger
	dealers map[string]*Dealer
	lock    sync.Mutex
}

// NewPitBoss returns a new pit boss
func NewPitBoss(logger logrus.FieldLogger) *PitBoss {
	return &PitBoss{
		logger:  logger,
		dealers: make(map[string]*Dealer),
	}
}

// OpenTable seats the players at a new table and starts its dealer's shift
func (p *PitBoss) OpenTable(ctx context.Context, name string, seats []*round.Player, opts Options) (*Dealer, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, found := p.dealers[name]; found {
		return nil, fmt.Errorf("table %s is already open", name)
	}

	dealer := NewDealer(p.logger.WithField("table", name), seats, opts)
	dealer.StartShift(ctx)
	p.dealers[name] = dealer

	p.logger.WithFields(logrus.Fields{
		"table": name,
		"seats": len(seats),
	}).Debug("table opened")

	return dealer, nil
}

// Dealer returns the dealer running the table
func (p *PitBoss) Dealer(name string) (*Dealer, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	dealer, found := p.dealers[name]
	return dealer, found
}

// CloseTable ends the dealer's shift and forgets the table
func (p *PitBoss) CloseTable(name string) bool {
	p.lock.Lock()
	dealer, found := p.dealers[name]
	delete(p.dealers, name)
	p.lock.Unlock()

	if !found {
		p.logger.WithField("table", name).Warn("table not found")
		return false
	}

	dealer.EndShift()
	return true
}

// CloseAll closes every open table
func (p *PitBoss) CloseAll() {
	p.lock.Lock()
	names := make([]string, 0, len(p.dealers))
	for name := range p.dealers {
		names = append(names, name)
	}
	p.lock.Unlock()

	for _, name := range names {
		p.CloseTable(name)
	}
}
