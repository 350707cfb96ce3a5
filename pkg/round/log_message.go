package round

import (
	"fmt"
	"time"

	"holdem-round/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is a line in the hand history
// If PlayerIDs is not empty, the client renders "{}" in Message as the player's name
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []int64      `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// LogChan returns the channel the round sends hand history to
func (r *Round) LogChan() <-chan []*LogMessage {
	return r.logChan
}

func (r *Round) sendLogMessages(msg ...*LogMessage) {
	select {
	case r.logChan <- msg:
	default:
		r.logger.WithField("messages", len(msg)).Warn("log channel is full, dropping messages")
	}
}

func newLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	return newLogMessageWithPlayers([]int64{playerID}, format, a...)
}

func newLogMessageWithPlayers(playerIDs []int64, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

func newLogMessageWithCards(cards deck.Hand, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards.Clone(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
