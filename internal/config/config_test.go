package config

import (
	"os"
	"testing"
	"time"

	"holdem-round/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer reset()
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "20")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.LogLevel)
	a.Equal(int64(42), cfg.Seed)
	a.Equal(25, cfg.Hands)
	a.Equal(4, cfg.Table.Seats)
	a.Equal(500, cfg.Table.StartingChips)
	a.Equal(5, cfg.Table.SmallBlind)
	a.Equal(20, cfg.Table.BigBlind)
	a.Equal(time.Millisecond*500, cfg.StreetDelay())
	a.Equal(time.Millisecond*750, cfg.FinishDelay())
	// not in the file, the default is kept
	a.Equal(time.Millisecond*100, cfg.TickInterval())

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_TABLE_BIG_BLIND", "40")
	// ensure we aren't using a pointer
	cfg.Table.BigBlind = 1
	cfg = Instance()
	a.Equal(20, cfg.Table.BigBlind)
}

func TestDefaults(t *testing.T) {
	defer reset()
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, Defaults().Table, cfg.Table)
	assert.Equal(t, time.Second*2, cfg.StreetDelay())
	assert.Equal(t, time.Second*3, cfg.FinishDelay())
}

func TestLoad_invalid(t *testing.T) {
	defer reset()
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/bad_seats.yaml")
	defer clear1()

	assert.EqualError(t, Load(), "table.seats must be between 2 and 10")

	clear2 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear2()
	clear3 := util.SetEnv("HOLDEM_TABLE_SMALL_BLIND", "50")
	defer clear3()

	assert.EqualError(t, Load(), "blinds must be > 0 and the big blind must be >= the small blind")
}

func reset() {
	config = Config{}
}
