package config

import (
	"errors"
	"os"
	"time"

	"holdem-round/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em table
type Config struct {
	loaded   bool
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
	// Seed makes shuffles reproducible, 0 uses crypto/rand
	Seed  int64 `yaml:"seed"`
	Hands int   `yaml:"hands"`
	Table struct {
		Seats         int `yaml:"seats"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
	}
	// delays are in milliseconds
	Dealer struct {
		StreetDelay  int `yaml:"streetDelay" envconfig:"street_delay"`
		FinishDelay  int `yaml:"finishDelay" envconfig:"finish_delay"`
		TickInterval int `yaml:"tickInterval" envconfig:"tick_interval"`
	}
}

// Defaults returns a usable configuration when no file is provided
func Defaults() Config {
	cfg := Config{
		LogLevel: "info",
		Hands:    10,
	}

	cfg.Table.Seats = 6
	cfg.Table.StartingChips = 1000
	cfg.Table.SmallBlind = 25
	cfg.Table.BigBlind = 50
	cfg.Dealer.StreetDelay = 2000
	cfg.Dealer.FinishDelay = 3000
	cfg.Dealer.TickInterval = 100

	return cfg
}

// StreetDelay is how long the dealer waits before dealing the next street
func (c Config) StreetDelay() time.Duration {
	return time.Duration(c.Dealer.StreetDelay) * time.Millisecond
}

// FinishDelay is how long the results are shown before the next hand
func (c Config) FinishDelay() time.Duration {
	return time.Duration(c.Dealer.FinishDelay) * time.Millisecond
}

// TickInterval is how often the dealer ticks the round
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Dealer.TickInterval) * time.Millisecond
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing file is not an error, the defaults are used instead
func Load() error {
	cfg := Defaults()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func (c Config) validate() error {
	if c.Table.Seats < 2 || c.Table.Seats > 10 {
		return errors.New("table.seats must be between 2 and 10")
	}

	if c.Table.SmallBlind <= 0 || c.Table.BigBlind < c.Table.SmallBlind {
		return errors.New("blinds must be > 0 and the big blind must be >= the small blind")
	}

	if c.Table.StartingChips < c.Table.BigBlind {
		return errors.New("table.startingChips must cover the big blind")
	}

	return nil
}
