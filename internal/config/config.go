package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"zoliky-engine/internal/util"
)

// Config provides configuration for the Žolíky simulator
type Config struct {
	loaded bool

	// PlayerNames seats the named players in order. When empty, PlayerCount
	// random names are generated instead.
	PlayerNames []string `yaml:"playerNames" envconfig:"player_names"`
	PlayerCount int      `yaml:"playerCount" envconfig:"player_count"`

	// Seed drives the shuffle. 0 means a crypto-random shuffle.
	Seed int64 `yaml:"seed" envconfig:"seed"`

	// MaxTurns is a safety cap on the simulated game length
	MaxTurns int `yaml:"maxTurns" envconfig:"max_turns"`

	Rules struct {
		// InitialMeldPoints overrides the 42-point initial meld threshold when > 0
		InitialMeldPoints int `yaml:"initialMeldPoints" envconfig:"initial_meld_points"`
		// DiscardDrawRound overrides the round from which the discard pile may be drawn when > 0
		DiscardDrawRound int `yaml:"discardDrawRound" envconfig:"discard_draw_round"`
	}

	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}
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
// A missing config file is not an error; the environment alone may configure everything.
func Load() error {
	config = Config{
		PlayerCount: 2,
		MaxTurns:    500,
	}

	configFile := util.Getenv("ZOLIKY_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("zoliky", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
