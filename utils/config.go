package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width               int     `json:"width"`
	Height              int     `json:"height"`
	FrameRateMs         int     `json:"frame_rate_ms"`
	Pattern             string  `json:"pattern"`
	SeedFile            string  `json:"seed_file"`
	RandomDensity       float64 `json:"random_density"`
	RandomSeed          int64   `json:"random_seed"`
	MaxGenerations      int     `json:"max_generations"`
	StagnationThreshold int     `json:"stagnation_threshold"`
	RefreshGenerations  int     `json:"refresh_generations"` // 0 never refreshes
	AutoRestart         bool    `json:"auto_restart"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRateMs:         150,
		Pattern:             "random",
		RandomDensity:       0.15,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
		RefreshGenerations:  200,
		AutoRestart:         true,
	}
}

// Interval returns the autoplay tick interval
func (c Config) Interval() time.Duration {
	return time.Duration(c.FrameRateMs) * time.Millisecond
}

// Validate rejects configurations no board can be built from
func (c Config) Validate() error {
	if c.SeedFile == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Errorf("[Config.Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRateMs <= 0 {
		return errors.Errorf("[Config.Validate] frame_rate_ms must be positive, got %d", c.FrameRateMs)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Config.Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
