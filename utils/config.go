package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-huelife/hue"
	"github.com/sheikhrachel/go-huelife/rules"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`  // 0 fits the terminal in interactive mode
	Height              int           `json:"height"` // 0 fits the terminal in interactive mode
	Rule                string        `json:"rule"`
	TickInterval        time.Duration `json:"tick_interval"`
	GliderInterval      time.Duration `json:"glider_interval"`
	Seed                int64         `json:"seed"` // 0 seeds from the wall clock
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Generations         int           `json:"generations"` // headless run length
	Palette             string        `json:"palette"`
	Headless            bool          `json:"headless"`
	LogFile             string        `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               0,
		Height:              0,
		Rule:                rules.Conway.String(),
		TickInterval:        100 * time.Millisecond,
		GliderInterval:      500 * time.Millisecond,
		UseParallel:         true,
		UseMemoryPool:       true,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Generations:         100,
		Palette:             string(hue.PaletteHSV),
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults.
// The result is not validated; callers validate once overrides are applied.
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

// Validate checks every field that can be checked without a terminal
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative size %dx%d", c.Width, c.Height)
	case c.Headless && (c.Width == 0 || c.Height == 0):
		return errors.Wrap(ErrInvalidConfig, "[Validate] headless mode needs an explicit width and height")
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick_interval must be positive, got %v", c.TickInterval)
	case c.GliderInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] glider_interval must be positive, got %v", c.GliderInterval)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative stagnation_threshold %d", c.StagnationThreshold)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative generations %d", c.Generations)
	}

	if _, err := c.RuleSet(); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if _, err := hue.ParsePalette(c.Palette); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}

// RuleSet parses the configured rule
func (c Config) RuleSet() (rules.RuleSet, error) {
	return rules.Parse(c.Rule)
}
