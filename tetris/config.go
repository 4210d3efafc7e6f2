package tetris

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the fixed parameters of a session. Intervals are in seconds.
type Config struct {
	Width  int
	Height int

	// BaseInterval is the fall interval at level 1. Each level above 1
	// shortens it by IntervalStep, down to MinInterval.
	BaseInterval float64
	MinInterval  float64
	IntervalStep float64

	// Seed feeds the default uniform randomizer. Zero picks a random seed.
	Seed uint64

	// Randomizer overrides the default next-piece source.
	Randomizer Randomizer

	Logger *slog.Logger
}

// DefaultConfig returns the classic 10x20 well with a half-second fall.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		BaseInterval: 0.5,
		MinInterval:  0.05,
		IntervalStep: 0.05,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board %dx%d must have positive dimensions", ErrInvalidConfig, c.Width, c.Height)
	case c.MinInterval <= 0:
		return fmt.Errorf("%w: min interval %v must be positive", ErrInvalidConfig, c.MinInterval)
	case c.BaseInterval < c.MinInterval:
		return fmt.Errorf("%w: base interval %v is below min interval %v", ErrInvalidConfig, c.BaseInterval, c.MinInterval)
	case c.IntervalStep < 0:
		return fmt.Errorf("%w: interval step %v must not be negative", ErrInvalidConfig, c.IntervalStep)
	}
	return nil
}

// FallInterval returns the seconds between gravity steps at level.
func (c Config) FallInterval(level int) float64 {
	return max(c.MinInterval, c.BaseInterval-float64(level-1)*c.IntervalStep)
}
