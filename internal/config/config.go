package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/plus3/blockfall/tetris"
)

type Config struct {
	Game   GameConfig          `mapstructure:"game"`
	Window WindowConfig        `mapstructure:"window"`
	Log    LogConfig           `mapstructure:"log"`
	Keys   map[string][]string `mapstructure:"keys"`
}

type GameConfig struct {
	Width        int           `mapstructure:"width"`
	Height       int           `mapstructure:"height"`
	BaseInterval time.Duration `mapstructure:"base_interval"`
	MinInterval  time.Duration `mapstructure:"min_interval"`
	IntervalStep time.Duration `mapstructure:"interval_step"`
	Seed         uint64        `mapstructure:"seed"`
}

type WindowConfig struct {
	CellSize int `mapstructure:"cell_size"`
	TPS      int `mapstructure:"tps"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultKeys binds every action to the keys of the classic layout.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"move_left":    {"left"},
		"move_right":   {"right"},
		"soft_drop":    {"down"},
		"rotate":       {"up", "space"},
		"toggle_pause": {"p"},
		"reset":        {"r"},
		"quit":         {"q", "escape"},
	}
}

func setDefaults(v *viper.Viper) {
	def := tetris.DefaultConfig()

	v.SetDefault("game.width", def.Width)
	v.SetDefault("game.height", def.Height)
	v.SetDefault("game.base_interval", seconds(def.BaseInterval))
	v.SetDefault("game.min_interval", seconds(def.MinInterval))
	v.SetDefault("game.interval_step", seconds(def.IntervalStep))
	v.SetDefault("game.seed", 0)

	v.SetDefault("window.cell_size", 30)
	v.SetDefault("window.tps", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	for action, keys := range DefaultKeys() {
		v.SetDefault("keys."+action, keys)
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// loads defaults only. Variables prefixed BLOCKFALL_ override both, e.g.
// BLOCKFALL_GAME_WIDTH.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("blockfall")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Engine().Validate(); err != nil {
		return nil, err
	}
	if cfg.Window.CellSize <= 0 || cfg.Window.TPS <= 0 {
		return nil, fmt.Errorf("%w: window cell_size and tps must be positive", tetris.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Engine converts the game section to engine parameters.
func (c *Config) Engine() tetris.Config {
	return tetris.Config{
		Width:        c.Game.Width,
		Height:       c.Game.Height,
		BaseInterval: c.Game.BaseInterval.Seconds(),
		MinInterval:  c.Game.MinInterval.Seconds(),
		IntervalStep: c.Game.IntervalStep.Seconds(),
		Seed:         c.Game.Seed,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
