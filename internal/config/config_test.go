package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/tetris"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Game.Width)
	assert.Equal(t, 20, cfg.Game.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.BaseInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Game.MinInterval)
	assert.Equal(t, 30, cfg.Window.CellSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"up", "space"}, cfg.Keys["rotate"])

	engine := cfg.Engine()
	def := tetris.DefaultConfig()
	assert.Equal(t, def.Width, engine.Width)
	assert.InDelta(t, def.BaseInterval, engine.BaseInterval, 1e-9)
	assert.InDelta(t, def.MinInterval, engine.MinInterval, 1e-9)
	assert.InDelta(t, def.IntervalStep, engine.IntervalStep, 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
game:
  width: 12
  base_interval: 800ms
  seed: 7
log:
  level: debug
  format: json
keys:
  rotate: [x]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Game.Width)
	assert.Equal(t, 20, cfg.Game.Height)
	assert.Equal(t, 800*time.Millisecond, cfg.Game.BaseInterval)
	assert.Equal(t, uint64(7), cfg.Game.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"x"}, cfg.Keys["rotate"])
	assert.InDelta(t, 0.8, cfg.Engine().BaseInterval, 1e-9)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BLOCKFALL_GAME_HEIGHT", "24")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Game.Height)
}

func TestLoadRejectsInvalidGame(t *testing.T) {
	path := writeConfig(t, "game:\n  width: 0\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestLoadRejectsInvalidWindow(t *testing.T) {
	path := writeConfig(t, "window:\n  tps: 0\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
