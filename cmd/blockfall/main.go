package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/input"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/scheduler"
	"github.com/plus3/blockfall/internal/systems"
	"github.com/plus3/blockfall/tetris"
)

// Game adapts the scheduler to ebiten's update and draw callbacks.
type Game struct {
	Tetris    *tetris.Game
	Scheduler *scheduler.Scheduler
	Stats     *systems.StatsSystem
	Renderer  *Renderer
	TPS       int
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	engineConfig := cfg.Engine()
	engineConfig.Logger = logger
	game := tetris.NewGame(engineConfig)

	dispatcher := input.NewDispatcher[ebiten.Key]()
	if err := dispatcher.BindNames(cfg.Keys, lookupKey); err != nil {
		logger.Error("invalid key bindings", "err", err)
		os.Exit(1)
	}

	sched := scheduler.New()
	stats := systems.Install(sched, game, dispatcher.Source(ebiten.IsKeyPressed), logger)

	renderer := NewRenderer(cfg.Window.CellSize, engineConfig.Width, engineConfig.Height)
	width, height := renderer.Size()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Blockfall")
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info("starting", "width", engineConfig.Width, "height", engineConfig.Height, "tps", cfg.Window.TPS)

	err = ebiten.RunGame(&Game{
		Tetris:    game,
		Scheduler: sched,
		Stats:     stats,
		Renderer:  renderer,
		TPS:       cfg.Window.TPS,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}

	logTotals(logger, stats.Totals)
}

func (g *Game) Update() error {
	if g.Scheduler.Once(1.0 / float64(g.TPS)) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Tetris.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Renderer.Size()
}

// lookupKey resolves a configured key name such as "left" or "space".
func lookupKey(name string) (ebiten.Key, bool) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return key, true
}

func logTotals(logger *slog.Logger, totals systems.Totals) {
	logger.Info("session finished",
		"games", totals.Games,
		"lines", totals.Lines,
		"best_score", totals.BestScore,
		"best_level", totals.BestLevel,
		"played", totals.PlayedTime,
	)
}
