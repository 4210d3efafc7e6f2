package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/input"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/scheduler"
	"github.com/plus3/blockfall/internal/systems"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them.")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal owns stdout and stderr while the game runs.
	logOut, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	dispatcher := input.NewDispatcher[termKey]()
	if err := dispatcher.BindNames(cfg.Keys, lookupKey); err != nil {
		return err
	}
	dispatcher.Bind(specialKey(tcell.KeyCtrlC), input.ActionQuit)

	engineConfig := cfg.Engine()
	engineConfig.Logger = logger
	game := tetris.NewGame(engineConfig)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	keyboard := NewKeyboard(events)

	sched := scheduler.New()
	sched.Register(&KeyboardSystem{Keyboard: keyboard, Screen: screen})
	stats := systems.Install(sched, game, dispatcher.Source(keyboard.IsDown), logger)
	sched.Register(&RenderSystem{Game: game, Screen: screen})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tps := max(cfg.Window.TPS, 1)
	err = sched.Run(ctx, time.Second/time.Duration(tps))

	logger.Info("session finished",
		"games", stats.Totals.Games,
		"lines", stats.Totals.Lines,
		"best_score", stats.Totals.BestScore,
	)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type discardCloser struct{ io.Writer }

func (discardCloser) Close() error { return nil }

func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return discardCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
