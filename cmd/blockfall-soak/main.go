package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/scheduler"
	"github.com/plus3/blockfall/internal/systems"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	sessions := flag.Int("sessions", 4, "The number of games played side by side.")
	seed := flag.Uint64("seed", 1, "Seed for the first session; later sessions use seed+i.")
	dt := flag.Duration("dt", time.Second/60, "Simulated time per frame.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
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

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		FrameTime:      *dt,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runners := make([]*runner, *sessions)
	for i := range runners {
		runners[i] = newRunner(cfg.Engine(), *seed+uint64(i), logger.With("session", i))
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running soak", "duration", *duration, "sessions", *sessions)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	report.TotalUpdates = soak(ctx, runners, dt.Seconds(), &report.UpdateTime)
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, r := range runners {
		report.add(r)
	}

	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
}

// runner is one independent game driven by a bot.
type runner struct {
	seed      uint64
	game      *tetris.Game
	scheduler *scheduler.Scheduler
	stats     *systems.StatsSystem
}

func newRunner(cfg tetris.Config, seed uint64, logger *slog.Logger) *runner {
	cfg.Seed = seed
	cfg.Logger = logger

	game := tetris.NewGame(cfg)
	sched := scheduler.New()
	stats := systems.Install(sched, game, NewBot(seed), logger)

	return &runner{seed: seed, game: game, scheduler: sched, stats: stats}
}

// soak advances every runner by one frame until ctx is done and returns the
// number of frames run.
func soak(ctx context.Context, runners []*runner, dt float64, updates *Stats) int64 {
	var total int64
	for {
		select {
		case <-ctx.Done():
			return total
		default:
		}

		updateStart := time.Now()
		for _, r := range runners {
			r.scheduler.Once(dt)
		}
		updates.Samples = append(updates.Samples, time.Since(updateStart))
		total++
	}
}
