package systems

import (
	"log/slog"

	"github.com/plus3/blockfall/internal/input"
	"github.com/plus3/blockfall/internal/scheduler"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem turns the frame's device state into game commands.
type InputSystem struct {
	Game   *tetris.Game
	Source input.Source
}

func (s *InputSystem) Execute(frame *scheduler.Frame) {
	if s.Source == nil {
		return
	}
	if s.Source.Dispatch(s.Game) {
		frame.Commands.Stop()
	}
}

// SimulationSystem feeds the frame's delta time to the engine.
type SimulationSystem struct {
	Game *tetris.Game
}

func (s *SimulationSystem) Execute(frame *scheduler.Frame) {
	s.Game.Update(frame.DeltaTime)
}

// Totals accumulates results across every game played in a session.
type Totals struct {
	Games      int
	GamesOver  int
	Lines      int
	Score      int
	BestScore  int
	BestLevel  int
	PlayedTime float64
}

// StatsSystem watches the game for finished rounds and line clears.
type StatsSystem struct {
	Game   *tetris.Game
	Logger *slog.Logger
	Totals Totals

	lastLines int
	lastScore int
	over      bool
}

func (s *StatsSystem) Execute(frame *scheduler.Frame) {
	state := s.Game.State()

	if s.Totals.Games == 0 || state.Lines < s.lastLines || (s.over && !state.GameOver()) {
		// First frame, or the game was reset since the last frame.
		s.Totals.Games++
		s.lastLines, s.lastScore = 0, 0
		s.over = false
	}

	s.Totals.Lines += state.Lines - s.lastLines
	s.Totals.Score += state.Score - s.lastScore
	s.lastLines, s.lastScore = state.Lines, state.Score

	s.Totals.BestScore = max(s.Totals.BestScore, state.Score)
	s.Totals.BestLevel = max(s.Totals.BestLevel, state.Level)

	if !state.Paused && !state.GameOver() {
		s.Totals.PlayedTime += frame.DeltaTime
	}

	if state.GameOver() && !s.over {
		s.over = true
		s.Totals.GamesOver++

		if s.Logger != nil {
			score, level, lines := state.Score, state.Level, state.Lines
			frame.Commands.Defer(func() {
				s.Logger.Info("game over", "score", score, "level", level, "lines", lines, "frame", frame.Number)
			})
		}
	}
}

// Install registers the input, simulation and stats systems for game and
// returns the stats system so callers can read its totals.
func Install(sched *scheduler.Scheduler, game *tetris.Game, source input.Source, logger *slog.Logger) *StatsSystem {
	stats := &StatsSystem{Game: game, Logger: logger}

	sched.Register(&InputSystem{Game: game, Source: source})
	sched.Register(&SimulationSystem{Game: game})
	sched.Register(stats)

	return stats
}
