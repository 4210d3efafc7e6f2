package tetris

import (
	"log/slog"
	"math/rand/v2"
)

// Engine implements the rules. It holds no per-session state besides the
// next-piece source; every method operates on the GameState it is given.
type Engine struct {
	cfg    Config
	random Randomizer
	logger *slog.Logger
}

// NewEngine creates an engine for cfg. It panics if cfg does not validate.
func NewEngine(cfg Config) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	random := cfg.Randomizer
	if random == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		random = NewUniformRandomizer(seed)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		cfg:    cfg,
		random: random,
		logger: logger,
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewState creates a fresh session with its first piece spawned.
func (e *Engine) NewState() *GameState {
	s := &GameState{}
	e.Reset(s)
	return s
}

// Reset reinitializes s in place and spawns a new first piece.
func (e *Engine) Reset(s *GameState) {
	board := s.Board
	if board == nil || board.width != e.cfg.Width || board.height != e.cfg.Height {
		board = NewBoard(e.cfg.Width, e.cfg.Height)
	} else {
		board.clear()
	}

	*s = GameState{
		Board:        board,
		Level:        1,
		FallInterval: e.cfg.FallInterval(1),
		Phase:        PhaseSpawning,
		Next:         e.random.Next(),
	}

	e.logger.Debug("game reset")
	e.spawn(s)
}

// Update advances the gravity timer by dt seconds and performs one fall step
// per elapsed interval. It does nothing while paused or after game over.
func (e *Engine) Update(s *GameState, dt float64) {
	if s.Paused || s.Phase != PhaseActive || dt <= 0 {
		return
	}

	s.GravityTimer += dt
	for s.GravityTimer >= s.FallInterval {
		s.GravityTimer -= s.FallInterval
		e.fall(s)

		if s.Phase == PhaseGameOver {
			s.GravityTimer = 0
			return
		}
	}
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft(s *GameState) {
	e.shift(s, -1, 0)
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight(s *GameState) {
	e.shift(s, 1, 0)
}

// SoftDrop moves the active piece one row down if it fits and restarts the
// gravity timer. A blocked soft drop does not lock the piece.
func (e *Engine) SoftDrop(s *GameState) {
	if e.shift(s, 0, 1) {
		s.GravityTimer = 0
	}
}

// Rotate turns the active piece clockwise using the wall kick order
// in-place, -1, +1, -2, +2. A rotation that fits nowhere is dropped.
func (e *Engine) Rotate(s *GameState) {
	if !acceptsCommands(s) {
		return
	}
	if rotated, ok := RotateClockwise(s.Board, s.Active); ok {
		s.Active = rotated
	}
}

// TogglePause pauses or resumes the session. It has no effect after game over.
func (e *Engine) TogglePause(s *GameState) {
	if s.Phase == PhaseGameOver {
		return
	}
	s.Paused = !s.Paused
	e.logger.Debug("pause toggled", "paused", s.Paused)
}

func acceptsCommands(s *GameState) bool {
	return s.Phase == PhaseActive && !s.Paused
}

func (e *Engine) shift(s *GameState, dx, dy int) bool {
	if !acceptsCommands(s) {
		return false
	}
	if Collides(s.Board, s.Active, dx, dy) {
		return false
	}
	s.Active = s.Active.Shifted(dx, dy)
	return true
}

// fall is one gravity expiry: move down, or lock, clear and spawn.
func (e *Engine) fall(s *GameState) {
	if !Collides(s.Board, s.Active, 0, 1) {
		s.Active = s.Active.Shifted(0, 1)
		return
	}

	e.lock(s)
	e.clearLines(s)
	e.spawn(s)
}

func (e *Engine) lock(s *GameState) {
	s.Phase = PhaseLocking

	cell := Filled(s.Active.Kind)
	for _, c := range s.Active.Cells() {
		if c.Y >= 0 {
			s.Board.set(c.X, c.Y, cell)
		}
	}

	e.logger.Debug("piece locked", "kind", s.Active.Kind, "x", s.Active.X, "y", s.Active.Y)
	s.Phase = PhaseLineClearing
}

func (e *Engine) clearLines(s *GameState) {
	n := ClearLines(s.Board)
	if n > 0 {
		// Scored at the level held before these rows are counted.
		delta := ClearScore(n, s.Level)
		s.Score += delta
		s.Lines += n
		s.Level = LevelForLines(s.Lines)
		s.FallInterval = e.cfg.FallInterval(s.Level)

		e.logger.Debug("lines cleared",
			"rows", n,
			"score_delta", delta,
			"score", s.Score,
			"lines", s.Lines,
			"level", s.Level,
		)
	}
	s.Phase = PhaseSpawning
}

// spawn promotes the queued kind to the active piece at the spawn point and
// queues a new one. A spawn that collides ends the game without touching the
// board.
func (e *Engine) spawn(s *GameState) {
	s.Phase = PhaseSpawning
	s.Active = NewPiece(s.Next, s.Board.width/2-1, 0, 0)
	s.Next = e.random.Next()

	if Collides(s.Board, s.Active, 0, 0) {
		s.Phase = PhaseGameOver
		e.logger.Debug("game over", "score", s.Score, "level", s.Level, "lines", s.Lines)
		return
	}

	s.Phase = PhaseActive
}
