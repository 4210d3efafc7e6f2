package tetris

// Game binds an engine to the one state it drives. Frontends hold a Game and
// forward discrete commands to it.
type Game struct {
	engine *Engine
	state  *GameState
}

// NewGame creates an engine for cfg and starts a session.
func NewGame(cfg Config) *Game {
	engine := NewEngine(cfg)
	return &Game{
		engine: engine,
		state:  engine.NewState(),
	}
}

// Engine returns the rules engine.
func (g *Game) Engine() *Engine { return g.engine }

// State returns the live session state.
func (g *Game) State() *GameState { return g.state }

func (g *Game) Update(dt float64) { g.engine.Update(g.state, dt) }
func (g *Game) MoveLeft()         { g.engine.MoveLeft(g.state) }
func (g *Game) MoveRight()        { g.engine.MoveRight(g.state) }
func (g *Game) SoftDrop()         { g.engine.SoftDrop(g.state) }
func (g *Game) Rotate()           { g.engine.Rotate(g.state) }
func (g *Game) TogglePause()      { g.engine.TogglePause(g.state) }
func (g *Game) Reset()            { g.engine.Reset(g.state) }
func (g *Game) GameOver() bool    { return g.state.GameOver() }
func (g *Game) Paused() bool      { return g.state.Paused }

// Snapshot returns a renderer view of the current state.
func (g *Game) Snapshot() Snapshot { return g.state.Snapshot() }
