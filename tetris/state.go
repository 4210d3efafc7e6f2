package tetris

// Phase is the engine's position in the lock cycle.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseLocking
	PhaseLineClearing
	PhaseSpawning
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseActive:       "active",
	PhaseLocking:      "locking",
	PhaseLineClearing: "line-clearing",
	PhaseSpawning:     "spawning",
	PhaseGameOver:     "game-over",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// GameState is the complete mutable state of one session. The caller owns it
// and passes it to Engine methods; it must not be shared between goroutines
// without external synchronization.
type GameState struct {
	Board  *Board
	Active Piece
	Next   PieceKind

	Score int
	Level int
	Lines int

	GravityTimer float64
	FallInterval float64

	Phase  Phase
	Paused bool
}

// GameOver reports whether the session has ended.
func (s *GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}
