package tetris

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Cell

	// Active is unset after game over.
	Active      []Point
	ActiveKind  PieceKind
	ActiveColor Color

	Next      PieceKind
	NextShape Shape
	NextColor Color

	Score    int
	Level    int
	Lines    int
	Paused   bool
	GameOver bool
}

// Snapshot copies the renderable parts of s.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Width:     s.Board.width,
		Height:    s.Board.height,
		Cells:     make([][]Cell, s.Board.height),
		Next:      s.Next,
		NextShape: Offsets(s.Next, 0),
		NextColor: s.Next.Color(),
		Score:     s.Score,
		Level:     s.Level,
		Lines:     s.Lines,
		Paused:    s.Paused,
		GameOver:  s.GameOver(),
	}

	for y := range snap.Cells {
		snap.Cells[y] = s.Board.Row(y)
	}

	if !snap.GameOver {
		cells := s.Active.Cells()
		snap.Active = cells[:]
		snap.ActiveKind = s.Active.Kind
		snap.ActiveColor = s.Active.Color()
	}

	return snap
}
