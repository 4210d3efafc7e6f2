package tetris

// Piece is a tetromino positioned on the board. Its absolute cells are the
// origin plus the catalog offsets for its kind and rotation.
type Piece struct {
	Kind     PieceKind
	X, Y     int
	Rotation Rotation
}

// NewPiece returns a piece at (x, y). It panics on an undefined kind or rotation.
func NewPiece(kind PieceKind, x, y int, rotation Rotation) Piece {
	mustKind(kind)
	mustRotation(rotation)
	return Piece{Kind: kind, X: x, Y: y, Rotation: rotation}
}

// Cells returns the absolute coordinates of the four blocks.
func (p Piece) Cells() [4]Point {
	var cells [4]Point
	for i, off := range Offsets(p.Kind, p.Rotation) {
		cells[i] = Point{X: p.X + off.X, Y: p.Y + off.Y}
	}
	return cells
}

// Shifted returns a copy of the piece displaced by (dx, dy).
func (p Piece) Shifted(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned one step clockwise in place.
func (p Piece) Rotated() Piece {
	p.Rotation = p.Rotation.Next()
	return p
}

// Color returns the color of the piece's kind.
func (p Piece) Color() Color {
	return p.Kind.Color()
}
