package tetris

import "fmt"

// PieceKind identifies one of the seven tetrominoes.
type PieceKind uint8

const (
	I PieceKind = iota
	O
	T
	S
	Z
	J
	L
)

const kindCount = 7

// Kinds lists every piece kind in catalog order.
var Kinds = [kindCount]PieceKind{I, O, T, S, Z, J, L}

var kindNames = [kindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Color is an RGB triple identifying a piece kind on screen.
type Color [3]uint8

var kindColors = [kindCount]Color{
	{0, 255, 255}, // I cyan
	{255, 255, 0}, // O yellow
	{128, 0, 128}, // T purple
	{0, 255, 0},   // S green
	{255, 0, 0},   // Z red
	{0, 0, 255},   // J blue
	{255, 165, 0}, // L orange
}

// Valid reports whether k is one of the seven defined kinds.
func (k PieceKind) Valid() bool {
	return k < kindCount
}

func (k PieceKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PieceKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the fixed color of the kind.
func (k PieceKind) Color() Color {
	mustKind(k)
	return kindColors[k]
}

func mustKind(k PieceKind) {
	if !k.Valid() {
		panic("tetris: undefined piece kind " + k.String())
	}
}
