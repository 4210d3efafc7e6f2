package tetris

import "strconv"

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Rotation is a clockwise orientation index in 0..3.
type Rotation uint8

const rotationCount = 4

// Next returns the orientation reached by one clockwise turn.
func (r Rotation) Next() Rotation {
	return (r + 1) % rotationCount
}

// Valid reports whether r is within 0..3.
func (r Rotation) Valid() bool {
	return r < rotationCount
}

func mustRotation(r Rotation) {
	if !r.Valid() {
		panic("tetris: undefined rotation " + strconv.Itoa(int(r)))
	}
}

// Shape holds the four cell offsets of a piece in its local frame.
type Shape [4]Point

// catalog is indexed by [kind][rotation].
var catalog = [kindCount][rotationCount]Shape{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Offsets returns the cell offsets of kind at the given rotation.
// It panics if either argument is undefined.
func Offsets(kind PieceKind, rotation Rotation) Shape {
	mustKind(kind)
	mustRotation(rotation)
	return catalog[kind][rotation]
}
