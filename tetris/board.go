package tetris

import "strconv"

// Cell is either empty or occupied by a locked block of a known kind.
// The zero value is an empty cell.
type Cell struct {
	kind     PieceKind
	occupied bool
}

// Filled returns a cell occupied by a block of the given kind.
func Filled(kind PieceKind) Cell {
	mustKind(kind)
	return Cell{kind: kind, occupied: true}
}

// Occupied reports whether the cell holds a block.
func (c Cell) Occupied() bool {
	return c.occupied
}

// Kind returns the kind that filled the cell. ok is false for empty cells.
func (c Cell) Kind() (kind PieceKind, ok bool) {
	return c.kind, c.occupied
}

// Color returns the color of the block in the cell. ok is false for empty cells.
func (c Cell) Color() (color Color, ok bool) {
	if !c.occupied {
		return Color{}, false
	}
	return c.kind.Color(), true
}

// Board is a fixed-size occupancy grid. Row 0 is the top of the visible well.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board. It panics if either dimension is not positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("tetris: board dimensions must be positive, got " +
			strconv.Itoa(width) + "x" + strconv.Itoa(height))
	}

	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}

	return &Board{
		width:  width,
		height: height,
		rows:   rows,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Contains reports whether (x, y) lies on the visible board.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). It panics if the coordinate is off the board.
func (b *Board) At(x, y int) Cell {
	return b.rows[y][x]
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Cell {
	row := make([]Cell, b.width)
	copy(row, b.rows[y])
	return row
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		width:  b.width,
		height: b.height,
		rows:   make([][]Cell, b.height),
	}
	for y, row := range b.rows {
		clone.rows[y] = make([]Cell, b.width)
		copy(clone.rows[y], row)
	}
	return clone
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.rows {
		for x := range b.rows[y] {
			if b.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.occupied {
				n++
			}
		}
	}
	return n
}

// set is only called by locking; commands never write cells.
func (b *Board) set(x, y int, c Cell) {
	b.rows[y][x] = c
}

func (b *Board) clear() {
	for _, row := range b.rows {
		clear(row)
	}
}
