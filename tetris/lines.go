package tetris

// FullRows returns the indices of every completely occupied row, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y, row := range b.rows {
		if rowFull(row) {
			full = append(full, y)
		}
	}
	return full
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.occupied {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the remaining rows down keeping
// their order, and refills the top with empty rows. It returns the number of
// rows removed; with none full the board is left untouched.
func ClearLines(board *Board) int {
	kept := make([][]Cell, 0, board.height)
	for _, row := range board.rows {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := board.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, board.height)
	for range cleared {
		rows = append(rows, make([]Cell, board.width))
	}
	board.rows = append(rows, kept...)

	return cleared
}
