package tetris

// Collides reports whether piece, displaced by (dx, dy), leaves the board
// sideways, goes below the floor, or overlaps an occupied cell. Cells above
// the top row are only checked against the side walls.
func Collides(board *Board, piece Piece, dx, dy int) bool {
	for _, c := range piece.Cells() {
		x, y := c.X+dx, c.Y+dy

		if x < 0 || x >= board.width || y >= board.height {
			return true
		}

		if y >= 0 && board.rows[y][x].occupied {
			return true
		}
	}

	return false
}

// CollidesRotated reports whether the next clockwise rotation of piece,
// kept at its current origin, would collide.
func CollidesRotated(board *Board, piece Piece) bool {
	return Collides(board, piece.Rotated(), 0, 0)
}
