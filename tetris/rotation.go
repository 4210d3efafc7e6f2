package tetris

// wallKicks is the order in which horizontal shifts are tried when an
// in-place rotation collides.
var wallKicks = [...]int{-1, 1, -2, 2}

// RotateClockwise returns piece turned clockwise, shifted by the first wall
// kick that fits if the in-place turn collides. When nothing fits, piece is
// returned unchanged and ok is false.
func RotateClockwise(board *Board, piece Piece) (rotated Piece, ok bool) {
	if !CollidesRotated(board, piece) {
		return piece.Rotated(), true
	}

	for _, dx := range wallKicks {
		kicked := piece.Shifted(dx, 0)
		if !CollidesRotated(board, kicked) {
			return kicked.Rotated(), true
		}
	}

	return piece, false
}
