package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleGame drives a session through its command API.
func ExampleGame() {
	cfg := tetris.DefaultConfig()
	cfg.Randomizer = tetris.NewSequence(tetris.T, tetris.O)
	game := tetris.NewGame(cfg)

	game.Rotate()
	game.MoveRight()
	for range 5 {
		game.SoftDrop()
	}

	state := game.State()
	fmt.Printf("active %v at %d,%d rotation %d\n", state.Active.Kind, state.Active.X, state.Active.Y, state.Active.Rotation)
	fmt.Printf("next %v\n", state.Next)

	// Output:
	// active T at 5,5 rotation 1
	// next O
}

// ExampleRotateClockwise shows a wall kick off the left wall.
func ExampleRotateClockwise() {
	board := tetris.NewBoard(10, 20)
	vertical := tetris.NewPiece(tetris.I, -1, 0, 1)

	rotated, ok := tetris.RotateClockwise(board, vertical)
	fmt.Println(ok, rotated.X, rotated.Rotation)

	// Output:
	// true 0 2
}

func ExampleClearScore() {
	fmt.Println(tetris.ClearScore(1, 1), tetris.ClearScore(4, 2), tetris.ClearScore(5, 1))

	// Output:
	// 100 1600 1000
}
