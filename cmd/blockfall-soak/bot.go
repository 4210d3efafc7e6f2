package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/internal/input"
)

// Bot presses random keys. It resets the game as soon as it ends so a
// session keeps playing for its whole duration.
type Bot struct {
	rng *rand.Rand

	// Idle is the chance that the bot does nothing on a given frame.
	Idle float64
}

func NewBot(seed uint64) *Bot {
	return &Bot{
		rng:  rand.New(rand.NewPCG(seed, seed+1)),
		Idle: 0.7,
	}
}

var botMoves = []func(input.Controller){
	input.Controller.MoveLeft,
	input.Controller.MoveRight,
	input.Controller.SoftDrop,
	input.Controller.Rotate,
}

func (b *Bot) Dispatch(c input.Controller) bool {
	if c.GameOver() {
		c.Reset()
		return false
	}
	if b.rng.Float64() < b.Idle {
		return false
	}
	botMoves[b.rng.IntN(len(botMoves))](c)
	return false
}
