package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/internal/scheduler"
	"github.com/plus3/blockfall/tetris"
)

const (
	cellWidth = 2
	originX   = 2
	originY   = 1
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
)

// KeyboardSystem drains terminal events at the start of each frame.
type KeyboardSystem struct {
	Keyboard *Keyboard
	Screen   tcell.Screen
}

func (s *KeyboardSystem) Execute(frame *scheduler.Frame) {
	s.Keyboard.Drain()
	if s.Keyboard.Resized() {
		s.Screen.Sync()
	}
}

// RenderSystem draws the game into the terminal.
type RenderSystem struct {
	Game   *tetris.Game
	Screen tcell.Screen
}

func (s *RenderSystem) Execute(frame *scheduler.Frame) {
	snap := s.Game.Snapshot()
	screen := s.Screen

	screen.Clear()
	drawBorder(screen, snap.Width, snap.Height)

	for y, row := range snap.Cells {
		for x, cell := range row {
			if c, ok := cell.Color(); ok {
				drawCell(screen, originX, originY, x, y, c)
			}
		}
	}
	for _, p := range snap.Active {
		if p.Y >= 0 {
			drawCell(screen, originX, originY, p.X, p.Y, snap.ActiveColor)
		}
	}

	panelX := originX + snap.Width*cellWidth + 3
	drawText(screen, panelX, originY, textStyle, "NEXT")
	for _, p := range snap.NextShape {
		drawCell(screen, panelX, originY+1, p.X, p.Y, snap.NextColor)
	}

	drawText(screen, panelX, originY+6, textStyle, fmt.Sprintf("SCORE %d", snap.Score))
	drawText(screen, panelX, originY+7, textStyle, fmt.Sprintf("LEVEL %d", snap.Level))
	drawText(screen, panelX, originY+8, textStyle, fmt.Sprintf("LINES %d", snap.Lines))

	bannerY := originY + snap.Height/2
	switch {
	case snap.GameOver:
		drawText(screen, originX, bannerY, bannerStyle, " GAME OVER ")
		drawText(screen, originX, bannerY+1, bannerStyle, " r: restart ")
	case snap.Paused:
		drawText(screen, originX, bannerY, bannerStyle, " PAUSED ")
	}

	screen.Show()
}

func drawBorder(screen tcell.Screen, width, height int) {
	right := originX + width*cellWidth
	bottom := originY + height

	for y := originY; y < bottom; y++ {
		screen.SetContent(originX-1, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX; x < right; x++ {
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func drawCell(screen tcell.Screen, ox, oy, x, y int, c tetris.Color) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])))
	for i := range cellWidth {
		screen.SetContent(ox+x*cellWidth+i, oy+y, ' ', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
