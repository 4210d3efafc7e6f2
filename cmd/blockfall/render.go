package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
)

const (
	margin     = 20
	panelWidth = 160
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridColor       = color.RGBA{0x30, 0x30, 0x3c, 0xff}
	borderColor     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// Renderer draws snapshots as a grid of filled cells with a side panel.
type Renderer struct {
	cellSize int
	width    int
	height   int
}

func NewRenderer(cellSize, width, height int) *Renderer {
	return &Renderer{cellSize: cellSize, width: width, height: height}
}

// Size returns the logical screen size in pixels.
func (r *Renderer) Size() (int, int) {
	return margin*2 + r.width*r.cellSize + panelWidth, margin*2 + r.height*r.cellSize
}

func (r *Renderer) Draw(screen *ebiten.Image, snap tetris.Snapshot) {
	screen.Fill(backgroundColor)

	boardW := float32(snap.Width * r.cellSize)
	boardH := float32(snap.Height * r.cellSize)
	vector.StrokeRect(screen, margin-2, margin-2, boardW+4, boardH+4, 2, borderColor, false)

	for y, row := range snap.Cells {
		for x, cell := range row {
			if c, ok := cell.Color(); ok {
				r.cell(screen, margin, margin, x, y, c)
			} else {
				r.empty(screen, x, y)
			}
		}
	}

	for _, p := range snap.Active {
		if p.Y < 0 {
			continue
		}
		r.cell(screen, margin, margin, p.X, p.Y, snap.ActiveColor)
	}

	panelX := margin*2 + snap.Width*r.cellSize
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, margin)
	for _, p := range snap.NextShape {
		r.cell(screen, panelX, margin+20, p.X+1, p.Y, snap.NextColor)
	}

	stats := fmt.Sprintf("SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d", snap.Score, snap.Level, snap.Lines)
	ebitenutil.DebugPrintAt(screen, stats, panelX, margin+20+4*r.cellSize)

	switch {
	case snap.GameOver:
		r.banner(screen, snap, "GAME OVER\npress R to restart")
	case snap.Paused:
		r.banner(screen, snap, "PAUSED")
	}
}

func (r *Renderer) cell(screen *ebiten.Image, originX, originY, x, y int, c tetris.Color) {
	px := float32(originX + x*r.cellSize)
	py := float32(originY + y*r.cellSize)
	size := float32(r.cellSize)

	vector.DrawFilledRect(screen, px, py, size, size, color.RGBA{c[0], c[1], c[2], 0xff}, false)
	vector.StrokeRect(screen, px, py, size, size, 1, color.Black, false)
}

func (r *Renderer) empty(screen *ebiten.Image, x, y int) {
	px := float32(margin + x*r.cellSize)
	py := float32(margin + y*r.cellSize)
	size := float32(r.cellSize)

	vector.StrokeRect(screen, px, py, size, size, 1, gridColor, false)
}

func (r *Renderer) banner(screen *ebiten.Image, snap tetris.Snapshot, text string) {
	boardW := float32(snap.Width * r.cellSize)
	boardH := float32(snap.Height * r.cellSize)
	vector.DrawFilledRect(screen, margin, margin+boardH/2-30, boardW, 60, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, text, margin+10, margin+int(boardH/2)-16)
}
