//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	buttonIdle  = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	buttonHover = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	labelColor  = color.Black
	statusColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)

// Panel draws the control buttons and status line next to the board.
type Panel struct {
	layout Layout
	pixel  *ebiten.Image
}

// NewPanel constructs a Panel for the given layout.
func NewPanel(layout Layout) *Panel {
	p := &Panel{layout: layout}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// DrawControls paints the four evolution buttons, highlighting the hovered one.
func (p *Panel) DrawControls(screen *ebiten.Image, mx, my int) {
	for _, b := range p.layout.Buttons {
		p.drawButton(screen, b, b.Contains(mx, my))
	}
}

// DrawStart paints the title screen button.
func (p *Panel) DrawStart(screen *ebiten.Image, mx, my int) {
	p.drawButton(screen, p.layout.Start, p.layout.Start.Contains(mx, my))
}

// DrawStatus prints the generation and population below the buttons.
func (p *Panel) DrawStatus(screen *ebiten.Image, generation, population int, running bool) {
	face := basicfont.Face7x13
	state := "stopped"
	if running {
		state = "running"
	}
	x, y := p.layout.Status.X, p.layout.Status.Y
	text.Draw(screen, fmt.Sprintf("Generation %d", generation), face, x, y, statusColor)
	text.Draw(screen, fmt.Sprintf("Alive %d", population), face, x, y+18, statusColor)
	text.Draw(screen, state, face, x, y+36, statusColor)
}

func (p *Panel) drawButton(screen *ebiten.Image, b Button, hovered bool) {
	bg := buttonIdle
	if hovered {
		bg = buttonHover
	}
	p.fillRect(screen, b.Rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	y := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, b.Label, face, x, y, labelColor)
}

func (p *Panel) fillRect(screen *ebiten.Image, rect image.Rectangle, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(p.pixel, op)
}
