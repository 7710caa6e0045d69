package assets

import (
	"image"
	"image/color"

	"toruslife/internal/life"
)

var glider = life.MustParse(`
.....
..O..
...O.
.OOO.
.....`)

var banner = life.MustParse(`
.........................
.O.....OOO.OOOOO.OOOOO...
.O......O..O.....O.......
.O......O..OOOO..OOOO....
.O......O..O.....O.......
.OOOOO.OOO.O.....OOOOO...
.........................
...O.....................
....O....................
..OOO....................
.........................`)

// DefaultIcon returns a glider on a black background, so that Icon turns the
// background transparent.
func DefaultIcon() image.Image {
	img := rasterize(glider, 6, color.RGBA{R: 102, G: 178, B: 255, A: 255}, color.Black)
	return Icon(img)
}

// DefaultTitle returns a generated "LIFE" banner sized w x h.
func DefaultTitle(w, h int) image.Image {
	img := rasterize(banner, 12, color.Black, color.White)
	return Scale(img, w, h)
}
