// Package assets loads and prepares the window icon and title picture.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"

	"toruslife/internal/life"
)

// IconSize is the edge length of the window icon in pixels.
const IconSize = 32

// Load decodes a PNG, JPEG or GIF file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Icon prepares src as a 32x32 window icon. Pure black pixels become fully
// transparent.
func Icon(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() != IconSize || b.Dy() != IconSize {
		src = transform.Resize(src, IconSize, IconSize, transform.NearestNeighbor)
	}
	return colorKey(src, color.RGBA{A: 255})
}

// Scale resizes src to exactly w x h pixels.
func Scale(src image.Image, w, h int) *image.RGBA {
	return transform.Resize(src, w, h, transform.Linear)
}

// colorKey copies src into a new image with every pixel equal to key made
// transparent.
func colorKey(src image.Image, key color.Color) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	kr, kg, kb, _ := key.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.At(x, y)
			r, g, bl, _ := c.RGBA()
			if r == kr && g == kg && bl == kb {
				continue
			}
			out.Set(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// rasterize paints a pattern as square blocks of the given size.
func rasterize(p *life.Grid, block int, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width()*block, p.Height()*block))
	cells := p.Cells()
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			c := off
			if cells[(y/block)*p.Width()+x/block] != 0 {
				c = on
			}
			img.Set(x, y, c)
		}
	}
	return img
}
