//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from binary cell data.
type GridPainter struct {
	cols, rows int
	cell, gap  int
	palette    Palette
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a cols x rows board.
func NewGridPainter(cols, rows, cell, gap int, palette Palette) *GridPainter {
	w, h := BoardPixels(cols, rows, cell, gap)
	gp := &GridPainter{cols: cols, rows: rows, cell: cell, gap: gap, palette: palette, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it at the
// top-left corner of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.cols*gp.rows {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.cols, gp.rows, gp.cell, gp.gap, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.img.Bounds().Dx(), gp.img.Bounds().Dy() }
