package render

import "image/color"

// Palette holds the colours used to paint a board.
type Palette struct {
	On  color.Color
	Off color.Color
	Gap color.Color
}

// BoardPixels returns the pixel size of a cols x rows board.
func BoardPixels(cols, rows, cell, gap int) (int, int) {
	pitch := cell + gap
	return cols * pitch, rows * pitch
}

// fillCellsRGBA converts row-major binary cell data into RGBA pixels in buf.
// Each cell becomes a cell x cell square followed by gap pixels of the gap
// colour to its right and below. buf must hold BoardPixels(cols, rows)*4 bytes.
func fillCellsRGBA(buf []byte, cells []uint8, cols, rows, cell, gap int, p Palette) {
	on, off, between := rgba(p.On), rgba(p.Off), rgba(p.Gap)
	pitch := cell + gap
	stride := cols * pitch * 4
	for y := 0; y < rows*pitch; y++ {
		row, inRow := y/pitch, y%pitch < cell
		line := buf[y*stride : (y+1)*stride]
		for x := 0; x < cols*pitch; x++ {
			px := between
			if inRow && x%pitch < cell {
				px = off
				if cells[row*cols+x/pitch] != 0 {
					px = on
				}
			}
			copy(line[x*4:x*4+4], px[:])
		}
	}
}

func rgba(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
