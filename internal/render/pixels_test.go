package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	p := Palette{
		On:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Off: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Gap: color.RGBA{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{
		1, 0,
		0, 1,
	}
	const cell, gap = 2, 1
	w, h := BoardPixels(2, 2, cell, gap)
	if w != 6 || h != 6 {
		t.Fatalf("board %dx%d, expected 6x6", w, h)
	}
	buf := make([]byte, 4*w*h)
	fillCellsRGBA(buf, cells, 2, 2, cell, gap, p)

	at := func(x, y int) [4]byte {
		i := (y*w + x) * 4
		return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
	}
	on, off, between := rgba(p.On), rgba(p.Off), rgba(p.Gap)
	cases := []struct {
		x, y int
		want [4]byte
	}{
		{0, 0, on}, {1, 1, on},
		{2, 0, between}, {0, 2, between}, {2, 2, between},
		{3, 0, off}, {4, 1, off},
		{0, 3, off},
		{3, 3, on}, {4, 4, on},
		{5, 5, between},
	}
	for _, tc := range cases {
		if got := at(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel (%d,%d)=%v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRGBANilIsTransparent(t *testing.T) {
	if got := rgba(nil); got != [4]byte{} {
		t.Fatalf("rgba(nil)=%v, expected transparent", got)
	}
}
