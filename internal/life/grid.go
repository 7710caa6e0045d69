package life

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"toruslife/internal/core"
)

// Grid stores a fixed-size matrix of binary cells in row-major order.
//
// Direct access through Get, Set and Toggle is bounds-checked and never wraps.
// Toroidal adjacency only applies when the engine counts neighbours.
type Grid struct {
	w, h  int
	cells []uint8
}

// New returns an all-dead grid.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Grid{w: width, h: height, cells: make([]uint8, width*height)}, nil
}

// NewRandom returns a grid where every cell is alive with probability 0.5.
func NewRandom(width, height int, rng *rand.Rand) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	core.FillBinary(rng, g.cells)
	return g, nil
}

// Random is NewRandom with a deterministic source derived from seed.
func Random(width, height int, seed int64) (*Grid, error) {
	return NewRandom(width, height, core.Seeded(seed))
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the row-major backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.cells }

func (g *Grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfRange, row, col, g.w, g.h)
	}
	return row*g.w + col, nil
}

// Get returns 1 if the cell is alive and 0 otherwise.
func (g *Grid) Get(row, col int) (uint8, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return 0, err
	}
	return g.cells[idx], nil
}

// Set forces the cell to the given state.
func (g *Grid) Set(row, col int, alive bool) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[idx] = 0
	if alive {
		g.cells[idx] = 1
	}
	return nil
}

// Toggle flips the cell between dead and alive in place.
func (g *Grid) Toggle(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[idx] ^= 1
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: append([]uint8(nil), g.cells...)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Stamp copies every cell of p into g with p's top-left corner at (row, col).
// The pattern must fit entirely inside g.
func (g *Grid) Stamp(p *Grid, row, col int) error {
	if row < 0 || col < 0 || row+p.h > g.h || col+p.w > g.w {
		return fmt.Errorf("%w: %dx%d pattern at (%d,%d) in %dx%d grid",
			ErrIndexOutOfRange, p.w, p.h, row, col, g.w, g.h)
	}
	for r := 0; r < p.h; r++ {
		copy(g.cells[(row+r)*g.w+col:(row+r)*g.w+col+p.w], p.cells[r*p.w:(r+1)*p.w])
	}
	return nil
}

// String renders the grid as text, one line per row, with a block for each
// live cell.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w*3 + 1) * g.h)
	for r := 0; r < g.h; r++ {
		for _, c := range g.cells[r*g.w : (r+1)*g.w] {
			if c != 0 {
				b.WriteRune('█')
				continue
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
