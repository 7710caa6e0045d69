package life

import "golang.org/x/sync/errgroup"

// bandsPerWorker keeps workers busy when some bands finish early.
const bandsPerWorker = 4

// NeighborCount returns how many of the eight cells around (row, col) are
// alive. Coordinates wrap around both axes, so any row and column are valid.
func NeighborCount(g *Grid, row, col int) int {
	w, h := g.w, g.h
	row = (row%h + h) % h
	col = (col%w + w) % w
	n := 0
	for dy := -1; dy <= 1; dy++ {
		y := (row + dy + h) % h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := (col + dx + w) % w
			n += int(g.cells[y*w+x])
		}
	}
	return n
}

// NextState applies B3/S23 to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step returns the next generation of g. The argument is not modified.
func Step(g *Grid) *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]uint8, len(g.cells))}
	stepRows(g, next, 0, g.h)
	return next
}

// StepParallel computes the same result as Step. Rows are cut into bands
// and at most workers bands are evaluated at once. The source grid is only
// read.
func StepParallel(g *Grid, workers int) *Grid {
	if workers > g.h {
		workers = g.h
	}
	if workers <= 1 {
		return Step(g)
	}
	next := &Grid{w: g.w, h: g.h, cells: make([]uint8, len(g.cells))}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for _, band := range bands(g.h, min(g.h, workers*bandsPerWorker)) {
		band := band
		eg.Go(func() error {
			stepRows(g, next, band[0], band[1])
			return nil
		})
	}
	_ = eg.Wait()
	return next
}

// stepRows writes rows [y0, y1) of the next generation.
func stepRows(src, dst *Grid, y0, y1 int) {
	w := src.w
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if NextState(src.cells[idx] == 1, NeighborCount(src, y, x)) {
				dst.cells[idx] = 1
			}
		}
	}
}

// bands splits height rows into n contiguous [start, end) ranges whose sizes
// differ by at most one.
func bands(height, n int) [][2]int {
	out := make([][2]int, 0, n)
	base, extra := height/n, height%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		out = append(out, [2]int{start, start + size})
		start += size
	}
	return out
}
