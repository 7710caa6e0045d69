package life

import (
	"fmt"

	"toruslife/internal/core"
)

// Life drives the evolution engine for a UI or harness. It owns the current
// generation and replaces it with the engine's output on every step.
type Life struct {
	grid       *Grid
	generation int
	workers    int
}

// NewLife returns an all-dead simulation of the given size. Workers above one
// select the parallel stepper.
func NewLife(width, height, workers int) (*Life, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	return &Life{grid: g, workers: workers}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current generation for rendering.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() *Grid { return l.grid }

// Generation returns how many steps have run since the last reset or load.
func (l *Life) Generation() int { return l.generation }

// Population counts the live cells of the current generation.
func (l *Life) Population() int { return l.grid.Population() }

// Reset replaces the board with a random one drawn from seed.
func (l *Life) Reset(seed int64) {
	l.grid, _ = NewRandom(l.grid.w, l.grid.h, core.Seeded(seed))
	l.generation = 0
}

// Clear replaces the board with an all-dead one and restarts the
// generation count.
func (l *Life) Clear() {
	l.grid, _ = New(l.grid.w, l.grid.h)
	l.generation = 0
}

// Load adopts a copy of g as the current generation.
func (l *Life) Load(g *Grid) error {
	if g.w != l.grid.w || g.h != l.grid.h {
		return fmt.Errorf("%w: load %dx%d into %dx%d", ErrInvalidDimension, g.w, g.h, l.grid.w, l.grid.h)
	}
	l.grid = g.Clone()
	l.generation = 0
	return nil
}

// Toggle flips a single cell of the current generation.
func (l *Life) Toggle(row, col int) error { return l.grid.Toggle(row, col) }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.workers > 1 {
		l.grid = StepParallel(l.grid, l.workers)
	} else {
		l.grid = Step(l.grid)
	}
	l.generation++
}
