package life

import (
	"errors"
	"slices"
	"testing"

	"toruslife/internal/core"
)

var _ core.Sim = (*Life)(nil)

func TestLifeStepReplacesGeneration(t *testing.T) {
	l, err := NewLife(5, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []int{1, 2, 3} {
		if err := l.Toggle(c, 2); err != nil {
			t.Fatal(err)
		}
	}
	before := l.Grid()
	snapshot := before.Clone()

	l.Step()
	if l.Generation() != 1 {
		t.Fatalf("generation %d, expected 1", l.Generation())
	}
	if !before.Equal(snapshot) {
		t.Fatal("previous generation was mutated by Step")
	}
	if l.Population() != 3 {
		t.Fatalf("population %d, expected 3", l.Population())
	}
	if v, _ := l.Grid().Get(2, 1); v != 1 {
		t.Fatal("blinker did not rotate")
	}
}

func TestLifeResetDeterministic(t *testing.T) {
	l, _ := NewLife(16, 16, 4)
	l.Reset(42)
	first := append([]uint8(nil), l.Cells()...)
	l.Step()
	l.Reset(42)
	if !slices.Equal(first, l.Cells()) {
		t.Fatal("Reset with the same seed is not deterministic")
	}
	if l.Generation() != 0 {
		t.Fatalf("generation %d after reset, expected 0", l.Generation())
	}
}

func TestLifeParallelMatchesSequential(t *testing.T) {
	seq, _ := NewLife(24, 18, 1)
	par, _ := NewLife(24, 18, 6)
	seq.Reset(3)
	par.Reset(3)
	for i := 0; i < 10; i++ {
		seq.Step()
		par.Step()
	}
	if !seq.Grid().Equal(par.Grid()) {
		t.Fatal("parallel simulation diverged")
	}
}

func TestLifeLoad(t *testing.T) {
	l, _ := NewLife(4, 4, 1)
	g, _ := New(4, 4)
	_ = g.Toggle(0, 0)
	if err := l.Load(g); err != nil {
		t.Fatal(err)
	}
	_ = g.Toggle(1, 1)
	if l.Population() != 1 {
		t.Fatal("Load must copy the grid")
	}
	small, _ := New(3, 3)
	if err := l.Load(small); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("size mismatch err=%v, expected ErrInvalidDimension", err)
	}
	l.Clear()
	if l.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
}

func TestNewLifeValidates(t *testing.T) {
	if _, err := NewLife(0, 10, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("err=%v, expected ErrInvalidDimension", err)
	}
}

func TestLifeResetAndClearLeaveHeldGridsAlone(t *testing.T) {
	l, _ := NewLife(12, 12, 1)
	l.Reset(1)
	held := l.Grid()
	snapshot := held.Clone()

	l.Reset(2)
	if !held.Equal(snapshot) {
		t.Fatal("Reset mutated a grid returned by an earlier Grid call")
	}
	if l.Grid() == held {
		t.Fatal("Reset should install a new grid")
	}

	held = l.Grid()
	snapshot = held.Clone()
	l.Clear()
	if !held.Equal(snapshot) {
		t.Fatal("Clear mutated a grid returned by an earlier Grid call")
	}
	if l.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
}
