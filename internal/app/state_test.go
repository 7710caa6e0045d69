package app

import (
	"errors"
	"testing"

	"toruslife/internal/life"
	"toruslife/internal/ui"
)

func newTestState(t *testing.T, initial *life.Grid) *State {
	t.Helper()
	l, err := life.NewLife(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	seed := int64(0)
	return NewState(l, initial).WithSeeds(func() int64 {
		seed++
		return seed
	})
}

func TestStateStartsOnTitleScreen(t *testing.T) {
	s := newTestState(t, nil)
	if s.Phase() != PhaseTitle {
		t.Fatal("expected title phase")
	}
	if err := s.Toggle(0, 0); err != nil {
		t.Fatal(err)
	}
	if s.Life().Population() != 0 {
		t.Fatal("toggles on the title screen must be ignored")
	}
	s.running = true
	if s.Tick() {
		t.Fatal("Tick must not step before the game starts")
	}
}

func TestStateStartGameRandomizes(t *testing.T) {
	s := newTestState(t, nil)
	if err := s.Apply(ui.ActionStartGame); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhaseBoard {
		t.Fatal("expected board phase")
	}
	want, _ := life.Random(8, 8, 1)
	if !s.Life().Grid().Equal(want) {
		t.Fatal("start game should randomize with the next seed")
	}
}

func TestStateStartGameLoadsInitialPattern(t *testing.T) {
	initial, _ := life.Centered(life.MustParse("OOO"), 8, 8)
	s := newTestState(t, initial)
	if err := s.Apply(ui.ActionStartGame); err != nil {
		t.Fatal(err)
	}
	if !s.Life().Grid().Equal(initial) {
		t.Fatal("start game should load the initial pattern")
	}
}

func TestStateEvolutionControls(t *testing.T) {
	s := newTestState(t, nil)
	_ = s.Apply(ui.ActionStartGame)

	if s.Tick() {
		t.Fatal("Tick stepped while stopped")
	}
	_ = s.Apply(ui.ActionStart)
	if !s.Running() || !s.Tick() {
		t.Fatal("expected Tick to step while running")
	}
	if s.Life().Generation() != 1 {
		t.Fatalf("generation %d, expected 1", s.Life().Generation())
	}
	_ = s.Apply(ui.ActionStop)
	if s.Running() || s.Tick() {
		t.Fatal("expected Stop to halt evolution")
	}
	_ = s.Apply(ui.ActionStep)
	if s.Life().Generation() != 2 {
		t.Fatalf("generation %d after single step, expected 2", s.Life().Generation())
	}

	before := s.Life().Grid().Clone()
	_ = s.Apply(ui.ActionRandomize)
	if s.Life().Grid().Equal(before) {
		t.Fatal("randomize left the board unchanged")
	}
	if s.Life().Generation() != 0 {
		t.Fatal("randomize should restart the generation count")
	}

	_ = s.Apply(ui.ActionStart)
	_ = s.Apply(ui.ActionClear)
	if s.Running() || s.Life().Population() != 0 {
		t.Fatal("clear should stop evolution and kill every cell")
	}
}

func TestStateToggle(t *testing.T) {
	s := newTestState(t, nil)
	_ = s.Apply(ui.ActionStartGame)
	s.Life().Clear()
	if err := s.Toggle(3, 4); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Life().Grid().Get(3, 4); v != 1 {
		t.Fatal("toggle did not flip the cell")
	}
	if err := s.Toggle(8, 0); !errors.Is(err, life.ErrIndexOutOfRange) {
		t.Fatalf("err=%v, expected ErrIndexOutOfRange", err)
	}
}

func TestStateUnknownAction(t *testing.T) {
	s := newTestState(t, nil)
	if err := s.Apply(ui.Action(99)); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}

func TestSeedsFrom(t *testing.T) {
	next := SeedsFrom(77)
	if got := next(); got != 77 {
		t.Fatalf("first seed %d, expected 77", got)
	}
	if got := next(); got == 77 {
		t.Fatal("later seeds should come from the clock")
	}
}
