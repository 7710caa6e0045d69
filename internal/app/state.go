package app

import (
	"fmt"
	"time"

	"toruslife/internal/life"
	"toruslife/internal/ui"
)

// Phase is the screen the application is showing.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseBoard
)

// State is the application state owned by a driver: the simulation, the
// current screen and whether continuous evolution is on. Drivers decide when
// to call Tick; State never paces itself.
type State struct {
	life    *life.Life
	phase   Phase
	running bool

	initial *life.Grid
	seed    func() int64
}

// NewState wraps a simulation. When initial is non-nil, starting the game
// loads it instead of a random board.
func NewState(l *life.Life, initial *life.Grid) *State {
	return &State{
		life:    l,
		initial: initial,
		seed:    func() int64 { return time.Now().UnixNano() },
	}
}

// WithSeeds replaces the seed source used for random boards.
func (s *State) WithSeeds(next func() int64) *State {
	s.seed = next
	return s
}

// SeedsFrom returns a seed source that yields first once and then
// wall-clock seeds, so the first board is reproducible from a flag.
func SeedsFrom(first int64) func() int64 {
	used := false
	return func() int64 {
		if !used {
			used = true
			return first
		}
		return time.Now().UnixNano()
	}
}

// Life returns the simulation.
func (s *State) Life() *life.Life { return s.life }

// Phase returns the current screen.
func (s *State) Phase() Phase { return s.phase }

// Running reports whether continuous evolution is on.
func (s *State) Running() bool { return s.running }

// Apply executes a user command.
func (s *State) Apply(a ui.Action) error {
	switch a {
	case ui.ActionNone:
	case ui.ActionStartGame:
		if s.initial != nil {
			if err := s.life.Load(s.initial); err != nil {
				return err
			}
		} else {
			s.life.Reset(s.seed())
		}
		s.phase = PhaseBoard
	case ui.ActionStart:
		s.running = true
	case ui.ActionStop:
		s.running = false
	case ui.ActionStep:
		s.life.Step()
	case ui.ActionRandomize:
		s.life.Reset(s.seed())
	case ui.ActionClear:
		s.running = false
		s.life.Clear()
	default:
		return fmt.Errorf("app: unknown action %d", a)
	}
	return nil
}

// Toggle flips a board cell. Row and column must already be board indices.
func (s *State) Toggle(row, col int) error {
	if s.phase != PhaseBoard {
		return nil
	}
	return s.life.Toggle(row, col)
}

// Tick advances one generation if continuous evolution is on and reports
// whether it did.
func (s *State) Tick() bool {
	if !s.running || s.phase != PhaseBoard {
		return false
	}
	s.life.Step()
	return true
}
